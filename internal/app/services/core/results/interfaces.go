package results

import (
	"context"
	"medcalc-service/internal/pkg/dto/responses"
	"medcalc-service/internal/pkg/paging"
)

type ResultUsecase interface {
	FetchHistory(ctx context.Context, sessionID string, page, pageSize int) (*paging.Page[responses.HistoryItem], error)
	FetchResultDetail(ctx context.Context, sessionID, resultID string) (*responses.ResultDetail, error)
	RequestInterpretation(ctx context.Context, sessionID, resultID string) error
	ShareResult(ctx context.Context, sessionID, resultID string) (*responses.ShareReport, error)
}
