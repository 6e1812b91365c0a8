package admin

import (
	"context"
	"medcalc-service/internal/app/models"
	"medcalc-service/internal/pkg/dto/requests"
	"medcalc-service/internal/pkg/paging"
	"time"
)

type AdminUsecase interface {
	FetchPendingResults(ctx context.Context, sessionID string, page, pageSize int) (*paging.Page[models.Result], error)
	InterpretResult(ctx context.Context, sessionID, resultID string, request *requests.InterpretResult) error
	FetchUsers(ctx context.Context, sessionID string, request *requests.FindUsers) (*paging.Page[models.User], error)
	ToggleUserStatus(ctx context.Context, sessionID, userID string, isActive bool) error
	FetchStatistics(ctx context.Context) (*models.Statistics, error)
	FetchDetailedStatistics(ctx context.Context, request *requests.DetailedStatistics) (models.DetailedStatistics, error)
	CachedPendingResults(sessionID string) []models.Result
	CachedUsers(sessionID string) []models.User
	Remove(sessionID string)
	Prune(idle time.Duration) int
}
