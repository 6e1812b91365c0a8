package controllers

import (
	"context"
	"errors"
	"io"
	"medcalc-service/internal/pkg/dto/responses"
	"medcalc-service/internal/pkg/exceptions"
	"medcalc-service/internal/pkg/paging"
	"medcalc-service/internal/pkg/utils"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// decodeBody binds a JSON body. An empty body leaves request untouched when
// allowEmpty is set.
func decodeBody(r *http.Request, request interface{}, allowEmpty bool) error {
	err := json.NewDecoder(r.Body).Decode(request)
	if errors.Is(err, io.EOF) && allowEmpty {
		return nil
	}
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}

func buildUsecaseErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	if err == context.DeadlineExceeded {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

func paginationOf[T any](r *http.Request, page *paging.Page[T]) *responses.Pagination {
	if page.Total <= 0 {
		return nil
	}
	return utils.BuildPaginationResponse(page.Total, page.Page, page.PageSize, r.URL.Path)
}
