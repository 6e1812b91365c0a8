package utils

import (
	"errors"
	"medcalc-service/internal/pkg/constvars"
	"medcalc-service/internal/pkg/dto/requests"
	"net/http"

	"github.com/spf13/cast"
)

var (
	errAnswerValueMissing    = errors.New("answer value is missing")
	errAnswerValueNotNumeric = errors.New("answer value is not numeric")
	errAnswerValueNotInteger = errors.New("answer value is not an integer")
)

func BuildPaginationRequest(r *http.Request, defaultPageSize int) *requests.Pagination {
	page, err := cast.ToIntE(r.URL.Query().Get(constvars.URLQueryParamPage))
	if err != nil || page <= 0 {
		page = 1
	}

	pageSize, err := cast.ToIntE(r.URL.Query().Get(constvars.URLQueryParamPerPage))
	if err != nil || pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > constvars.MaxPageSize {
		pageSize = constvars.MaxPageSize
	}

	return &requests.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

// ParseAnswerValue coerces a JSON answer value (number or numeric string)
// into an option value.
func ParseAnswerValue(value interface{}) (int, error) {
	if value == nil {
		return 0, errAnswerValueMissing
	}
	if _, isBool := value.(bool); isBool {
		return 0, errAnswerValueNotNumeric
	}
	number, err := cast.ToFloat64E(value)
	if err != nil {
		return 0, err
	}
	if number != float64(int(number)) {
		return 0, errAnswerValueNotInteger
	}
	return int(number), nil
}
