package apiclient

import (
	"context"
	"fmt"
	"medcalc-service/internal/app/models"
	"medcalc-service/internal/pkg/constvars"
	"medcalc-service/internal/pkg/exceptions"
	"medcalc-service/internal/pkg/utils"
	"net/url"
	"strconv"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func pageQuery(page, pageSize int) url.Values {
	query := url.Values{}
	query.Set(constvars.URLQueryParamPage, strconv.Itoa(page))
	query.Set(constvars.URLQueryParamPerPage, strconv.Itoa(pageSize))
	return query
}

func (c *scoringAPIClient) GetHistory(ctx context.Context, page, pageSize int) (*models.ResultPage, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("scoringAPIClient.GetHistory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPageKey, page),
		zap.Int(constvars.LoggingPageSizeKey, pageSize),
	)

	body, err := c.do(ctx, apiRequest{
		method:        constvars.MethodGet,
		path:          constvars.APIPathResultsHistory,
		query:         pageQuery(page, pageSize),
		authenticated: true,
	})
	if err != nil {
		c.Log.Error("scoringAPIClient.GetHistory error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	resultPage := new(models.ResultPage)
	err = json.Unmarshal(body, resultPage)
	if err != nil {
		c.Log.Error("scoringAPIClient.GetHistory error decoding page",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceHistory)
	}

	c.Log.Info("scoringAPIClient.GetHistory succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(resultPage.Results)),
	)
	return resultPage, nil
}

func (c *scoringAPIClient) GetResult(ctx context.Context, resultID string) (*models.Result, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("scoringAPIClient.GetResult called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResultIDKey, resultID),
	)

	body, err := c.do(ctx, apiRequest{
		method:        constvars.MethodGet,
		path:          fmt.Sprintf(constvars.APIPathResultFormat, url.PathEscape(resultID)),
		authenticated: true,
	})
	if err != nil {
		c.Log.Error("scoringAPIClient.GetResult error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResultIDKey, resultID),
			zap.Error(err),
		)
		return nil, err
	}

	result := new(models.Result)
	err = decodeEnvelope(body, "result", result)
	if err != nil {
		c.Log.Error("scoringAPIClient.GetResult error decoding result",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceResult)
	}

	c.Log.Info("scoringAPIClient.GetResult succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResultIDKey, result.ID),
	)
	return result, nil
}

func (c *scoringAPIClient) RequestInterpretation(ctx context.Context, resultID string) error {
	path := fmt.Sprintf(constvars.APIPathResultInterpFormat, url.PathEscape(resultID))
	return c.sendCommand(ctx, "scoringAPIClient.RequestInterpretation", constvars.MethodPost, path, nil)
}
