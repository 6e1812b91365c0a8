package apiclient

import (
	"context"
	"fmt"
	"medcalc-service/internal/app/models"
	"medcalc-service/internal/pkg/constvars"
	"medcalc-service/internal/pkg/dto/requests"
	"medcalc-service/internal/pkg/exceptions"
	"medcalc-service/internal/pkg/utils"
	"net/url"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func (c *scoringAPIClient) GetPendingResults(ctx context.Context, page, pageSize int) (*models.PendingPage, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("scoringAPIClient.GetPendingResults called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPageKey, page),
	)

	body, err := c.do(ctx, apiRequest{
		method:        constvars.MethodGet,
		path:          constvars.APIPathAdminPending,
		query:         pageQuery(page, pageSize),
		authenticated: true,
	})
	if err != nil {
		c.Log.Error("scoringAPIClient.GetPendingResults error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	pending := new(models.PendingPage)
	err = json.Unmarshal(body, pending)
	if err != nil {
		c.Log.Error("scoringAPIClient.GetPendingResults error decoding page",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceResult)
	}

	c.Log.Info("scoringAPIClient.GetPendingResults succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(pending.Results)),
	)
	return pending, nil
}

func (c *scoringAPIClient) InterpretResult(ctx context.Context, resultID string, request *requests.Interpretation) error {
	path := fmt.Sprintf(constvars.APIPathAdminInterpFormat, url.PathEscape(resultID))
	return c.sendCommand(ctx, "scoringAPIClient.InterpretResult", constvars.MethodPost, path, request)
}

func (c *scoringAPIClient) GetUsers(ctx context.Context, request *requests.FindUsers) (*models.UserPage, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("scoringAPIClient.GetUsers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPageKey, request.Page),
		zap.String(constvars.LoggingSearchKey, request.Search),
	)

	query := pageQuery(request.Page, request.PageSize)
	if request.Search != "" {
		query.Set(constvars.URLQueryParamSearch, request.Search)
	}

	body, err := c.do(ctx, apiRequest{
		method:        constvars.MethodGet,
		path:          constvars.APIPathAdminUsers,
		query:         query,
		authenticated: true,
	})
	if err != nil {
		c.Log.Error("scoringAPIClient.GetUsers error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	users := new(models.UserPage)
	err = json.Unmarshal(body, users)
	if err != nil {
		c.Log.Error("scoringAPIClient.GetUsers error decoding page",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceUsers)
	}

	c.Log.Info("scoringAPIClient.GetUsers succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(users.Users)),
	)
	return users, nil
}

func (c *scoringAPIClient) UpdateUserStatus(ctx context.Context, userID string, isActive bool) error {
	path := fmt.Sprintf(constvars.APIPathAdminUserStatusFmt, url.PathEscape(userID))
	body := map[string]bool{"is_active": isActive}
	return c.sendCommand(ctx, "scoringAPIClient.UpdateUserStatus", constvars.MethodPut, path, body)
}

func (c *scoringAPIClient) GetStatistics(ctx context.Context) (*models.Statistics, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("scoringAPIClient.GetStatistics called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.do(ctx, apiRequest{
		method:        constvars.MethodGet,
		path:          constvars.APIPathAdminStatistics,
		authenticated: true,
	})
	if err != nil {
		c.Log.Error("scoringAPIClient.GetStatistics error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	statistics := new(models.Statistics)
	err = json.Unmarshal(body, statistics)
	if err != nil {
		c.Log.Error("scoringAPIClient.GetStatistics error decoding statistics",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceStatistics)
	}

	c.Log.Info("scoringAPIClient.GetStatistics succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return statistics, nil
}

func (c *scoringAPIClient) GetDetailedStatistics(ctx context.Context, request *requests.DetailedStatistics) (models.DetailedStatistics, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("scoringAPIClient.GetDetailedStatistics called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStartDateKey, request.StartDate),
		zap.String(constvars.LoggingEndDateKey, request.EndDate),
	)

	query := url.Values{}
	query.Set(constvars.URLQueryParamStartDate, request.StartDate)
	query.Set(constvars.URLQueryParamEndDate, request.EndDate)

	body, err := c.do(ctx, apiRequest{
		method:        constvars.MethodGet,
		path:          constvars.APIPathAdminStatsDetailed,
		query:         query,
		authenticated: true,
	})
	if err != nil {
		c.Log.Error("scoringAPIClient.GetDetailedStatistics error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	statistics := models.DetailedStatistics{}
	err = json.Unmarshal(body, &statistics)
	if err != nil {
		c.Log.Error("scoringAPIClient.GetDetailedStatistics error decoding statistics",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceStatistics)
	}

	c.Log.Info("scoringAPIClient.GetDetailedStatistics succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return statistics, nil
}
