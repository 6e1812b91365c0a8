package apiclient

import (
	"context"
	"medcalc-service/internal/app/models"
	"medcalc-service/internal/pkg/constvars"
	"medcalc-service/internal/pkg/dto/requests"
	"medcalc-service/internal/pkg/exceptions"
	"medcalc-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func (c *scoringAPIClient) Login(ctx context.Context, request *requests.Login) (*models.AuthTokens, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("scoringAPIClient.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	body, err := c.do(ctx, apiRequest{
		method: constvars.MethodPost,
		path:   constvars.APIPathAuthLogin,
		body:   request,
	})
	if err != nil {
		c.Log.Error("scoringAPIClient.Login error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	tokens := new(models.AuthTokens)
	err = json.Unmarshal(body, tokens)
	if err != nil || tokens.AccessToken == "" {
		c.Log.Error("scoringAPIClient.Login error decoding tokens",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceSession)
	}

	c.Log.Info("scoringAPIClient.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return tokens, nil
}

func (c *scoringAPIClient) Register(ctx context.Context, request *requests.Register) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("scoringAPIClient.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	_, err := c.do(ctx, apiRequest{
		method: constvars.MethodPost,
		path:   constvars.APIPathAuthRegister,
		body:   request,
	})
	if err != nil {
		c.Log.Error("scoringAPIClient.Register error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	c.Log.Info("scoringAPIClient.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (c *scoringAPIClient) GetProfile(ctx context.Context) (*models.User, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("scoringAPIClient.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.do(ctx, apiRequest{
		method:        constvars.MethodGet,
		path:          constvars.APIPathAuthProfile,
		authenticated: true,
	})
	if err != nil {
		c.Log.Error("scoringAPIClient.GetProfile error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	user := new(models.User)
	err = decodeEnvelope(body, "user", user)
	if err != nil {
		c.Log.Error("scoringAPIClient.GetProfile error decoding profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceProfile)
	}

	c.Log.Info("scoringAPIClient.GetProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return user, nil
}

func (c *scoringAPIClient) UpdateProfile(ctx context.Context, request *requests.UpdateProfile) error {
	return c.sendCommand(ctx, "scoringAPIClient.UpdateProfile", constvars.MethodPut, constvars.APIPathProfileUpdate, request)
}

func (c *scoringAPIClient) ChangePassword(ctx context.Context, request *requests.ChangePassword) error {
	return c.sendCommand(ctx, "scoringAPIClient.ChangePassword", constvars.MethodPost, constvars.APIPathProfileChangePass, request)
}

func (c *scoringAPIClient) LinkTelegram(ctx context.Context, request *requests.LinkTelegram) error {
	return c.sendCommand(ctx, "scoringAPIClient.LinkTelegram", constvars.MethodPost, constvars.APIPathAuthTelegramLink, request)
}

func (c *scoringAPIClient) Logout(ctx context.Context) error {
	return c.sendCommand(ctx, "scoringAPIClient.Logout", constvars.MethodPost, constvars.APIPathAuthLogout, nil)
}

// sendCommand runs an authenticated call whose response body is ignored.
func (c *scoringAPIClient) sendCommand(ctx context.Context, operation, method, path string, body interface{}) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info(operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, path),
	)

	_, err := c.do(ctx, apiRequest{
		method:        method,
		path:          path,
		body:          body,
		authenticated: true,
	})
	if err != nil {
		c.Log.Error(operation+" error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Error(err),
		)
		return err
	}

	c.Log.Info(operation+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
