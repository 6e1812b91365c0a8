package apiclient

import (
	"bytes"
	"context"
	"io"
	"medcalc-service/internal/app/contracts"
	"medcalc-service/internal/pkg/constvars"
	"medcalc-service/internal/pkg/exceptions"
	"medcalc-service/internal/pkg/utils"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type scoringAPIClient struct {
	BaseUrl      string
	HTTPClient   *http.Client
	Tokens       contracts.TokenStore
	Log          *zap.Logger
	refreshGroup singleflight.Group
	now          func() time.Time
}

func NewScoringAPIClient(baseUrl string, timeout time.Duration, tokens contracts.TokenStore, logger *zap.Logger) contracts.ScoringAPIClient {
	return &scoringAPIClient{
		BaseUrl:    baseUrl,
		HTTPClient: &http.Client{Timeout: timeout},
		Tokens:     tokens,
		Log:        logger,
		now:        time.Now,
	}
}

type apiRequest struct {
	method        string
	path          string
	query         url.Values
	body          interface{}
	authenticated bool
}

type apiResponse struct {
	statusCode int
	body       []byte
}

// do sends the request with the session's access token. A 401 triggers one
// token refresh and one replay; a token whose exp already passed is refreshed
// before sending and is not refreshed again on 401.
func (c *scoringAPIClient) do(ctx context.Context, request apiRequest) ([]byte, error) {
	requestID := utils.GetRequestID(ctx)
	sessionID := utils.GetSessionID(ctx)

	var payload []byte
	if request.body != nil {
		var err error
		payload, err = json.Marshal(request.body)
		if err != nil {
			c.Log.Error("scoringAPIClient.do error marshaling request body",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEndpointKey, request.path),
				zap.Error(err),
			)
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
	}

	var (
		accessToken      string
		refreshToken     string
		refreshAttempted bool
	)
	if request.authenticated {
		tokens, err := c.Tokens.GetTokens(ctx, sessionID)
		if err != nil {
			c.Log.Error("scoringAPIClient.do error loading session tokens",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, sessionID),
				zap.Error(err),
			)
			return nil, err
		}
		accessToken = tokens.AccessToken
		refreshToken = tokens.RefreshToken

		if expiry, ok := utils.TokenExpiry(accessToken); ok && !c.now().Before(expiry) {
			refreshAttempted = true
			refreshed, err := c.refreshAccessToken(ctx, sessionID, refreshToken)
			if err != nil {
				c.Log.Warn("scoringAPIClient.do proactive token refresh failed",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingSessionIDKey, sessionID),
					zap.Error(err),
				)
			} else {
				accessToken = refreshed
			}
		}
	}

	response, err := c.send(ctx, request, payload, accessToken)
	if err != nil {
		return nil, err
	}

	if response.statusCode == constvars.StatusUnauthorized && request.authenticated && !refreshAttempted {
		refreshed, refreshErr := c.refreshAccessToken(ctx, sessionID, refreshToken)
		if refreshErr != nil {
			c.Log.Warn("scoringAPIClient.do token refresh after 401 failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, sessionID),
				zap.Error(refreshErr),
			)
		} else {
			c.Log.Info("scoringAPIClient.do replaying request with refreshed token",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEndpointKey, request.path),
				zap.Int(constvars.LoggingAttemptKey, 2),
			)
			response, err = c.send(ctx, request, payload, refreshed)
			if err != nil {
				return nil, err
			}
		}
	}

	if response.statusCode < 200 || response.statusCode >= 300 {
		upstreamErr := exceptions.ErrUpstreamStatus(response.statusCode, upstreamErrorMessage(response.body), request.method, request.path)
		c.Log.Error("scoringAPIClient.do scoring API returned error status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, request.method),
			zap.String(constvars.LoggingEndpointKey, request.path),
			zap.Int(constvars.LoggingStatusCodeKey, response.statusCode),
		)
		return nil, upstreamErr
	}

	return response.body, nil
}

func (c *scoringAPIClient) send(ctx context.Context, request apiRequest, payload []byte, bearerToken string) (*apiResponse, error) {
	requestID := utils.GetRequestID(ctx)

	endpoint := c.BaseUrl + request.path
	if len(request.query) > 0 {
		endpoint += "?" + request.query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, request.method, endpoint, body)
	if err != nil {
		c.Log.Error("scoringAPIClient.send error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, endpoint),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if payload != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if bearerToken != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+bearerToken)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("scoringAPIClient.send error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, endpoint),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("scoringAPIClient.send error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, endpoint),
			zap.Error(err),
		)
		return nil, exceptions.ErrReadBody(err)
	}

	c.Log.Debug("scoringAPIClient.send received response",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, request.method),
		zap.String(constvars.LoggingURLKey, endpoint),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)

	return &apiResponse{statusCode: resp.StatusCode, body: respBody}, nil
}

// refreshAccessToken exchanges the refresh token for a new access token and
// stores it. Concurrent refreshes of one session share a single call.
func (c *scoringAPIClient) refreshAccessToken(ctx context.Context, sessionID, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", exceptions.ErrRefreshTokenMissing()
	}

	token, err, _ := c.refreshGroup.Do(sessionID, func() (interface{}, error) {
		request := apiRequest{method: constvars.MethodPost, path: constvars.APIPathAuthRefresh}
		response, err := c.send(ctx, request, []byte("{}"), refreshToken)
		if err != nil {
			return "", err
		}
		if response.statusCode != constvars.StatusOK {
			return "", exceptions.ErrUpstreamStatus(response.statusCode, upstreamErrorMessage(response.body), request.method, request.path)
		}

		var refreshed struct {
			AccessToken string `json:"access_token"`
		}
		err = json.Unmarshal(response.body, &refreshed)
		if err != nil || refreshed.AccessToken == "" {
			return "", exceptions.ErrDecodeResponse(err, constvars.ResourceSession)
		}

		err = c.Tokens.UpdateAccessToken(ctx, sessionID, refreshed.AccessToken)
		if err != nil {
			return "", err
		}

		c.Log.Info("scoringAPIClient.refreshAccessToken succeeded",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
		)
		return refreshed.AccessToken, nil
	})
	if err != nil {
		return "", err
	}
	return token.(string), nil
}

// upstreamErrorMessage reads {"error": "..."} and falls back to "message".
func upstreamErrorMessage(body []byte) string {
	for _, path := range []string{"error", "message"} {
		if value := gjson.GetBytes(body, path); value.Type == gjson.String && value.Str != "" {
			return value.Str
		}
	}
	return ""
}

// decodeEnvelope decodes body[key] when the scoring API wraps the payload in
// an object and body itself otherwise.
func decodeEnvelope(body []byte, key string, out interface{}) error {
	if inner := gjson.GetBytes(body, key); inner.Exists() && inner.Type != gjson.Null {
		return json.Unmarshal([]byte(inner.Raw), out)
	}
	return json.Unmarshal(body, out)
}
