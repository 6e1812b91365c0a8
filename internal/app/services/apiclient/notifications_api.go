package apiclient

import (
	"context"
	"fmt"
	"medcalc-service/internal/app/models"
	"medcalc-service/internal/pkg/constvars"
	"medcalc-service/internal/pkg/exceptions"
	"medcalc-service/internal/pkg/utils"
	"net/url"

	"go.uber.org/zap"
)

func (c *scoringAPIClient) GetNotifications(ctx context.Context) (*models.NotificationList, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("scoringAPIClient.GetNotifications called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.do(ctx, apiRequest{
		method:        constvars.MethodGet,
		path:          constvars.APIPathNotifications,
		authenticated: true,
	})
	if err != nil {
		c.Log.Error("scoringAPIClient.GetNotifications error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	list := new(models.NotificationList)
	err = decodeEnvelope(body, "data", list)
	if err != nil {
		c.Log.Error("scoringAPIClient.GetNotifications error decoding list",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceNotifications)
	}

	c.Log.Info("scoringAPIClient.GetNotifications succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(list.Notifications)),
	)
	return list, nil
}

func (c *scoringAPIClient) MarkNotificationRead(ctx context.Context, notificationID string) error {
	path := fmt.Sprintf(constvars.APIPathNotificationReadFm, url.PathEscape(notificationID))
	return c.sendCommand(ctx, "scoringAPIClient.MarkNotificationRead", constvars.MethodPost, path, nil)
}
