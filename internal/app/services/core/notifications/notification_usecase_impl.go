package notifications

import (
	"context"
	"medcalc-service/internal/app/contracts"
	"medcalc-service/internal/app/models"
	"medcalc-service/internal/pkg/constvars"
	"medcalc-service/internal/pkg/exceptions"
	"medcalc-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type notificationUsecase struct {
	NotificationsAPI contracts.NotificationsAPI
	Log              *zap.Logger
}

func NewNotificationUsecase(notificationsAPI contracts.NotificationsAPI, logger *zap.Logger) NotificationUsecase {
	return &notificationUsecase{
		NotificationsAPI: notificationsAPI,
		Log:              logger,
	}
}

func (uc *notificationUsecase) FetchNotifications(ctx context.Context) (*models.NotificationList, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("notificationUsecase.FetchNotifications called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	list, err := uc.NotificationsAPI.GetNotifications(ctx)
	if err != nil {
		uc.Log.Error("notificationUsecase.FetchNotifications error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrFetchResource(err, constvars.ResourceNotifications)
	}

	if list.Notifications == nil {
		list.Notifications = []models.Notification{}
	}
	if list.UnreadCount == 0 {
		for _, notification := range list.Notifications {
			if !notification.IsRead {
				list.UnreadCount++
			}
		}
	}

	uc.Log.Info("notificationUsecase.FetchNotifications succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(list.Notifications)),
	)
	return list, nil
}

func (uc *notificationUsecase) MarkNotificationRead(ctx context.Context, notificationID string) error {
	requestID := utils.GetRequestID(ctx)
	err := uc.NotificationsAPI.MarkNotificationRead(ctx, notificationID)
	if err != nil {
		uc.Log.Error("notificationUsecase.MarkNotificationRead error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingNotificationIDKey, notificationID),
			zap.Error(err),
		)
		return exceptions.ErrSubmitResource(err, constvars.ResourceNotifications)
	}
	return nil
}
