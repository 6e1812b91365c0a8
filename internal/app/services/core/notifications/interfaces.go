package notifications

import (
	"context"
	"medcalc-service/internal/app/models"
)

type NotificationUsecase interface {
	FetchNotifications(ctx context.Context) (*models.NotificationList, error)
	MarkNotificationRead(ctx context.Context, notificationID string) error
}
