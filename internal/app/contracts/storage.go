package contracts

import (
	"context"
	"time"
)

type ReportStorage interface {
	PutReport(ctx context.Context, objectName, content string) error
	GetObjectUrlWithExpiryTime(ctx context.Context, objectName string, expiryTime time.Duration) (string, error)
}
