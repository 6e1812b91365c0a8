package storage

import (
	"context"
	"medcalc-service/internal/app/contracts"
	"medcalc-service/internal/pkg/constvars"
	"medcalc-service/internal/pkg/exceptions"
	"medcalc-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
	Log         *zap.Logger
}

func NewMinioStorage(minioClient *minio.Client, bucketName string, logger *zap.Logger) contracts.ReportStorage {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
		Log:         logger,
	}
}

func (m *minioStorage) PutReport(ctx context.Context, objectName, content string) error {
	requestID := utils.GetRequestID(ctx)
	_, err := m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		objectName,
		strings.NewReader(content),
		int64(len(content)),
		minio.PutObjectOptions{
			ContentType: constvars.MIMETextPlainCharsetUTF8,
		},
	)
	if err != nil {
		m.Log.Error("minioStorage.PutReport error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketKey, m.BucketName),
			zap.String(constvars.LoggingObjectKey, objectName),
			zap.Error(err),
		)
		return exceptions.ErrMinioCreateObject(err, m.BucketName)
	}
	return nil
}

func (m *minioStorage) GetObjectUrlWithExpiryTime(ctx context.Context, objectName string, expiryTime time.Duration) (string, error) {
	url, err := m.MinioClient.PresignedGetObject(ctx, m.BucketName, objectName, expiryTime, nil)
	if err != nil {
		m.Log.Error("minioStorage.GetObjectUrlWithExpiryTime error",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingBucketKey, m.BucketName),
			zap.String(constvars.LoggingObjectKey, objectName),
			zap.Error(err),
		)
		return "", exceptions.ErrMinioPresignObject(err, m.BucketName)
	}
	return url.String(), nil
}
