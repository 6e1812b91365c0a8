package storage

import (
	"context"
	"fmt"
	"medcalc-service/internal/app/config"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// NewMinio builds the client and creates the report bucket when missing.
func NewMinio(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *minio.Client {
	endPoint := fmt.Sprintf("%s:%s", driverConfig.Minio.Host, driverConfig.Minio.Port)
	minioClient, err := minio.New(endPoint, &minio.Options{
		Creds:  credentials.NewStaticV4(driverConfig.Minio.Username, driverConfig.Minio.Password, ""),
		Secure: driverConfig.Minio.UseSSL,
	})
	if err != nil {
		logrus.Fatalf("Failed to initialize Minio Client: %s", err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	bucketName := internalConfig.Minio.BucketName
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		logrus.Fatalf("Failed to check minio bucket %s: %s", bucketName, err.Error())
	}
	if !exists {
		err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			logrus.Fatalf("Failed to create minio bucket %s: %s", bucketName, err.Error())
		}
		logrus.Printf("Created minio bucket %s", bucketName)
	}

	logrus.Println("Successfully connected to minio")
	return minioClient
}
