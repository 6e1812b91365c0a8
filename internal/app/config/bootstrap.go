package config

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	MongoDB        *mongo.Database
	Minio          *minio.Client
	RabbitMQ       *amqp091.Connection
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	err := b.Redis.Close()
	if err != nil {
		return err
	}
	logrus.Println("Successfully closing Redis")

	err = b.MongoDB.Client().Disconnect(ctx)
	if err != nil {
		return err
	}
	logrus.Println("Successfully closing MongoDB")

	err = b.RabbitMQ.Close()
	if err != nil {
		return err
	}
	logrus.Println("Successfully closing RabbitMQ")

	b.Logger.Sync()
	logrus.Println("Successfully closing Logger")

	return nil
}
