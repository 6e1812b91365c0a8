package database

import (
	"context"
	"fmt"
	"medcalc-service/internal/app/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func NewRedisClient(driverConfig *config.DriverConfig) *redis.Client {
	var ctx = context.Background()
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
		DB:       driverConfig.Redis.DB,
	})

	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		logrus.Fatalf("Could not connect to Redis: %v", err)
	}
	logrus.Println("Successfully connected to redis")

	return rdb
}
