package database

import (
	"context"
	"fmt"
	"medcalc-service/internal/app/config"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func mongoConnectionString(driverConfig *config.DriverConfig) string {
	if driverConfig.MongoDB.Username == "" {
		return fmt.Sprintf("mongodb://%s:%s", driverConfig.MongoDB.Host, driverConfig.MongoDB.Port)
	}
	return fmt.Sprintf(
		"mongodb://%s:%s@%s:%s",
		driverConfig.MongoDB.Username,
		driverConfig.MongoDB.Password,
		driverConfig.MongoDB.Host,
		driverConfig.MongoDB.Port,
	)
}

func NewMongoDB(driverConfig *config.DriverConfig) *mongo.Database {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbOptions := options.Client().ApplyURI(mongoConnectionString(driverConfig))
	client, err := mongo.Connect(ctx, dbOptions)
	if err != nil {
		logrus.Fatalf("Failed to connect to mongo database: %s", err.Error())
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		logrus.Fatalf("Failed to ping or test the connection to mongo database: %s", err.Error())
	}
	logrus.Println("Successfully connected to mongo database")
	return client.Database(driverConfig.MongoDB.DbName)
}
