package messaging

import (
	"fmt"
	"medcalc-service/internal/app/config"

	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

func connectionURL(driverConfig *config.DriverConfig) string {
	return fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)
}

// NewRabbitMQ dials the broker and makes sure the durable events queue exists
// before any publisher uses it.
func NewRabbitMQ(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *amqp091.Connection {
	conn, err := amqp091.Dial(connectionURL(driverConfig))
	if err != nil {
		logrus.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}

	channel, err := conn.Channel()
	if err != nil {
		logrus.Fatalf("Failed to open rabbitMQ channel: %s", err.Error())
	}
	defer channel.Close()

	_, err = channel.QueueDeclare(internalConfig.RabbitMQ.EventsQueue, true, false, false, false, nil)
	if err != nil {
		logrus.Fatalf("Failed to declare rabbitMQ queue %s: %s", internalConfig.RabbitMQ.EventsQueue, err.Error())
	}

	logrus.Printf("Successfully connected to rabbitMQ, queue %s ready", internalConfig.RabbitMQ.EventsQueue)
	return conn
}
