package notifier

import (
	"context"
	"medcalc-service/internal/app/contracts"
	"medcalc-service/internal/pkg/constvars"
	"medcalc-service/internal/pkg/exceptions"
	"medcalc-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Channel is the part of an AMQP channel the notifier publishes through.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type Event struct {
	ID         string      `json:"id"`
	Name       string      `json:"event"`
	RequestID  string      `json:"request_id,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

type notifierService struct {
	mu      sync.Mutex
	Channel Channel
	Queue   string
	Log     *zap.Logger
}

func NewNotifierService(rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.EventPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}
	return NewChannelNotifier(channel, queue, logger), nil
}

func NewChannelNotifier(channel Channel, queue string, logger *zap.Logger) contracts.EventPublisher {
	return &notifierService{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}
}

// Publish sends a persistent JSON event to the events queue. Failures are
// logged and returned; callers treat them as non fatal.
func (s *notifierService) Publish(ctx context.Context, event string, payload interface{}) error {
	requestID := utils.GetRequestID(ctx)
	envelope := Event{
		ID:         uuid.NewString(),
		Name:       event,
		RequestID:  requestID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		s.Log.Error("notifierService.Publish error marshaling event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventKey, event),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		MessageId:    envelope.ID,
		Type:         event,
		Timestamp:    envelope.OccurredAt,
		Headers: amqp091.Table{
			"message_type":     "JSON",
			"requeue_strategy": "DROP",
		},
	}

	s.mu.Lock()
	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	s.mu.Unlock()
	if err != nil {
		s.Log.Error("notifierService.Publish error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventKey, event),
			zap.String(constvars.LoggingQueueKey, s.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	s.Log.Info("notifierService.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventKey, event),
		zap.String(constvars.LoggingQueueKey, s.Queue),
	)
	return nil
}
