package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"measure_service/internal/domain/entities"
	"measure_service/internal/usecase/interfaces"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// amqpChannel is the subset of *amqp.Channel the publisher needs.
type amqpChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// MeasureEventPublisher publishes measure events to a topic exchange, using
// the event type (measure.created, measure.confirmed) as routing key.
type MeasureEventPublisher struct {
	mu       sync.Mutex
	channel  amqpChannel
	exchange string
	logger   *zap.Logger
}

var _ interfaces.IMeasureEventPublisher = (*MeasureEventPublisher)(nil)

func NewMeasureEventPublisher(conn *Connection, exchange string, logger *zap.Logger) (*MeasureEventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}
	return newMeasureEventPublisher(ch, exchange, logger)
}

func newMeasureEventPublisher(ch amqpChannel, exchange string, logger *zap.Logger) (*MeasureEventPublisher, error) {
	err := ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		ch.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &MeasureEventPublisher{
		channel:  ch,
		exchange: exchange,
		logger:   logger.Named("measure.events"),
	}, nil
}

func (p *MeasureEventPublisher) Publish(ctx context.Context, event entities.MeasureEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		string(event.Type),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    event.MeasureUUID,
			Timestamp:    event.OccurredAt,
			Type:         string(event.Type),
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	p.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.logger.Debug("published measure event",
		zap.String("routing_key", string(event.Type)),
		zap.String("measure_uuid", event.MeasureUUID),
		zap.String("customer_code", event.CustomerCode),
	)
	return nil
}

// Close closes the publisher channel
func (p *MeasureEventPublisher) Close() error {
	if p.channel != nil {
		return p.channel.Close()
	}
	return nil
}

// NoopPublisher drops events. Used when RABBITMQ_URL is not set.
type NoopPublisher struct {
	logger *zap.Logger
}

var _ interfaces.IMeasureEventPublisher = NoopPublisher{}

func NewNoopPublisher(logger *zap.Logger) NoopPublisher {
	return NoopPublisher{logger: logger}
}

func (n NoopPublisher) Publish(_ context.Context, event entities.MeasureEvent) error {
	if n.logger != nil {
		n.logger.Debug("measure event dropped: publisher disabled",
			zap.String("event", string(event.Type)),
			zap.String("measure_uuid", event.MeasureUUID),
		)
	}
	return nil
}
