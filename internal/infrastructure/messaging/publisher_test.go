package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"measure_service/internal/domain/entities"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type fakeChannel struct {
	declared   []string
	declareErr error
	publishErr error
	published  []amqp.Publishing
	keys       []string
	closed     bool
}

func (f *fakeChannel) ExchangeDeclare(name, kind string, _, _, _, _ bool, _ amqp.Table) error {
	f.declared = append(f.declared, name+":"+kind)
	return f.declareErr
}

func (f *fakeChannel) PublishWithContext(_ context.Context, _ string, key string, _, _ bool, msg amqp.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.keys = append(f.keys, key)
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func sampleEvent() entities.MeasureEvent {
	m := entities.Measure{
		MeasureUUID:     "u-1",
		CustomerCode:    "cust-1",
		MeasureType:     entities.MeasureTypeWater,
		MeasureDatetime: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		MeasureValue:    "123",
		HasConfirmed:    true,
	}
	return entities.NewMeasureEvent(entities.MeasureEventConfirmed, m, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC))
}

func TestMeasureEventPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p, err := newMeasureEventPublisher(ch, "measures.events", zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ch.declared) != 1 || ch.declared[0] != "measures.events:topic" {
		t.Fatalf("unexpected exchange declaration: %v", ch.declared)
	}

	if err := p.Publish(context.Background(), sampleEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ch.published) != 1 || ch.keys[0] != "measure.confirmed" {
		t.Fatalf("unexpected publish: %v %v", ch.keys, ch.published)
	}
	msg := ch.published[0]
	if msg.DeliveryMode != amqp.Persistent || msg.ContentType != "application/json" || msg.MessageId != "u-1" {
		t.Fatalf("unexpected message properties: %+v", msg)
	}
	var decoded entities.MeasureEvent
	if err := json.Unmarshal(msg.Body, &decoded); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if decoded.MeasureValue != "123" || decoded.Type != entities.MeasureEventConfirmed {
		t.Fatalf("unexpected body: %+v", decoded)
	}

	if err := p.Close(); err != nil || !ch.closed {
		t.Fatalf("expected channel to be closed")
	}
}

func TestMeasureEventPublisher_Errors(t *testing.T) {
	ch := &fakeChannel{declareErr: errors.New("access refused")}
	if _, err := newMeasureEventPublisher(ch, "x", zap.NewNop()); err == nil || !ch.closed {
		t.Fatalf("expected declare error and closed channel, got %v", err)
	}

	ch = &fakeChannel{publishErr: errors.New("channel closed")}
	p, err := newMeasureEventPublisher(ch, "x", zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Publish(context.Background(), sampleEvent()); err == nil {
		t.Fatalf("expected publish error")
	}
}

func TestNoopPublisher(t *testing.T) {
	if err := NewNoopPublisher(zap.NewNop()).Publish(context.Background(), sampleEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (NoopPublisher{}).Publish(context.Background(), sampleEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
