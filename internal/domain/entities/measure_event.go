package entities

import "time"

type MeasureEventType string

const (
	MeasureEventCreated   MeasureEventType = "measure.created"
	MeasureEventConfirmed MeasureEventType = "measure.confirmed"
)

// MeasureEvent is published after a measure is persisted or confirmed.
// Downstream billing consumes measure.confirmed.
type MeasureEvent struct {
	Type            MeasureEventType `json:"type"`
	MeasureUUID     string           `json:"measure_uuid"`
	CustomerCode    string           `json:"customer_code"`
	MeasureType     MeasureType      `json:"measure_type"`
	MeasureDatetime time.Time        `json:"measure_datetime"`
	MeasureValue    string           `json:"measure_value"`
	HasConfirmed    bool             `json:"has_confirmed"`
	OccurredAt      time.Time        `json:"occurred_at"`
}

func NewMeasureEvent(eventType MeasureEventType, m Measure, at time.Time) MeasureEvent {
	return MeasureEvent{
		Type:            eventType,
		MeasureUUID:     m.MeasureUUID,
		CustomerCode:    m.CustomerCode,
		MeasureType:     m.MeasureType,
		MeasureDatetime: m.MeasureDatetime,
		MeasureValue:    m.MeasureValue,
		HasConfirmed:    m.HasConfirmed,
		OccurredAt:      at.UTC(),
	}
}
