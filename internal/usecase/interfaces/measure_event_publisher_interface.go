package interfaces

import (
	"context"
	"measure_service/internal/domain/entities"
)

// IMeasureEventPublisher notifies downstream consumers about measure changes.
type IMeasureEventPublisher interface {
	Publish(ctx context.Context, event entities.MeasureEvent) error
}
