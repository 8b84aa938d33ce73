package interfaces

import (
	"context"
	"measure_service/internal/domain/entities"
	"time"
)

// IMeasureRepository abstracts persistence for Measure.
//
// Contract:
//   - Create enforces one measure per (customer, type, UTC month) and returns
//     entities.ErrMonthlyMeasureExists when the slot is already taken
//   - GetByUUID returns a zero Measure (empty MeasureUUID) when nothing matches
//   - Confirm is a single conditional update; it returns a zero Measure when the
//     uuid is unknown and entities.ErrMeasureAlreadyConfirmed when it lost
//   - ListByCustomer returns measures in insertion order; an empty measureType
//     means no filter

type IMeasureRepository interface {
	Create(ctx context.Context, m entities.Measure) (entities.Measure, error)
	ExistsForMonth(ctx context.Context, customerCode string, measureType entities.MeasureType, at time.Time) (bool, error)
	GetByUUID(ctx context.Context, measureUUID string) (entities.Measure, error)
	Confirm(ctx context.Context, measureUUID string, value string, confirmedAt time.Time) (entities.Measure, error)
	ListByCustomer(ctx context.Context, customerCode string, measureType entities.MeasureType) ([]entities.Measure, error)
}
