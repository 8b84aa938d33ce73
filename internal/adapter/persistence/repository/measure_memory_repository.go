package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"measure_service/internal/domain/entities"
	"measure_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrMeasureUUIDExists = errors.New("measure uuid already exists")

// MeasureMemoryRepository keeps measures in process memory.
//
// It is selected with STORE_DRIVER=memory for local runs and backs the flow
// tests. The month index gives it the same uniqueness guarantee as the
// durable stores.
type MeasureMemoryRepository struct {
	mu       sync.RWMutex
	measures []entities.Measure
	byUUID   map[string]int
	months   map[string]string
}

var _ interfaces.IMeasureRepository = (*MeasureMemoryRepository)(nil)

func NewMeasureMemoryRepository() *MeasureMemoryRepository {
	return &MeasureMemoryRepository{
		byUUID: make(map[string]int),
		months: make(map[string]string),
	}
}

func (r *MeasureMemoryRepository) Create(ctx context.Context, m entities.Measure) (entities.Measure, error) {
	if err := ctx.Err(); err != nil {
		return entities.Measure{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := m.MonthKey()
	if _, taken := r.months[key]; taken {
		return entities.Measure{}, entities.ErrMonthlyMeasureExists
	}
	if _, taken := r.byUUID[m.MeasureUUID]; taken {
		return entities.Measure{}, ErrMeasureUUIDExists
	}

	m.ID = uuid.NewString()
	m.MeasureDatetime = m.MeasureDatetime.UTC()
	r.measures = append(r.measures, m)
	r.byUUID[m.MeasureUUID] = len(r.measures) - 1
	r.months[key] = m.MeasureUUID
	return cloneMeasure(m), nil
}

func (r *MeasureMemoryRepository) ExistsForMonth(ctx context.Context, customerCode string, measureType entities.MeasureType, at time.Time) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, taken := r.months[entities.MonthLockKey(customerCode, measureType, at)]
	return taken, nil
}

func (r *MeasureMemoryRepository) GetByUUID(ctx context.Context, measureUUID string) (entities.Measure, error) {
	if err := ctx.Err(); err != nil {
		return entities.Measure{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byUUID[measureUUID]
	if !ok {
		return entities.Measure{}, nil
	}
	return cloneMeasure(r.measures[idx]), nil
}

func (r *MeasureMemoryRepository) Confirm(ctx context.Context, measureUUID string, value string, confirmedAt time.Time) (entities.Measure, error) {
	if err := ctx.Err(); err != nil {
		return entities.Measure{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.byUUID[measureUUID]
	if !ok {
		return entities.Measure{}, nil
	}
	if err := r.measures[idx].Confirm(value, confirmedAt); err != nil {
		return entities.Measure{}, err
	}
	return cloneMeasure(r.measures[idx]), nil
}

func (r *MeasureMemoryRepository) ListByCustomer(ctx context.Context, customerCode string, measureType entities.MeasureType) ([]entities.Measure, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Measure, 0)
	for _, m := range r.measures {
		if m.CustomerCode != customerCode {
			continue
		}
		if measureType != "" && m.MeasureType != measureType {
			continue
		}
		out = append(out, cloneMeasure(m))
	}
	return out, nil
}

func cloneMeasure(m entities.Measure) entities.Measure {
	if m.ConfirmedAt != nil {
		at := *m.ConfirmedAt
		m.ConfirmedAt = &at
	}
	return m
}
