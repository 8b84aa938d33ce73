package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"measure_service/internal/domain/entities"
	"measure_service/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation           = "23505"
	measuresMonthlyUniqueConstr = "measures_customer_type_month_key"

	measureColumns = `id, customer_code, measure_uuid, measure_datetime, measure_type,
		has_confirmed, image_url, measure_value, created_at, confirmed_at`
)

// MeasurePostgresRepository persists Measure entities in PostgreSQL.
//
// Schema: see internal/adapter/persistence/migrations. measure_month holds the
// UTC first day of the reading's month and carries the monthly UNIQUE
// constraint, so concurrent uploads cannot both be inserted.
type MeasurePostgresRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IMeasureRepository = (*MeasurePostgresRepository)(nil)

func NewMeasurePostgresRepository(pool *pgxpool.Pool) *MeasurePostgresRepository {
	return &MeasurePostgresRepository{pool: pool}
}

func (r *MeasurePostgresRepository) Create(ctx context.Context, m entities.Measure) (entities.Measure, error) {
	query := `
		INSERT INTO measures (
			customer_code, measure_uuid, measure_datetime, measure_month, measure_type,
			has_confirmed, image_url, measure_value, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	m.MeasureDatetime = m.MeasureDatetime.UTC()
	monthStart, _ := entities.MonthWindow(m.MeasureDatetime)

	var id int64
	err := r.pool.QueryRow(ctx, query,
		m.CustomerCode,
		m.MeasureUUID,
		m.MeasureDatetime,
		monthStart,
		string(m.MeasureType),
		m.HasConfirmed,
		m.ImageURL,
		m.MeasureValue,
		m.CreatedAt.UTC(),
	).Scan(&id)
	if err != nil {
		if isMonthlyUniqueViolation(err) {
			return entities.Measure{}, entities.ErrMonthlyMeasureExists
		}
		return entities.Measure{}, fmt.Errorf("failed to insert measure: %w", err)
	}

	m.ID = strconv.FormatInt(id, 10)
	return m, nil
}

func isMonthlyUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == measuresMonthlyUniqueConstr
}

func (r *MeasurePostgresRepository) ExistsForMonth(ctx context.Context, customerCode string, measureType entities.MeasureType, at time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM measures
			WHERE customer_code = $1
			AND measure_type = $2
			AND measure_datetime >= $3
			AND measure_datetime < $4
		)
	`

	start, end := entities.MonthWindow(at)
	var exists bool
	if err := r.pool.QueryRow(ctx, query, customerCode, string(measureType), start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check monthly measure: %w", err)
	}
	return exists, nil
}

func (r *MeasurePostgresRepository) GetByUUID(ctx context.Context, measureUUID string) (entities.Measure, error) {
	query := `SELECT ` + measureColumns + ` FROM measures WHERE measure_uuid = $1`

	m, err := scanMeasure(r.pool.QueryRow(ctx, query, measureUUID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Measure{}, nil
		}
		return entities.Measure{}, fmt.Errorf("failed to query measure: %w", err)
	}
	return m, nil
}

func (r *MeasurePostgresRepository) Confirm(ctx context.Context, measureUUID string, value string, confirmedAt time.Time) (entities.Measure, error) {
	query := `
		UPDATE measures
		SET has_confirmed = TRUE, measure_value = $2, confirmed_at = $3
		WHERE measure_uuid = $1 AND has_confirmed = FALSE
		RETURNING ` + measureColumns

	m, err := scanMeasure(r.pool.QueryRow(ctx, query, measureUUID, value, confirmedAt.UTC()))
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return entities.Measure{}, fmt.Errorf("failed to confirm measure: %w", err)
	}

	// No row updated: either unknown uuid or already confirmed.
	existing, err := r.GetByUUID(ctx, measureUUID)
	if err != nil {
		return entities.Measure{}, err
	}
	if existing.MeasureUUID == "" {
		return entities.Measure{}, nil
	}
	return entities.Measure{}, entities.ErrMeasureAlreadyConfirmed
}

func (r *MeasurePostgresRepository) ListByCustomer(ctx context.Context, customerCode string, measureType entities.MeasureType) ([]entities.Measure, error) {
	query := `
		SELECT ` + measureColumns + `
		FROM measures
		WHERE customer_code = $1
		AND ($2 = '' OR measure_type = $2)
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, customerCode, string(measureType))
	if err != nil {
		return nil, fmt.Errorf("failed to query measures: %w", err)
	}
	defer rows.Close()

	measures := make([]entities.Measure, 0)
	for rows.Next() {
		m, err := scanMeasure(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan measure: %w", err)
		}
		measures = append(measures, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return measures, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMeasure(row rowScanner) (entities.Measure, error) {
	var (
		m           entities.Measure
		id          int64
		measureType string
	)
	err := row.Scan(
		&id,
		&m.CustomerCode,
		&m.MeasureUUID,
		&m.MeasureDatetime,
		&measureType,
		&m.HasConfirmed,
		&m.ImageURL,
		&m.MeasureValue,
		&m.CreatedAt,
		&m.ConfirmedAt,
	)
	if err != nil {
		return entities.Measure{}, err
	}
	m.ID = strconv.FormatInt(id, 10)
	m.MeasureType = entities.MeasureType(measureType)
	m.MeasureDatetime = m.MeasureDatetime.UTC()
	m.CreatedAt = m.CreatedAt.UTC()
	if m.ConfirmedAt != nil {
		at := m.ConfirmedAt.UTC()
		m.ConfirmedAt = &at
	}
	return m, nil
}
