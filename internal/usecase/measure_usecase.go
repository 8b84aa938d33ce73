package usecase

import (
	"context"
	"errors"
	"fmt"
	"measure_service/internal/domain/entities"
	"measure_service/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidData           = errors.New("invalid data")
	ErrInvalidType           = errors.New("invalid measure type")
	ErrFileNotFound          = errors.New("file not found")
	ErrDoubleReport          = errors.New("measure already reported this month")
	ErrMeasureNotFound       = errors.New("measure not found")
	ErrConfirmationDuplicate = errors.New("measure already confirmed")
	ErrMeasuresNotFound      = errors.New("no measures found")
	ErrAnalysisFailed        = errors.New("image analysis failed")
	ErrStorageUnavailable    = errors.New("storage unavailable")
	ErrInternal              = errors.New("internal error")
)

const (
	DefaultAnalysisPrompt  = "Identify the numeric meter reading in this image. Answer with the number only."
	DefaultAnalysisTimeout = 30 * time.Second
)

// UploadMeasureInput is the raw upload request, validated by Upload.
type UploadMeasureInput struct {
	CustomerCode    string
	MeasureDatetime string
	MeasureType     string
	Image           string
}

// IMeasureUseCase exposes the measure workflows:
//   - POST /upload  => Upload()
//   - POST|PATCH /confirm => Confirm()
//   - GET /measures/:customer_code => ListByCustomer()

type IMeasureUseCase interface {
	Upload(ctx context.Context, in UploadMeasureInput) (entities.Measure, error)
	Confirm(ctx context.Context, measureUUID string, confirmedValue *string) (entities.Measure, error)
	ListByCustomer(ctx context.Context, customerCode string, measureType string) ([]entities.Measure, error)
}

type MeasureUseCaseConfig struct {
	AnalysisPrompt  string
	AnalysisTimeout time.Duration
}

type MeasureUseCase struct {
	repo      interfaces.IMeasureRepository
	gateway   interfaces.IAnalysisGateway
	resolver  interfaces.IImageResolver
	publisher interfaces.IMeasureEventPublisher
	logger    *zap.Logger
	prompt    string
	timeout   time.Duration
	now       func() time.Time
}

var _ IMeasureUseCase = (*MeasureUseCase)(nil)

func NewMeasureUseCase(
	repo interfaces.IMeasureRepository,
	gateway interfaces.IAnalysisGateway,
	resolver interfaces.IImageResolver,
	publisher interfaces.IMeasureEventPublisher,
	logger *zap.Logger,
	cfg MeasureUseCaseConfig,
) *MeasureUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if strings.TrimSpace(cfg.AnalysisPrompt) == "" {
		cfg.AnalysisPrompt = DefaultAnalysisPrompt
	}
	if cfg.AnalysisTimeout <= 0 {
		cfg.AnalysisTimeout = DefaultAnalysisTimeout
	}
	return &MeasureUseCase{
		repo:      repo,
		gateway:   gateway,
		resolver:  resolver,
		publisher: publisher,
		logger:    logger.Named("measure.usecase"),
		prompt:    cfg.AnalysisPrompt,
		timeout:   cfg.AnalysisTimeout,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Upload validates the request, rejects a second reading for the same
// customer, type and month, reads the meter through the analysis gateway and
// stores the pending measure.
func (u *MeasureUseCase) Upload(ctx context.Context, in UploadMeasureInput) (entities.Measure, error) {
	customerCode := strings.TrimSpace(in.CustomerCode)
	rawDatetime := strings.TrimSpace(in.MeasureDatetime)
	rawType := strings.TrimSpace(in.MeasureType)
	imageRef := strings.TrimSpace(in.Image)

	if customerCode == "" || rawDatetime == "" || rawType == "" || imageRef == "" {
		u.logger.Debug("upload rejected: missing fields")
		return entities.Measure{}, ErrInvalidData
	}
	measureType, err := entities.ParseMeasureType(rawType)
	if err != nil {
		u.logger.Debug("upload rejected: invalid type", zap.String("measure_type", rawType))
		return entities.Measure{}, ErrInvalidType
	}
	measureDatetime, err := entities.ParseMeasureDatetime(rawDatetime)
	if err != nil {
		u.logger.Debug("upload rejected: invalid datetime", zap.String("measure_datetime", rawDatetime))
		return entities.Measure{}, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}

	log := u.logger.With(
		zap.String("customer_code", customerCode),
		zap.String("measure_type", string(measureType)),
		zap.String("month", entities.MonthKey(measureDatetime)),
	)

	if u.resolver == nil {
		return entities.Measure{}, fmt.Errorf("%w: image resolver not configured", ErrInternal)
	}
	image, err := u.resolver.Resolve(ctx, imageRef)
	if err != nil {
		switch {
		case errors.Is(err, interfaces.ErrImageNotFound):
			log.Info("upload rejected: image not found", zap.Error(err))
			return entities.Measure{}, fmt.Errorf("%w: %w", ErrFileNotFound, err)
		case errors.Is(err, interfaces.ErrImageNotSupported):
			log.Info("upload rejected: image not supported", zap.Error(err))
			return entities.Measure{}, fmt.Errorf("%w: %w", ErrInvalidData, err)
		default:
			log.Error("image resolution failed", zap.Error(err))
			return entities.Measure{}, fmt.Errorf("%w: %w", ErrInternal, err)
		}
	}
	if image.Release != nil {
		defer image.Release()
	}

	if err := u.checkDoubleReport(ctx, customerCode, measureType, measureDatetime); err != nil {
		log.Info("upload rejected", zap.Error(err))
		return entities.Measure{}, err
	}

	value, imageURL, err := u.analyze(ctx, image)
	if err != nil {
		log.Error("image analysis failed", zap.Error(err))
		return entities.Measure{}, err
	}

	m := entities.Measure{
		CustomerCode:    customerCode,
		MeasureUUID:     uuid.NewString(),
		MeasureDatetime: measureDatetime,
		MeasureType:     measureType,
		HasConfirmed:    false,
		ImageURL:        imageURL,
		MeasureValue:    value,
		CreatedAt:       u.now(),
	}

	created, err := u.repo.Create(ctx, m)
	if err != nil {
		if errors.Is(err, entities.ErrMonthlyMeasureExists) {
			log.Info("upload rejected by store: month already reported", zap.String("measure_uuid", m.MeasureUUID))
			return entities.Measure{}, ErrDoubleReport
		}
		log.Error("measure create failed", zap.String("measure_uuid", m.MeasureUUID), zap.Error(err))
		return entities.Measure{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	log.Info("measure created", zap.String("measure_uuid", created.MeasureUUID), zap.String("measure_value", created.MeasureValue))

	u.publish(ctx, entities.MeasureEventCreated, created)
	return created, nil
}

func (u *MeasureUseCase) checkDoubleReport(ctx context.Context, customerCode string, measureType entities.MeasureType, at time.Time) error {
	exists, err := u.repo.ExistsForMonth(ctx, customerCode, measureType, at)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	if exists {
		return ErrDoubleReport
	}
	return nil
}

func (u *MeasureUseCase) analyze(ctx context.Context, image interfaces.ResolvedImage) (value string, imageURL string, err error) {
	if u.gateway == nil {
		return "", "", fmt.Errorf("%w: analysis gateway not configured", ErrAnalysisFailed)
	}

	analysisCtx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	result, err := u.gateway.Analyze(analysisCtx, image, u.prompt)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}
	if strings.TrimSpace(result.ImageURL) == "" {
		return "", "", fmt.Errorf("%w: gateway returned no image reference", ErrAnalysisFailed)
	}
	value, err = entities.NormalizeMeasureValue(result.RawValue)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}
	return value, result.ImageURL, nil
}

// Confirm is the one-shot Pending -> Confirmed transition. A nil
// confirmedValue means the field was absent; an empty string is a value.
func (u *MeasureUseCase) Confirm(ctx context.Context, measureUUID string, confirmedValue *string) (entities.Measure, error) {
	measureUUID = strings.TrimSpace(measureUUID)
	if measureUUID == "" || confirmedValue == nil {
		return entities.Measure{}, ErrInvalidData
	}
	log := u.logger.With(zap.String("measure_uuid", measureUUID))

	current, err := u.repo.GetByUUID(ctx, measureUUID)
	if err != nil {
		log.Error("measure lookup failed", zap.Error(err))
		return entities.Measure{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	if current.MeasureUUID == "" {
		log.Info("confirm rejected: measure not found")
		return entities.Measure{}, ErrMeasureNotFound
	}

	now := u.now()
	if err := current.Confirm(*confirmedValue, now); err != nil {
		log.Info("confirm rejected: already confirmed")
		return entities.Measure{}, ErrConfirmationDuplicate
	}

	updated, err := u.repo.Confirm(ctx, measureUUID, *confirmedValue, now)
	if err != nil {
		if errors.Is(err, entities.ErrMeasureAlreadyConfirmed) {
			log.Info("confirm rejected by store: already confirmed")
			return entities.Measure{}, ErrConfirmationDuplicate
		}
		log.Error("measure confirm failed", zap.Error(err))
		return entities.Measure{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	if updated.MeasureUUID == "" {
		return entities.Measure{}, ErrMeasureNotFound
	}
	log.Info("measure confirmed", zap.String("measure_value", updated.MeasureValue))

	u.publish(ctx, entities.MeasureEventConfirmed, updated)
	return updated, nil
}

// ListByCustomer returns the customer's measures, optionally filtered by type
// (case-insensitive). An empty result is ErrMeasuresNotFound, filter or not.
func (u *MeasureUseCase) ListByCustomer(ctx context.Context, customerCode string, measureType string) ([]entities.Measure, error) {
	customerCode = strings.TrimSpace(customerCode)
	if customerCode == "" {
		return nil, ErrInvalidData
	}
	filter := entities.MeasureType(strings.ToUpper(strings.TrimSpace(measureType)))

	measures, err := u.repo.ListByCustomer(ctx, customerCode, filter)
	if err != nil {
		u.logger.Error("measure list failed", zap.String("customer_code", customerCode), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	if len(measures) == 0 {
		return nil, ErrMeasuresNotFound
	}
	return measures, nil
}

func (u *MeasureUseCase) publish(ctx context.Context, eventType entities.MeasureEventType, m entities.Measure) {
	if u.publisher == nil {
		return
	}
	ev := entities.NewMeasureEvent(eventType, m, u.now())
	if err := u.publisher.Publish(ctx, ev); err != nil {
		u.logger.Warn("measure event publish failed",
			zap.String("event", string(eventType)),
			zap.String("measure_uuid", m.MeasureUUID),
			zap.Error(err),
		)
	}
}
