package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/nutrition"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type readingsStore interface {
	ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]nutrition.Reading, error)
	Latest(ctx context.Context, userID uuid.UUID, date time.Time) (*nutrition.Reading, error)
}

type Service struct {
	store readingsStore
}

func NewService(store readingsStore) *Service {
	return &Service{
		store: store,
	}
}

// Readings loads every reading Aggregate needs for date: the month widened to whole
// weeks, plus the latest weight when it is older than that window.
func (s *Service) Readings(ctx context.Context, userID uuid.UUID, date time.Time) ([]nutrition.Reading, error) {
	from, to := nutrition.MonthSpan(date)
	readings, err := s.store.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list readings: %w", err)
	}

	latest, err := s.store.Latest(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("latest reading: %w", err)
	}
	if latest != nil && latest.Date.Before(from) {
		readings = append(readings, *latest)
	}
	return readings, nil
}

func (s *Service) Aggregate(ctx context.Context, userID uuid.UUID, date time.Time) (_ *nutrition.ProgressSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.aggregate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date.Format(nutrition.DateLayout)))

	readings, err := s.Readings(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	summary := nutrition.AggregateProgress(userID, readings, date)
	return &summary, nil
}
