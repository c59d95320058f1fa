package training

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/nutrition"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type setsLister interface {
	ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]Set, error)
}

type Service struct {
	sets setsLister
}

func NewService(sets setsLister) *Service {
	return &Service{
		sets: sets,
	}
}

// Aggregate loads the ISO week of date and rolls it up with AggregateDay.
func (s *Service) Aggregate(ctx context.Context, userID uuid.UUID, date time.Time) (_ *Aggregate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.aggregate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date.Format(nutrition.DateLayout)))

	monday, sunday := nutrition.WeekBounds(date)
	sets, err := s.sets.ListRange(ctx, userID, monday, sunday)
	if err != nil {
		return nil, fmt.Errorf("list workout sets: %w", err)
	}

	agg := AggregateDay(sets, date)
	return &agg, nil
}
