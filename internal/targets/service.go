package targets

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/nutrition"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/google/uuid"
)

type targetsLister interface {
	ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]DietTarget, error)
}

// Service runs the week aggregations over targets, with each target standing in
// for a logged day.
type Service struct {
	store targetsLister
}

func NewService(store targetsLister) *Service {
	return &Service{
		store: store,
	}
}

func (s *Service) Week(ctx context.Context, userID uuid.UUID, date time.Time) (_ []nutrition.DayTotal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.targets.week")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	monday, sunday := nutrition.WeekBounds(date)
	targets, err := s.store.ListRange(ctx, userID, monday, sunday)
	if err != nil {
		return nil, fmt.Errorf("list targets: %w", err)
	}

	days := make([]nutrition.DayTotal, 0, len(targets))
	for _, t := range targets {
		days = append(days, t.AsDayTotal(nutrition.DayTotal{
			UserID: userID,
			Date:   nutrition.DateOf(t.Date),
		}))
	}
	return days, nil
}

func (s *Service) WeekTotal(ctx context.Context, userID uuid.UUID, date time.Time) (*nutrition.WeekSummary, error) {
	days, err := s.Week(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	summary := nutrition.WeekTotal(userID, days, date)
	return &summary, nil
}

func (s *Service) WeekAverage(ctx context.Context, userID uuid.UUID, date time.Time) (*nutrition.WeekSummary, error) {
	days, err := s.Week(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	summary := nutrition.WeekAverage(userID, days, date)
	return &summary, nil
}
