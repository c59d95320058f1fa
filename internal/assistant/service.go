package assistant

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/nutrition"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/training"
	"github.com/2beens/fittrack/internal/users"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ErrPrivateUser is returned for users who keep their logs private.
var ErrPrivateUser = errors.New("user is private")

type usersFinder interface {
	GetByUsername(ctx context.Context, username string) (*users.User, error)
}

type dietViews interface {
	Day(ctx context.Context, username string, userID uuid.UUID, date time.Time) (*nutrition.DietDay, error)
	WeekTotal(ctx context.Context, userID uuid.UUID, date time.Time) (*nutrition.WeekSummary, error)
}

type profilesGetter interface {
	GetByUser(ctx context.Context, userID uuid.UUID) (*profile.Profile, error)
}

type weightLookup interface {
	Latest(ctx context.Context, userID uuid.UUID, date time.Time) (*nutrition.Reading, error)
}

type trainingAggregator interface {
	Aggregate(ctx context.Context, userID uuid.UUID, date time.Time) (*training.Aggregate, error)
}

// contextService is what the tool handlers need; ContextService implements it.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	DietDay(ctx context.Context, username string, date time.Time) (*nutrition.DietDay, error)
	DietWeekTotal(ctx context.Context, username string, date time.Time) (*nutrition.WeekSummary, error)
	BodyMetrics(ctx context.Context, username string, date time.Time) (*profile.Metrics, error)
	TrainingAggregate(ctx context.Context, username string, date time.Time) (*training.Aggregate, error)
}

type ContextService struct {
	schema   SchemaRepo
	users    usersFinder
	diet     dietViews
	profiles profilesGetter
	weights  weightLookup
	training trainingAggregator
}

func NewContextService(
	schema SchemaRepo,
	users usersFinder,
	diet dietViews,
	profiles profilesGetter,
	weights weightLookup,
	training trainingAggregator,
) *ContextService {
	return &ContextService{
		schema:   schema,
		users:    users,
		diet:     diet,
		profiles: profiles,
		weights:  weights,
		training: training,
	}
}

// GetSchema returns the columns of the fittrack tables as markdown.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatSchema(cols), nil
}

func formatSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Fittrack DB Schema\n\nNo fittrack tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}
	tables := make([]string, 0, len(byTable))
	for t := range byTable {
		tables = append(tables, t)
	}
	sort.Strings(tables)

	var b strings.Builder
	b.WriteString("# Fittrack DB Schema\n")
	for _, table := range tables {
		b.WriteString("\n## " + table + "\n\n")
		b.WriteString("| Column | Type | Nullable | Default |\n|--------|------|----------|---------|\n")
		for _, c := range byTable[table] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def)
		}
	}
	return b.String()
}

func (s *ContextService) DietDay(ctx context.Context, username string, date time.Time) (_ *nutrition.DietDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.assistant.dietDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := s.publicUser(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.diet.Day(ctx, user.Username, user.ID, date)
}

func (s *ContextService) DietWeekTotal(ctx context.Context, username string, date time.Time) (_ *nutrition.WeekSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.assistant.dietWeekTotal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := s.publicUser(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.diet.WeekTotal(ctx, user.ID, date)
}

// BodyMetrics computes BMI, BMR and calorie targets from the user's profile and
// the latest weight at or before date.
func (s *ContextService) BodyMetrics(ctx context.Context, username string, date time.Time) (_ *profile.Metrics, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.assistant.bodyMetrics")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := s.publicUser(ctx, username)
	if err != nil {
		return nil, err
	}
	p, err := s.profiles.GetByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	latest, err := s.weights.Latest(ctx, user.ID, date)
	if err != nil {
		return nil, fmt.Errorf("latest weight: %w", err)
	}

	metrics := profile.MetricsOf(user.Username, *p, date, latest)
	return &metrics, nil
}

func (s *ContextService) TrainingAggregate(ctx context.Context, username string, date time.Time) (_ *training.Aggregate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.assistant.trainingAggregate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := s.publicUser(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.training.Aggregate(ctx, user.ID, date)
}

func (s *ContextService) publicUser(ctx context.Context, username string) (*users.User, error) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("username", username))

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user.IsPrivate {
		return nil, ErrPrivateUser
	}
	return user, nil
}
