package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/nutrition"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, p Profile) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", p.UserID.String()))

	p.ID = uuid.New()
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO profile (id, user_id, sex, height, date_of_birth, activity_level, fitness_goal)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING created_at, updated_at;`,
		p.ID, p.UserID, string(p.Sex), p.HeightCm, p.DateOfBirth, string(p.ActivityLevel), string(p.FitnessGoal),
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrProfileExists
		}
		return nil, fmt.Errorf("insert profile: %w", err)
	}
	return &p, nil
}

func (r *Repo) Update(ctx context.Context, p Profile) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", p.UserID.String()))

	err = r.db.QueryRow(
		ctx,
		`UPDATE profile SET
				sex = $1, height = $2, date_of_birth = $3, activity_level = $4, fitness_goal = $5,
				updated_at = now()
			WHERE user_id = $6
			RETURNING id, created_at, updated_at;`,
		string(p.Sex), p.HeightCm, p.DateOfBirth, string(p.ActivityLevel), string(p.FitnessGoal), p.UserID,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *Repo) GetByUser(ctx context.Context, userID uuid.UUID) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.getByUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	var p Profile
	var sex, activity, goal string
	err = r.db.QueryRow(
		ctx,
		`SELECT id, user_id, sex, height, date_of_birth, activity_level, fitness_goal, created_at, updated_at
			FROM profile
			WHERE user_id = $1;`,
		userID,
	).Scan(&p.ID, &p.UserID, &sex, &p.HeightCm, &p.DateOfBirth, &activity, &goal, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	p.Sex = nutrition.SexFromCode(sex)
	p.ActivityLevel = nutrition.ActivityLevelFromCode(activity)
	p.FitnessGoal = nutrition.FitnessGoalFromCode(goal)
	return &p, nil
}
