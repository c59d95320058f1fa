package profile

import (
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/nutrition"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrProfileNotFound = fmt.Errorf("profile %w", nutrition.ErrNotFound)
	ErrProfileExists   = fmt.Errorf("profile already exists: %w", nutrition.ErrConflict)
)

type Profile struct {
	ID            uuid.UUID               `json:"id"`
	UserID        uuid.UUID               `json:"user_id"`
	Sex           nutrition.Sex           `json:"sex"`
	HeightCm      int                     `json:"height"`
	DateOfBirth   time.Time               `json:"date_of_birth"`
	ActivityLevel nutrition.ActivityLevel `json:"activity_level"`
	FitnessGoal   nutrition.FitnessGoal   `json:"fitness_goal"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

func (p Profile) Physiology() nutrition.Profile {
	return nutrition.Profile{
		Sex:           p.Sex,
		HeightCm:      p.HeightCm,
		DateOfBirth:   p.DateOfBirth,
		ActivityLevel: p.ActivityLevel,
		FitnessGoal:   p.FitnessGoal,
	}
}

type ProfileRequest struct {
	Sex           string `json:"sex"`
	HeightCm      int    `json:"height"`
	DateOfBirth   string `json:"date_of_birth"`
	ActivityLevel string `json:"activity_level"`
	FitnessGoal   string `json:"fitness_goal"`
}

// ToProfile validates the request. Codes are matched case-insensitively.
func (r ProfileRequest) ToProfile(today time.Time) (Profile, error) {
	sex, err := nutrition.ParseSex(r.Sex)
	if err != nil {
		return Profile{}, err
	}
	if err := nutrition.ValidateHeight(r.HeightCm); err != nil {
		return Profile{}, err
	}
	dob, err := nutrition.ParseDate(r.DateOfBirth)
	if err != nil {
		return Profile{}, &nutrition.ValidationError{Field: "date_of_birth", Constraint: "must be in YYYY-MM-DD format"}
	}
	if dob.After(nutrition.DateOf(today)) {
		return Profile{}, &nutrition.ValidationError{Field: "date_of_birth", Constraint: "must not be in the future"}
	}
	activity, err := nutrition.ParseActivityLevel(r.ActivityLevel)
	if err != nil {
		return Profile{}, err
	}
	goal, err := nutrition.ParseFitnessGoal(r.FitnessGoal)
	if err != nil {
		return Profile{}, err
	}

	return Profile{
		Sex:           sex,
		HeightCm:      r.HeightCm,
		DateOfBirth:   dob,
		ActivityLevel: activity,
		FitnessGoal:   goal,
	}, nil
}

// Metrics is the body metrics view of a profile on a date.
type Metrics struct {
	Username string    `json:"username"`
	Date     time.Time `json:"date"`
	Profile  Profile   `json:"profile"`
	nutrition.BodyMetrics
	LatestWeightDate *time.Time `json:"latest_weight_date"`
}

// MetricsOf computes the metrics with the latest weight reading, falling back to
// the default weight when there is none.
func MetricsOf(username string, p Profile, date time.Time, latest *nutrition.Reading) Metrics {
	var weight decimal.NullDecimal
	var weightDate *time.Time
	if latest != nil && latest.WeightKg.Valid {
		weight = latest.WeightKg
		d := nutrition.DateOf(latest.Date)
		weightDate = &d
	}
	return Metrics{
		Username:         username,
		Date:             nutrition.DateOf(date),
		Profile:          p,
		BodyMetrics:      nutrition.Calculate(p.Physiology(), weight, date),
		LatestWeightDate: weightDate,
	}
}
