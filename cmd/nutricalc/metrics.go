package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/fittrack/internal/nutrition"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newMetricsCmd(printer func(*cobra.Command) *resultPrinter) *cobra.Command {
	var (
		sex      string
		height   int
		dob      string
		weight   string
		activity string
		goal     string
		asOf     string
	)

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Compute age, BMI, BMR, TDEE and target calories",
		Long: `Compute body metrics for a profile.

Without --weight the default weight of 75 kg is used, the same way the
backend does for users with no weight readings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := parseProfile(sex, height, dob, activity, goal)
			if err != nil {
				return err
			}

			var w decimal.NullDecimal
			if weight != "" {
				d, err := decimal.NewFromString(weight)
				if err != nil {
					return fmt.Errorf("invalid weight: %s", weight)
				}
				w = decimal.NewNullDecimal(d)
			}

			day := nutrition.DateOf(time.Now())
			if asOf != "" {
				day, err = nutrition.ParseDate(asOf)
				if err != nil {
					return err
				}
			}

			m := nutrition.Calculate(profile, w, day)
			bmi := "-"
			if m.BMI.Valid {
				bmi = m.BMI.Decimal.StringFixed(2)
			}

			return printer(cmd).print("Body metrics", []field{
				{"Sex", "sex", profile.Sex.String()},
				{"Activity level", "activity_level", profile.ActivityLevel.String()},
				{"Fitness goal", "fitness_goal", profile.FitnessGoal.String()},
				{"Age", "age", strconv.Itoa(m.Age)},
				{"Weight (kg)", "weight", m.Weight.String()},
				{"Default weight", "weight_default", strconv.FormatBool(m.WeightDefault)},
				{"BMI", "bmi", bmi},
				{"BMR (kcal)", "bmr", m.BMR.StringFixed(2)},
				{"TDEE (kcal)", "tdee", m.TDEE.StringFixed(2)},
				{"Target (kcal)", "target_calories", m.TargetCalories.StringFixed(2)},
			})
		},
	}

	cmd.Flags().StringVar(&sex, "sex", "M", "sex [M | F]")
	cmd.Flags().IntVar(&height, "height", 0, "height in cm")
	cmd.Flags().StringVar(&dob, "dob", "", "date of birth (YYYY-MM-DD)")
	cmd.Flags().StringVar(&weight, "weight", "", "body weight in kg")
	cmd.Flags().StringVar(&activity, "activity", string(nutrition.Sedentary), "activity level [SD | LA | MA | VA | EA]")
	cmd.Flags().StringVar(&goal, "goal", string(nutrition.MaintainWeight), "fitness goal [LW | MW | GW]")
	cmd.Flags().StringVar(&asOf, "as-of", "", "compute as of this date (YYYY-MM-DD), defaults to today")
	_ = cmd.MarkFlagRequired("height")
	_ = cmd.MarkFlagRequired("dob")

	return cmd
}

func parseProfile(sex string, height int, dob, activity, goal string) (nutrition.Profile, error) {
	s, err := nutrition.ParseSex(sex)
	if err != nil {
		return nutrition.Profile{}, err
	}
	if err := nutrition.ValidateHeight(height); err != nil {
		return nutrition.Profile{}, err
	}
	born, err := nutrition.ParseDate(dob)
	if err != nil {
		return nutrition.Profile{}, err
	}
	a, err := nutrition.ParseActivityLevel(activity)
	if err != nil {
		return nutrition.Profile{}, err
	}
	g, err := nutrition.ParseFitnessGoal(goal)
	if err != nil {
		return nutrition.Profile{}, err
	}

	return nutrition.Profile{
		Sex:           s,
		HeightCm:      height,
		DateOfBirth:   born,
		ActivityLevel: a,
		FitnessGoal:   g,
	}, nil
}
