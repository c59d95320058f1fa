package main

import (
	"fmt"
	"strconv"

	"github.com/2beens/fittrack/internal/nutrition"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newTargetCmd(printer func(*cobra.Command) *resultPrinter) *cobra.Command {
	var weight, protein, carbs, fat string

	cmd := &cobra.Command{
		Use:   "target",
		Short: "Plan a daily diet target from grams per kg of body weight",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in nutrition.TargetInput
			for _, p := range []struct {
				name  string
				raw   string
				value *decimal.Decimal
			}{
				{"weight", weight, &in.Weight},
				{"protein", protein, &in.ProteinPerKg},
				{"carbs", carbs, &in.CarbohydratePerKg},
				{"fat", fat, &in.FatPerKg},
			} {
				d, err := decimal.NewFromString(p.raw)
				if err != nil {
					return fmt.Errorf("invalid %s: %s", p.name, p.raw)
				}
				*p.value = d
			}

			target, err := nutrition.PlanTarget(in)
			if err != nil {
				return err
			}
			macros, _ := target.Ratios()

			return printer(cmd).print("Diet target", []field{
				{"Weight (kg)", "weight", target.Weight.String()},
				{"Energy (kcal)", "energy", strconv.Itoa(target.Energy)},
				{"Protein (g)", "protein", target.Protein.StringFixed(2)},
				{"Carbohydrate (g)", "carbohydrate", target.Carbohydrate.StringFixed(2)},
				{"Fat (g)", "fat", target.Fat.StringFixed(2)},
				{"Saturates (g)", "saturates", target.Saturates.StringFixed(2)},
				{"Sugars (g)", "sugars", target.Sugars.StringFixed(2)},
				{"Fibre (g)", "fibre", target.Fibre.StringFixed(2)},
				{"Salt (g)", "salt", target.Salt.StringFixed(2)},
				{"Protein %", "protein_pct", pctString(macros.ProteinPct)},
				{"Carbohydrate %", "carbohydrate_pct", pctString(macros.CarbohydratePct)},
				{"Fat %", "fat_pct", pctString(macros.FatPct)},
			})
		},
	}

	cmd.Flags().StringVar(&weight, "weight", "", "target body weight in kg")
	cmd.Flags().StringVar(&protein, "protein", "0", "protein grams per kg")
	cmd.Flags().StringVar(&carbs, "carbs", "0", "carbohydrate grams per kg")
	cmd.Flags().StringVar(&fat, "fat", "0", "fat grams per kg")
	_ = cmd.MarkFlagRequired("weight")

	return cmd
}

func pctString(v decimal.NullDecimal) string {
	if !v.Valid {
		return "-"
	}
	return v.Decimal.StringFixed(2)
}
