package main

import (
	"fmt"

	"github.com/2beens/fittrack/internal/nutrition"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newNormalizeCmd(printer func(*cobra.Command) *resultPrinter) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <quantity> <unit>",
		Short: "Show the multiplier a logged quantity applies to a food profile",
		Long: `Show the multiplier a logged quantity applies to a food's nutrient profile.

Gram and millilitre profiles are stored per 100 units, servings per 1 unit.

EXAMPLES:

  nutricalc normalize 150 g     # 1.5
  nutricalc normalize 2 srv     # 2`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(nutrition.Gram), string(nutrition.Millilitre), string(nutrition.Serving)},
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid quantity: %s", args[0])
			}
			if err := nutrition.ValidateQuantity(raw); err != nil {
				return err
			}
			unit, err := nutrition.ParseUnit(args[1])
			if err != nil {
				return err
			}

			return printer(cmd).print("Quantity", []field{
				{"Quantity", "quantity", raw.String()},
				{"Unit", "unit", string(unit)},
				{"Multiplier", "multiplier", nutrition.Normalize(raw, unit).String()},
			})
		},
	}
}
