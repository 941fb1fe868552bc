package calcount

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shastriUF/calorie-counter/internal/model"
	"github.com/shastriUF/calorie-counter/internal/service"
)

var (
	eatUnit string
	eatMeal string
	eatDate string
)

var eatCmd = &cobra.Command{
	Use:   "eat NAME QUANTITY",
	Short: "Log a consumed ingredient",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		quantity, err := strconv.ParseFloat(strings.TrimSpace(args[1]), 64)
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[1])
		}
		dateKey, err := dayKeyFromFlag(eatDate)
		if err != nil {
			return err
		}
		return withGateway(func(ctx context.Context, gw *service.Gateway) error {
			catalog, loadErr := gw.LoadCatalog(ctx)
			warnStale(cmd, loadErr)
			ledger, loadErr := gw.LoadDay(ctx, dateKey)
			warnStale(cmd, loadErr)

			entry, err := ledger.AddEntry(catalog, args[0], quantity, eatUnit, eatMeal)
			if errors.Is(err, service.ErrIngredientNotFound) {
				return fmt.Errorf("%w — add it with: calcount ingredient add %q --calories N --unit %s", err, args[0], eatUnit)
			}
			if err != nil {
				return err
			}
			if err := gw.SaveDay(ctx, dateKey, ledger); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %g %s, %.1f calories (%s)\n", entry.Name, entry.Quantity, entry.Unit, entry.Calories, entry.Meal)
			fmt.Fprintf(cmd.OutOrStdout(), "Total for %s: %.1f calories\n", dateKey, ledger.TotalCalories())
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(eatCmd)
	eatCmd.Flags().StringVar(&eatUnit, "unit", "count", "Unit consumed: "+strings.Join(service.Units, ", "))
	eatCmd.Flags().StringVar(&eatMeal, "meal", model.DefaultMeal, "Meal slot: "+strings.Join(model.Meals, ", "))
	eatCmd.Flags().StringVar(&eatDate, "date", "", "Date YYYY-MM-DD (default today)")
}
