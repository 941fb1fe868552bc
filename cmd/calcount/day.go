package calcount

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shastriUF/calorie-counter/internal/model"
	"github.com/shastriUF/calorie-counter/internal/service"
)

var (
	dayDate string
	dayMeal string
)

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Show a day's consumed entries and totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		dateKey, err := dayKeyFromFlag(dayDate)
		if err != nil {
			return err
		}
		if dayMeal != "" && !model.ValidMeal(dayMeal) {
			return fmt.Errorf("unknown meal %q", dayMeal)
		}
		return withGateway(func(ctx context.Context, gw *service.Gateway) error {
			ledger, loadErr := gw.LoadDay(ctx, dateKey)
			warnStale(cmd, loadErr)

			entries := ledger.Entries
			if dayMeal != "" {
				entries = ledger.FilterByMeal(dayMeal)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", dateKey)
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No entries.")
			}
			for i, e := range entries {
				meal := e.Meal
				if meal == "" {
					meal = "-"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d) %s: %g %s, %.1f calories [%s]\n", i, e.Name, e.Quantity, e.Unit, e.Calories, meal)
			}
			if dayMeal != "" {
				var total float64
				for _, e := range entries {
					total += e.Calories
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %.1f calories\n", dayMeal, total)
				return nil
			}
			byMeal := ledger.TotalsByMeal()
			for _, meal := range model.Meals {
				if total, ok := byMeal[meal]; ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %.1f calories\n", meal, total)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %.1f calories\n", ledger.TotalCalories())
			return nil
		})
	},
}

var dayRmCmd = &cobra.Command{
	Use:   "rm INDEX",
	Short: "Remove the entry at a list position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndexArg("entry index", args[0])
		if err != nil {
			return err
		}
		dateKey, err := dayKeyFromFlag(dayDate)
		if err != nil {
			return err
		}
		return withGateway(func(ctx context.Context, gw *service.Gateway) error {
			ledger, loadErr := gw.LoadDay(ctx, dateKey)
			warnStale(cmd, loadErr)
			if err := ledger.DeleteAt(index); err != nil {
				return err
			}
			if err := gw.SaveDay(ctx, dateKey, ledger); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed entry %d. Total for %s: %.1f calories\n", index, dateKey, ledger.TotalCalories())
			return nil
		})
	},
}

var dayRecomputeCmd = &cobra.Command{
	Use:   "recompute",
	Short: "Refresh a day's cached calories from the current catalog",
	Long:  "Re-resolves every entry against the catalog and recomputes its calories. Entries whose ingredient is gone, or whose unit family has no density anymore, keep their old cached value.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dateKey, err := dayKeyFromFlag(dayDate)
		if err != nil {
			return err
		}
		return withGateway(func(ctx context.Context, gw *service.Gateway) error {
			catalog, loadErr := gw.LoadCatalog(ctx)
			warnStale(cmd, loadErr)
			ledger, loadErr := gw.LoadDay(ctx, dateKey)
			warnStale(cmd, loadErr)
			ledger.RecomputeAll(catalog)
			if err := gw.SaveDay(ctx, dateKey, ledger); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recomputed %d entries. Total for %s: %.1f calories\n", len(ledger.Entries), dateKey, ledger.TotalCalories())
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(dayCmd)
	dayCmd.AddCommand(dayRmCmd, dayRecomputeCmd)
	dayCmd.PersistentFlags().StringVar(&dayDate, "date", "", "Date YYYY-MM-DD (default today)")
	dayCmd.Flags().StringVar(&dayMeal, "meal", "", "Show only one meal")
}
