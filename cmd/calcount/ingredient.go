package calcount

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shastriUF/calorie-counter/internal/model"
	"github.com/shastriUF/calorie-counter/internal/service"
)

var (
	ingredientCalories float64
	ingredientUnit     string
)

var ingredientCmd = &cobra.Command{
	Use:   "ingredient",
	Short: "Manage the ingredient catalog",
}

var ingredientAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add an ingredient or update one calorie density",
	Long:  "Records the calories in one UNIT of NAME. Re-adding an existing ingredient with a different unit family fills in that family's density and keeps the others, so one ingredient can be logged by weight, volume, and count.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withGateway(func(ctx context.Context, gw *service.Gateway) error {
			catalog, loadErr := gw.LoadCatalog(ctx)
			warnStale(cmd, loadErr)
			ing, err := catalog.Upsert(args[0], ingredientCalories, ingredientUnit)
			if err != nil {
				return err
			}
			if err := gw.SaveCatalog(ctx, catalog); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%s)\n", ing.Name, describeDensities(ing))
			return nil
		})
	},
}

var ingredientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the catalog in display order",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withGateway(func(ctx context.Context, gw *service.Gateway) error {
			catalog, loadErr := gw.LoadCatalog(ctx)
			warnStale(cmd, loadErr)
			if len(catalog.Ingredients) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No ingredients yet. Add one with: calcount ingredient add")
				return nil
			}
			printIngredients(cmd, catalog.Ingredients)
			return nil
		})
	},
}

var ingredientRmCmd = &cobra.Command{
	Use:   "rm INDEX",
	Short: "Remove the ingredient at a list position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndexArg("ingredient index", args[0])
		if err != nil {
			return err
		}
		return withGateway(func(ctx context.Context, gw *service.Gateway) error {
			catalog, loadErr := gw.LoadCatalog(ctx)
			warnStale(cmd, loadErr)
			if err := catalog.Remove(index); err != nil {
				return err
			}
			if err := gw.SaveCatalog(ctx, catalog); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed ingredient %d\n", index)
			return nil
		})
	},
}

var ingredientSearchCmd = &cobra.Command{
	Use:   "search TEXT",
	Short: "Find ingredients by name substring",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withGateway(func(ctx context.Context, gw *service.Gateway) error {
			catalog, loadErr := gw.LoadCatalog(ctx)
			warnStale(cmd, loadErr)
			matches := catalog.Search(args[0])
			if len(matches) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No ingredients match %q\n", args[0])
				return nil
			}
			printIngredients(cmd, matches)
			return nil
		})
	},
}

func printIngredients(cmd *cobra.Command, ingredients []model.Ingredient) {
	for i, ing := range ingredients {
		fmt.Fprintf(cmd.OutOrStdout(), "%d) %s — %s\n", i, ing.Name, describeDensities(ing))
	}
}

func describeDensities(ing model.Ingredient) string {
	parts := make([]string, 0, 3)
	if ing.CaloriesPerGram != nil {
		parts = append(parts, fmt.Sprintf("%.4g kcal/g", *ing.CaloriesPerGram))
	}
	if ing.CaloriesPerMl != nil {
		parts = append(parts, fmt.Sprintf("%.4g kcal/ml", *ing.CaloriesPerMl))
	}
	if ing.CaloriesPerCount != nil {
		parts = append(parts, fmt.Sprintf("%.4g kcal each", *ing.CaloriesPerCount))
	}
	return strings.Join(parts, ", ")
}

func init() {
	rootCmd.AddCommand(ingredientCmd)
	ingredientCmd.AddCommand(ingredientAddCmd, ingredientListCmd, ingredientRmCmd, ingredientSearchCmd)
	ingredientAddCmd.Flags().Float64Var(&ingredientCalories, "calories", 0, "Calories in one --unit of the ingredient")
	ingredientAddCmd.Flags().StringVar(&ingredientUnit, "unit", "count", "Unit the calories were measured in: "+strings.Join(service.Units, ", "))
	_ = ingredientAddCmd.MarkFlagRequired("calories")
}
