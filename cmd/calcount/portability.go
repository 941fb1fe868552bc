package calcount

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shastriUF/calorie-counter/internal/service"
)

var (
	exportDate string
	exportMeal string
	exportOut  string
	importIn   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a day (or one meal) as a shareable file",
	RunE: func(cmd *cobra.Command, args []string) error {
		dateKey, err := dayKeyFromFlag(exportDate)
		if err != nil {
			return err
		}
		return withGateway(func(ctx context.Context, gw *service.Gateway) error {
			ledger, loadErr := gw.LoadDay(ctx, dateKey)
			warnStale(cmd, loadErr)

			var doc service.ExportDocument
			if exportMeal != "" {
				var exportErr error
				doc, exportErr = service.ExportMeal(ledger, dateKey, exportMeal)
				if exportErr != nil {
					return exportErr
				}
			} else {
				doc = service.ExportDay(ledger, dateKey)
			}

			raw, err := service.EncodeExportDocument(doc)
			if err != nil {
				return err
			}
			out := strings.TrimSpace(exportOut)
			if out == "" {
				out = service.ExportFileName(dateKey, exportMeal)
			}
			if err := os.WriteFile(out, raw, 0o644); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries for %s to %s\n", len(doc.ConsumedItems), dateKey, out)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a shared file into its day",
	Long:  "A full-day file replaces that day's log. A meal-scoped file replaces just that meal: entries for the same meal are dropped and the file's entries appended; other meals are untouched.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(importIn) == "" {
			return fmt.Errorf("--in is required")
		}
		raw, err := os.ReadFile(importIn)
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}
		doc, err := service.DecodeExportDocument(raw)
		if err != nil {
			return err
		}
		return withGateway(func(ctx context.Context, gw *service.Gateway) error {
			outcome, err := gw.ImportDocument(ctx, doc)
			if err != nil {
				return err
			}
			if outcome.Merged {
				fmt.Fprintf(cmd.OutOrStdout(), "Merged %s into %s: %d entries, %.1f calories\n", outcome.Meal, outcome.Date, outcome.EntryCount, outcome.Total)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Replaced %s: %d entries, %.1f calories\n", outcome.Date, outcome.EntryCount, outcome.Total)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
	exportCmd.Flags().StringVar(&exportDate, "date", "", "Date YYYY-MM-DD (default today)")
	exportCmd.Flags().StringVar(&exportMeal, "meal", "", "Export a single meal instead of the whole day")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file path (default calories_<date>[_<meal>].json)")
	importCmd.Flags().StringVar(&importIn, "in", "", "Input file path")
}
