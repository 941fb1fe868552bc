package calcount

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	storePath string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "calcount",
	Short: "calcount tracks ingredients and daily calories from your terminal",
	Long:  "calcount is a local-first calorie tracker: define ingredients with calorie densities, log what you eat per day and meal, and move days between devices as export files.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storePath, "db", "", "Path to the store database")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
}
