package calcount

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shastriUF/calorie-counter/internal/service"
)

var (
	buildVersion = "dev"
	buildCommit  = "none"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version/build metadata",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "calcount %s (%s)\n", buildVersion, buildCommit)
		fmt.Fprintf(cmd.OutOrStdout(), "export format version %g\n", service.CurrentExportVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
