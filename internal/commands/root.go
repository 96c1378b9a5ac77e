package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramzor-dev/ramzor/internal/buildinfo"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var gf globalFlags

	rootCmd := &cobra.Command{
		Use:     "ramzor",
		Short:   "Household cash-flow analysis from bank statements and credit reports",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&gf.configPath, "config", "", "path to ramzor.yaml (default: ./ramzor.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&gf.logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAnalyzeCommand(&gf))
	rootCmd.AddCommand(newRulesCommand(&gf))
	rootCmd.AddCommand(newServeCommand(&gf))

	return rootCmd
}
