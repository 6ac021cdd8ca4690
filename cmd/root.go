package cmd

import (
	"fmt"
	"os"

	"pair-compare/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "pair-compare",
	Short: "Pairwise record comparison service",
	Long: `pair-compare joins a table of entity pairs against a metadata lookup table
and reports, per attribute column, the values both entities share and the values
unique to each side. It runs as an HTTP service or directly on local files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Errors are reported on a console logger with readable timestamps.
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		l.Error("command failed", zap.Error(err))
		_ = l.Sync()
		os.Exit(1)
	}
}
