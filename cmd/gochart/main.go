// Command gochart parses and inspects .chart files.
package main

import (
	"log/slog"
	"os"

	"github.com/gochart/gochart"
	"github.com/spf13/cobra"
)

var verbosity int

var rootCmd = &cobra.Command{
	Use:           "gochart",
	Short:         "Parse and inspect .chart files",
	Long:          "gochart parses the .chart rhythm-game text format and prints what it finds.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"enable debug logging; repeat for per-line trace logging")
}

// parseOptions maps -v / -vv to a stderr slog handler.
func parseOptions() []gochart.ParseOption {
	if verbosity == 0 {
		return nil
	}
	level := slog.LevelDebug
	if verbosity > 1 {
		level = gochart.LevelTrace
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return []gochart.ParseOption{gochart.WithLogger(logger)}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
