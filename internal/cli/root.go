package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"calccli/internal/config"
	"calccli/internal/infrastructure"
	"calccli/internal/report"
)

// Version is set at build time via ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "calccli",
	Short: "Batch data-computation exercises: statistics, sales, conversions, word counts",
	Long: `calccli bundles a set of small batch computation tools. Each tool reads
input file(s), performs one aggregation pass, and writes a human-readable
report to a results file and to stdout.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("calccli version {{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setup loads configuration and initializes logging and the results
// writer shared by every subcommand.
func setup() (*config.Config, *report.Writer, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	return cfg, report.NewWriter(cfg.Paths.ResultsDir, logger), logger, nil
}
