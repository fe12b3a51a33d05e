// compute-stats reads numeric samples from a text file, one per line, and
// writes a descriptive-statistics report to the results directory and to
// stdout. Malformed lines are skipped and tallied, never fatal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"calccli/internal/config"
	"calccli/internal/infrastructure"
	"calccli/internal/report"
	"calccli/internal/stats"
)

func main() {
	resultsDir := flag.String("results", "", "results directory (defaults to the configured results dir)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: compute-stats [flags] <input-file>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	path := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}
	if *resultsDir != "" {
		cfg.Paths.ResultsDir = *resultsDir
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	start := time.Now()

	parsed, err := stats.ParseFile(path, logger)
	if err != nil {
		logger.Error("cannot read input file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	writer := report.NewWriter(cfg.Paths.ResultsDir, logger)

	result, err := stats.Compute(parsed.Samples, len(parsed.Skipped))
	if err != nil {
		if errors.Is(err, stats.ErrNoSamples) {
			writer.Echo(stats.FormatEmpty(path, len(parsed.Skipped), time.Since(start)))
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("statistics computed",
		slog.String("file", path),
		slog.Int("count", result.Count),
		slog.Int("skipped", result.Skipped))

	writer.Echo(stats.FormatConsole(path, result, time.Since(start)))

	existing, err := writer.ReadExisting(stats.ResultsFileName)
	if err != nil {
		logger.Error("cannot read results file", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	base := filepath.Base(path)
	table := stats.AppendTableColumn(existing, strings.TrimSuffix(base, filepath.Ext(base)), result)
	if _, err := writer.Overwrite(stats.ResultsFileName, table); err != nil {
		logger.Error("cannot write results file", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
