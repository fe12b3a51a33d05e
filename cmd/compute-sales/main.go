// compute-sales prices a JSON sales file against a JSON product catalogue
// and writes the total-value report to the results directory and to
// stdout. Sales referencing unknown products are excluded and tallied.
package main

import (
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
	"calccli/internal/sales"
)

func main() {
	resultsDir := flag.String("results", "", "results directory (defaults to the configured results dir)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: compute-sales [flags] <catalogue-file> <sales-file>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}
	cataloguePath, salesPath := flag.Arg(0), flag.Arg(1)

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

	catalogue, err := sales.LoadCatalogue(cataloguePath, logger)
	if err != nil {
		logger.Error("cannot load catalogue",
			slog.String("path", cataloguePath),
			slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	records, skipped, err := sales.LoadSales(salesPath, logger)
	if err != nil {
		logger.Error("cannot load sales",
			slog.String("path", salesPath),
			slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	result := sales.Compute(catalogue, records, skipped, logger)

	logger.Info("sales computed",
		slog.Float64("total", result.Total),
		slog.Int("valid", result.Valid),
		slog.Int("invalid", result.Invalid))

	base := filepath.Base(salesPath)
	ticket := strings.TrimSuffix(base, filepath.Ext(base))
	text := sales.FormatTicket(ticket, catalogue, records, result, time.Since(start))

	writer := report.NewWriter(cfg.Paths.ResultsDir, logger)
	if _, err := writer.Publish(sales.ResultsFileName, text); err != nil {
		logger.Error("cannot write results file", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
