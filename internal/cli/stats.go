package cli

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"calccli/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats <input-file>",
	Short: "Compute descriptive statistics over a file of numbers",
	Long: `Reads numeric samples from a text file, one per line, and computes
count, mean, median, mode, population variance, and standard deviation.
Malformed lines are skipped and tallied. The report is echoed to stdout
and a column is added to the cumulative StatisticsResults.txt table.`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	_, writer, logger, err := setup()
	if err != nil {
		return err
	}

	start := time.Now()
	path := args[0]

	parsed, err := stats.ParseFile(path, logger)
	if err != nil {
		return err
	}

	result, err := stats.Compute(parsed.Samples, len(parsed.Skipped))
	if errors.Is(err, stats.ErrNoSamples) {
		writer.Echo(stats.FormatEmpty(path, len(parsed.Skipped), time.Since(start)))
		return nil
	}
	if err != nil {
		return err
	}

	logger.Info("statistics computed",
		slog.String("file", path),
		slog.Int("count", result.Count),
		slog.Int("skipped", result.Skipped))

	writer.Echo(stats.FormatConsole(path, result, time.Since(start)))

	existing, err := writer.ReadExisting(stats.ResultsFileName)
	if err != nil {
		return err
	}
	table := stats.AppendTableColumn(existing, testCaseName(path), result)
	_, err = writer.Overwrite(stats.ResultsFileName, table)
	return err
}

// testCaseName derives the results-table column header from the input
// file name, without directory or extension.
func testCaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
