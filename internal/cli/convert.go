package cli

import (
	"time"

	"github.com/spf13/cobra"

	"calccli/internal/convert"
	"calccli/internal/stats"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input-file>",
	Short: "Render each number in a file as binary and hexadecimal",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	_, writer, logger, err := setup()
	if err != nil {
		return err
	}

	start := time.Now()
	path := args[0]

	// Same line-per-token numeric input as the stats tool.
	parsed, err := stats.ParseFile(path, logger)
	if err != nil {
		return err
	}

	if len(parsed.Samples) == 0 {
		writer.Echo(convert.FormatEmpty(path, len(parsed.Skipped), time.Since(start)))
		return nil
	}

	conversions := convert.Convert(parsed.Samples)
	text := convert.FormatReport(path, conversions, len(parsed.Skipped), time.Since(start))
	_, err = writer.Publish(convert.ResultsFileName, text)
	return err
}
