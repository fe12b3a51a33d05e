package cli

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"calccli/internal/sales"
)

var salesCmd = &cobra.Command{
	Use:   "sales <catalogue-file> <sales-file>",
	Short: "Compute the total value of a sales file priced against a catalogue",
	Long: `Reads a JSON product catalogue and a JSON list of sale records, then
totals price x quantity over every record whose product exists in the
catalogue. Records referencing unknown products are excluded and counted
as invalid. The ticket report is echoed to stdout and appended to
SalesResults.txt.`,
	Args: cobra.ExactArgs(2),
	RunE: runSales,
}

func init() {
	rootCmd.AddCommand(salesCmd)
}

func runSales(cmd *cobra.Command, args []string) error {
	_, writer, logger, err := setup()
	if err != nil {
		return err
	}

	start := time.Now()
	cataloguePath, salesPath := args[0], args[1]

	catalogue, err := sales.LoadCatalogue(cataloguePath, logger)
	if err != nil {
		return err
	}

	records, skipped, err := sales.LoadSales(salesPath, logger)
	if err != nil {
		return err
	}

	result := sales.Compute(catalogue, records, skipped, logger)

	logger.Info("sales computed",
		slog.String("catalogue", cataloguePath),
		slog.String("sales", salesPath),
		slog.Float64("total", result.Total),
		slog.Int("valid", result.Valid),
		slog.Int("invalid", result.Invalid))

	ticket := sales.FormatTicket(testCaseName(salesPath), catalogue, records, result, time.Since(start))
	_, err = writer.Publish(sales.ResultsFileName, ticket)
	return err
}
