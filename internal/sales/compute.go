package sales

import (
	"log/slog"
)

// Compute prices each sale record against the catalogue and accumulates
// the total monetary value. Records referencing an unknown product are
// excluded from the total and counted as invalid; the total is invariant
// to record order. preSkipped carries records already dropped during
// loading so the report reflects every exclusion.
func Compute(catalogue Catalogue, records []SaleRecord, preSkipped int, logger *slog.Logger) Report {
	if logger == nil {
		logger = slog.Default()
	}

	report := Report{Invalid: preSkipped}
	for _, rec := range records {
		price, ok := catalogue[rec.Product]
		if !ok {
			report.Invalid++
			logger.Warn("product not found in catalogue, sale excluded",
				slog.String("product", rec.Product),
				slog.Int("quantity", rec.Quantity))
			continue
		}
		report.Total += price * float64(rec.Quantity)
		report.Valid++
	}

	return report
}
