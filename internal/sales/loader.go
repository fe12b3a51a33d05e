package sales

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/goccy/go-json"
)

// catalogueItem mirrors the loose catalogue schema: entries may carry the
// product name under "Product" or "title" and the price under "Price" or
// "price" (key matching is case-insensitive).
type catalogueItem struct {
	Product string   `json:"Product"`
	Title   string   `json:"title"`
	Price   *float64 `json:"Price"`
}

func (it catalogueItem) name() string {
	if it.Product != "" {
		return it.Product
	}
	return it.Title
}

// LoadCatalogue reads and validates a price catalogue from a JSON file.
// Malformed JSON or an unreadable file is fatal. Entries with a missing
// name or price, or a negative price, are skipped with a warning.
func LoadCatalogue(path string, logger *slog.Logger) (Catalogue, error) {
	if logger == nil {
		logger = slog.Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalogue file %s: %w", path, err)
	}

	var items []catalogueItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("invalid JSON in catalogue file %s: %w", path, err)
	}

	catalogue := make(Catalogue, len(items))
	for _, it := range items {
		name := it.name()
		if name == "" || it.Price == nil {
			logger.Warn("catalogue entry missing name or price, skipped")
			continue
		}
		if *it.Price < 0 {
			logger.Warn("catalogue entry has negative price, skipped",
				slog.String("product", name),
				slog.Float64("price", *it.Price))
			continue
		}
		if _, dup := catalogue[name]; dup {
			logger.Warn("duplicate catalogue entry, keeping latest",
				slog.String("product", name))
		}
		catalogue[name] = *it.Price
	}

	return catalogue, nil
}

// LoadSales reads sale records from a JSON file. Malformed JSON structure
// is fatal; records that fail to decode or validate individually are
// returned in the skipped count so the run can continue without them.
func LoadSales(path string, logger *slog.Logger) ([]SaleRecord, int, error) {
	if logger == nil {
		logger = slog.Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read sales file %s: %w", path, err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("invalid JSON in sales file %s: %w", path, err)
	}

	records := make([]SaleRecord, 0, len(raw))
	skipped := 0
	for i, msg := range raw {
		var rec SaleRecord
		if err := json.Unmarshal(msg, &rec); err != nil {
			skipped++
			logger.Warn("malformed sale record skipped",
				slog.Int("index", i),
				slog.String("error", err.Error()))
			continue
		}
		if err := validate.Struct(rec); err != nil {
			skipped++
			logger.Warn("invalid sale record skipped",
				slog.Int("index", i),
				slog.String("product", rec.Product),
				slog.Int("quantity", rec.Quantity),
				slog.String("error", err.Error()))
			continue
		}
		records = append(records, rec)
	}

	return records, skipped, nil
}
