package sales

import (
	"github.com/go-playground/validator/v10"
)

// Catalogue maps a product identifier to its unit price.
type Catalogue map[string]float64

// SaleRecord is one requested quantity of a specific product.
type SaleRecord struct {
	Product  string `json:"Product" validate:"required"`
	Quantity int    `json:"Quantity" validate:"gte=0"`
}

// Report is the outcome of pricing one sales file against a catalogue.
// It is immutable once produced.
type Report struct {
	Total   float64
	Valid   int
	Invalid int
}

// validate is the shared validator instance for record checks
var validate = validator.New(validator.WithRequiredStructEnabled())
