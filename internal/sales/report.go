package sales

import (
	"fmt"
	"strings"
	"time"
)

// ResultsFileName is the sales results file written to the results dir.
const ResultsFileName = "SalesResults.txt"

const ticketWidth = 70

// FormatTicket renders the human-readable sales report: a ticket-style
// listing of every record followed by the totals. ticket names the run,
// normally the sales file name without extension.
func FormatTicket(ticket string, catalogue Catalogue, records []SaleRecord, r Report, elapsed time.Duration) string {
	rule := strings.Repeat("-", ticketWidth)

	var b strings.Builder
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "TICKET: %s\n", ticket)
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "%-8s %-40s %-10s\n", "Qtty", "Product", "Price")
	b.WriteString(rule + "\n")

	for _, rec := range records {
		price := "N/A"
		if p, ok := catalogue[rec.Product]; ok {
			price = fmt.Sprintf("%.2f", p)
		}
		fmt.Fprintf(&b, "%-8d %-40s %-10s\n", rec.Quantity, rec.Product, price)
	}

	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Total Cost:                       $%.2f\n", r.Total)
	fmt.Fprintf(&b, "Valid Records:                    %d\n", r.Valid)
	fmt.Fprintf(&b, "Invalid Records:                  %d\n", r.Invalid)
	fmt.Fprintf(&b, "Execution Time:                   %.6f secs\n", elapsed.Seconds())
	b.WriteString(rule)

	return b.String()
}
