// Package convert renders integers in binary and hexadecimal form using
// manual digit extraction, the way the exercise requires.
package convert

import (
	"fmt"
	"strings"
	"time"
)

// ResultsFileName is the conversion results file written to the results dir.
const ResultsFileName = "ConvertionResults.txt"

const hexDigits = "0123456789ABCDEF"

// Conversion holds one converted value.
type Conversion struct {
	Value  int64
	Binary string
	Hex    string
}

// Convert truncates each sample to an integer and renders its binary and
// hexadecimal form. Negative values keep a leading minus sign.
func Convert(samples []float64) []Conversion {
	conversions := make([]Conversion, 0, len(samples))
	for _, s := range samples {
		n := int64(s)
		conversions = append(conversions, Conversion{
			Value:  n,
			Binary: toBase(n, 2),
			Hex:    toBase(n, 16),
		})
	}
	return conversions
}

// toBase renders n in the given base by repeated division.
func toBase(n int64, base int64) string {
	if n == 0 {
		return "0"
	}

	negative := n < 0
	if negative {
		n = -n
	}

	var digits []byte
	for n > 0 {
		digits = append(digits, hexDigits[n%base])
		n /= base
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i := len(digits) - 1; i >= 0; i-- {
		b.WriteByte(digits[i])
	}
	return b.String()
}

// FormatReport renders the conversion table for one input file.
func FormatReport(path string, conversions []Conversion, skipped int, elapsed time.Duration) string {
	var b strings.Builder
	b.WriteString("--- Conversion Results ---\n")
	fmt.Fprintf(&b, "File: %s\n", path)
	fmt.Fprintf(&b, "%-8s %-15s %-30s %-15s\n", "ITEM", "NUMBER", "BIN", "HEX")
	b.WriteString(strings.Repeat("-", 70) + "\n")

	for i, c := range conversions {
		fmt.Fprintf(&b, "%-8d %-15d %-30s %-15s\n", i+1, c.Value, c.Binary, c.Hex)
	}

	b.WriteString(strings.Repeat("-", 70) + "\n")
	if skipped > 0 {
		fmt.Fprintf(&b, "Skipped: %d\n", skipped)
	}
	fmt.Fprintf(&b, "Execution Time: %.4f seconds", elapsed.Seconds())
	return b.String()
}

// FormatEmpty renders the degenerate report for a file with no valid numbers.
func FormatEmpty(path string, skipped int, elapsed time.Duration) string {
	var b strings.Builder
	b.WriteString("--- Conversion Results ---\n")
	fmt.Fprintf(&b, "File: %s\n", path)
	b.WriteString("No valid numbers found in the file.\n")
	if skipped > 0 {
		fmt.Fprintf(&b, "Skipped: %d\n", skipped)
	}
	fmt.Fprintf(&b, "Execution Time: %.4f seconds", elapsed.Seconds())
	return b.String()
}
