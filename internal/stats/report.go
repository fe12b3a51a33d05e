package stats

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ResultsFileName is the statistics results file written to the results dir.
const ResultsFileName = "StatisticsResults.txt"

var tableRows = []string{"TC", "COUNT", "MEAN", "MEDIAN", "MODE", "SD", "VARIANCE"}

// FormatConsole renders the human-readable report block for one input file.
func FormatConsole(path string, r Report, elapsed time.Duration) string {
	var b strings.Builder
	b.WriteString("--- Statistics Results ---\n")
	fmt.Fprintf(&b, "File: %s\n", path)
	fmt.Fprintf(&b, "Count: %d\n", r.Count)
	fmt.Fprintf(&b, "Mean: %.4f\n", r.Mean)
	fmt.Fprintf(&b, "Median: %.4f\n", r.Median)
	fmt.Fprintf(&b, "Mode: %s\n", formatModes(r))
	fmt.Fprintf(&b, "Standard Deviation: %.4f\n", r.StdDev)
	fmt.Fprintf(&b, "Variance: %.4f\n", r.Variance)
	if r.Skipped > 0 {
		fmt.Fprintf(&b, "Skipped: %d\n", r.Skipped)
	}
	fmt.Fprintf(&b, "Execution Time: %.4f seconds", elapsed.Seconds())
	return b.String()
}

// FormatEmpty renders the degenerate report used when an input file holds
// no valid numeric values.
func FormatEmpty(path string, skipped int, elapsed time.Duration) string {
	var b strings.Builder
	b.WriteString("--- Statistics Results ---\n")
	fmt.Fprintf(&b, "File: %s\n", path)
	b.WriteString("No valid numbers found; no statistics could be computed.\n")
	if skipped > 0 {
		fmt.Fprintf(&b, "Skipped: %d\n", skipped)
	}
	fmt.Fprintf(&b, "Execution Time: %.4f seconds", elapsed.Seconds())
	return b.String()
}

// AppendTableColumn adds one test-case column to the cumulative
// tab-separated results table, preserving any columns already present.
func AppendTableColumn(existing, testCase string, r Report) string {
	table := parseTable(existing)

	table["TC"] = append(table["TC"], testCase)
	table["COUNT"] = append(table["COUNT"], strconv.Itoa(r.Count))
	table["MEAN"] = append(table["MEAN"], formatTableFloat(r.Mean))
	table["MEDIAN"] = append(table["MEDIAN"], formatTableFloat(r.Median))
	table["MODE"] = append(table["MODE"], formatTableMode(r))
	table["SD"] = append(table["SD"], formatTableFloat(r.StdDev))
	table["VARIANCE"] = append(table["VARIANCE"], formatTableFloat(r.Variance))

	lines := make([]string, 0, len(tableRows))
	for _, row := range tableRows {
		lines = append(lines, strings.Join(table[row], "\t"))
	}
	return strings.Join(lines, "\n")
}

// parseTable reads an existing results table back into row slices, or
// starts a fresh header-only table when the content does not match.
func parseTable(existing string) map[string][]string {
	table := make(map[string][]string, len(tableRows))
	for _, row := range tableRows {
		table[row] = []string{row}
	}

	lines := strings.Split(strings.TrimRight(existing, "\n"), "\n")
	if len(lines) < len(tableRows) {
		return table
	}
	for i, row := range tableRows {
		fields := strings.Split(strings.TrimRight(lines[i], "\n"), "\t")
		if len(fields) == 0 || fields[0] != row {
			// Unrecognized layout, start over rather than corrupt it further.
			for _, r := range tableRows {
				table[r] = []string{r}
			}
			return table
		}
		table[row] = fields
	}
	return table
}

func formatModes(r Report) string {
	if !r.UniqueMode() {
		return "N/A (no repeated values)"
	}
	parts := make([]string, len(r.Modes))
	for i, m := range r.Modes {
		parts[i] = formatTableFloat(m)
	}
	return strings.Join(parts, ", ")
}

func formatTableMode(r Report) string {
	if !r.UniqueMode() {
		return "#N/A"
	}
	parts := make([]string, len(r.Modes))
	for i, m := range r.Modes {
		parts[i] = formatTableFloat(m)
	}
	return strings.Join(parts, ",")
}

func formatTableFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 10, 64)
}
