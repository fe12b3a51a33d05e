// Package words counts word frequencies in a text file.
package words

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"
)

// ResultsFileName is the word count results file written to the results dir.
const ResultsFileName = "WordCountResults.txt"

// Frequency is one word together with its occurrence count.
type Frequency struct {
	Word  string
	Count int
}

// CountFile reads the file at path and counts word frequencies. A missing
// or unreadable file is fatal.
func CountFile(path string, logger *slog.Logger) ([]Frequency, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file %s: %w", path, err)
	}
	defer f.Close()

	return Count(f, logger)
}

// Count splits r on whitespace and returns per-word frequencies sorted by
// word for deterministic output.
func Count(r io.Reader, logger *slog.Logger) ([]Frequency, error) {
	if logger == nil {
		logger = slog.Default()
	}

	counts := make(map[string]int)
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	total := 0
	for scanner.Scan() {
		counts[scanner.Text()]++
		total++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	frequencies := make([]Frequency, 0, len(counts))
	for word, count := range counts {
		frequencies = append(frequencies, Frequency{Word: word, Count: count})
	}
	sort.Slice(frequencies, func(i, j int) bool {
		return frequencies[i].Word < frequencies[j].Word
	})

	logger.Debug("word count complete",
		slog.Int("total_words", total),
		slog.Int("distinct_words", len(frequencies)))

	return frequencies, nil
}

// FormatReport renders the word frequency table for one input file.
func FormatReport(path string, frequencies []Frequency, elapsed time.Duration) string {
	var b strings.Builder
	b.WriteString("--- Word Count Results ---\n")
	fmt.Fprintf(&b, "File: %s\n", path)

	if len(frequencies) == 0 {
		b.WriteString("No words found in the file.\n")
	} else {
		fmt.Fprintf(&b, "%-20s %-10s\n", "Word", "Frequency")
		b.WriteString(strings.Repeat("-", 31) + "\n")
		for _, f := range frequencies {
			fmt.Fprintf(&b, "%-20s %-10d\n", f.Word, f.Count)
		}
		b.WriteString(strings.Repeat("-", 31) + "\n")
	}

	fmt.Fprintf(&b, "Execution Time: %.4f seconds", elapsed.Seconds())
	return b.String()
}
