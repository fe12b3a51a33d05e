package stats

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// ParseResult holds the outcome of one parsing pass: the valid samples in
// input order plus the malformed tokens that were skipped.
type ParseResult struct {
	Samples []float64
	Skipped []string
}

// ParseFile reads numeric samples from the file at path, one token per
// line. A missing or unreadable file is a fatal error; malformed lines are
// tallied and skipped.
func ParseFile(path string, logger *slog.Logger) (ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ParseResult{}, fmt.Errorf("failed to open input file %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f, logger)
}

// Parse reads numeric samples from r. Blank lines are ignored; lines that
// do not parse as a real number are recorded as skipped, never fatal.
func Parse(r io.Reader, logger *slog.Logger) (ParseResult, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var result ParseResult
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		value, err := strconv.ParseFloat(line, 64)
		if err != nil {
			result.Skipped = append(result.Skipped, line)
			logger.Warn("invalid numeric token skipped",
				slog.Int("line", lineNo),
				slog.String("token", line))
			continue
		}
		result.Samples = append(result.Samples, value)
	}
	if err := scanner.Err(); err != nil {
		return ParseResult{}, fmt.Errorf("failed to read input: %w", err)
	}

	return result, nil
}
