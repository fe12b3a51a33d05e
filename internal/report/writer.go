package report

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Writer appends report text to named files in a results directory and
// echoes report content to the console.
type Writer struct {
	resultsDir string
	console    io.Writer
	logger     *slog.Logger
}

// NewWriter creates a results writer rooted at resultsDir
func NewWriter(resultsDir string, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{
		resultsDir: resultsDir,
		console:    os.Stdout,
		logger:     logger,
	}
}

// SetConsole redirects the console echo, used by tests
func (w *Writer) SetConsole(out io.Writer) {
	w.console = out
}

// Echo writes the report text to the console only.
func (w *Writer) Echo(text string) {
	fmt.Fprintln(w.console, text)
}

// Publish echoes the report to the console and appends it to the named
// file in the results directory. Returns the path of the results file.
func (w *Writer) Publish(name, text string) (string, error) {
	w.Echo(text)
	return w.Append(name, text)
}

// Append appends the text to the named results file without echoing.
func (w *Writer) Append(name, text string) (string, error) {
	path, err := w.resultsFile(name)
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to open results file %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(text + "\n"); err != nil {
		return "", fmt.Errorf("failed to write results file %s: %w", path, err)
	}

	w.logger.Info("results written",
		slog.String("file", path),
		slog.Int("bytes", len(text)+1))

	return path, nil
}

// Overwrite replaces the named results file with the given content without
// echoing. Used by reports that maintain a cumulative table rather than a
// log of runs.
func (w *Writer) Overwrite(name, text string) (string, error) {
	path, err := w.resultsFile(name)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(text+"\n"), 0644); err != nil {
		return "", fmt.Errorf("failed to write results file %s: %w", path, err)
	}

	w.logger.Info("results written",
		slog.String("file", path),
		slog.Int("bytes", len(text)+1))

	return path, nil
}

// ReadExisting returns the current content of the named results file, or
// an empty string if the file does not exist yet.
func (w *Writer) ReadExisting(name string) (string, error) {
	path := filepath.Join(w.resultsDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read results file %s: %w", path, err)
	}
	return string(data), nil
}

// resultsFile ensures the results directory exists and returns the full
// path of the named file inside it.
func (w *Writer) resultsFile(name string) (string, error) {
	if err := os.MkdirAll(w.resultsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create results directory %s: %w", w.resultsDir, err)
	}
	return filepath.Join(w.resultsDir, name), nil
}
