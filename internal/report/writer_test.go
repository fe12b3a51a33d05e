package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishEchoesAndAppends(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer

	w := NewWriter(filepath.Join(dir, "results"), nil)
	w.SetConsole(&console)

	path, err := w.Publish("StatisticsResults.txt", "first report")
	require.NoError(t, err)

	_, err = w.Publish("StatisticsResults.txt", "second report")
	require.NoError(t, err)

	assert.Contains(t, console.String(), "first report")
	assert.Contains(t, console.String(), "second report")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first report\nsecond report\n", string(data))
}

func TestPublishCreatesResultsDirectory(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(filepath.Join(dir, "nested", "results"), nil)
	w.SetConsole(&bytes.Buffer{})

	path, err := w.Publish("SalesResults.txt", "report")
	require.NoError(t, err)

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestAppendDoesNotEcho(t *testing.T) {
	var console bytes.Buffer
	w := NewWriter(t.TempDir(), nil)
	w.SetConsole(&console)

	path, err := w.Append("table.txt", "row")
	require.NoError(t, err)

	assert.Empty(t, console.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "row\n", string(data))
}

func TestOverwriteReplacesContent(t *testing.T) {
	w := NewWriter(t.TempDir(), nil)
	w.SetConsole(&bytes.Buffer{})

	_, err := w.Overwrite("table.txt", "old table")
	require.NoError(t, err)

	path, err := w.Overwrite("table.txt", "new table")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new table\n", string(data))
}

func TestEchoWritesConsoleOnly(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer
	w := NewWriter(dir, nil)
	w.SetConsole(&console)

	w.Echo("console only")

	assert.Equal(t, "console only\n", console.String())
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadExistingMissingFile(t *testing.T) {
	w := NewWriter(t.TempDir(), nil)

	content, err := w.ReadExisting("absent.txt")
	require.NoError(t, err)
	assert.Empty(t, content)
}

func TestReadExistingRoundTrip(t *testing.T) {
	w := NewWriter(t.TempDir(), nil)
	w.SetConsole(&bytes.Buffer{})

	_, err := w.Overwrite("table.txt", "content")
	require.NoError(t, err)

	content, err := w.ReadExisting("table.txt")
	require.NoError(t, err)
	assert.Equal(t, "content\n", content)
}
