package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountBasic(t *testing.T) {
	frequencies, err := Count(strings.NewReader("the quick fox the fox the"), nil)
	require.NoError(t, err)

	assert.Equal(t, []Frequency{
		{Word: "fox", Count: 2},
		{Word: "quick", Count: 1},
		{Word: "the", Count: 3},
	}, frequencies)
}

func TestCountHandlesMixedWhitespace(t *testing.T) {
	frequencies, err := Count(strings.NewReader("a\tb\n  a \n\nb  a"), nil)
	require.NoError(t, err)

	assert.Equal(t, []Frequency{
		{Word: "a", Count: 3},
		{Word: "b", Count: 2},
	}, frequencies)
}

func TestCountCaseSensitive(t *testing.T) {
	frequencies, err := Count(strings.NewReader("Word word"), nil)
	require.NoError(t, err)
	assert.Len(t, frequencies, 2)
}

func TestCountEmptyInput(t *testing.T) {
	frequencies, err := Count(strings.NewReader("   \n \t "), nil)
	require.NoError(t, err)
	assert.Empty(t, frequencies)
}

func TestCountFileMissing(t *testing.T) {
	_, err := CountFile(filepath.Join(t.TempDir(), "absent.txt"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")
}

func TestCountFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world hello"), 0644))

	frequencies, err := CountFile(path, nil)
	require.NoError(t, err)

	assert.Equal(t, []Frequency{
		{Word: "hello", Count: 2},
		{Word: "world", Count: 1},
	}, frequencies)
}

func TestFormatReport(t *testing.T) {
	frequencies := []Frequency{{Word: "hello", Count: 2}}
	out := FormatReport("TC1.txt", frequencies, time.Millisecond)

	assert.Contains(t, out, "File: TC1.txt")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "Execution Time: 0.0010 seconds")
}

func TestFormatReportEmpty(t *testing.T) {
	out := FormatReport("TC2.txt", nil, time.Millisecond)
	assert.Contains(t, out, "No words found in the file.")
}
