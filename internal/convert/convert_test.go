package convert

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBaseKnownValues(t *testing.T) {
	tests := []struct {
		value  int64
		binary string
		hex    string
	}{
		{0, "0", "0"},
		{1, "1", "1"},
		{2, "10", "2"},
		{10, "1010", "A"},
		{255, "11111111", "FF"},
		{4096, "1000000000000", "1000"},
		{-5, "-101", "-5"},
		{-255, "-11111111", "-FF"},
	}

	for _, tt := range tests {
		t.Run(strconv.FormatInt(tt.value, 10), func(t *testing.T) {
			assert.Equal(t, tt.binary, toBase(tt.value, 2))
			assert.Equal(t, tt.hex, toBase(tt.value, 16))
		})
	}
}

// TestToBaseMatchesStrconv cross-checks the manual digit loop against the
// standard library over a value sweep.
func TestToBaseMatchesStrconv(t *testing.T) {
	for _, n := range []int64{3, 7, 64, 100, 999, 123456, 987654321} {
		assert.Equal(t, strconv.FormatInt(n, 2), toBase(n, 2), "binary of %d", n)
		assert.Equal(t, fmt.Sprintf("%X", n), toBase(n, 16), "hex of %d", n)
	}
}

func TestConvertTruncatesFloats(t *testing.T) {
	conversions := Convert([]float64{2.9, -3.7, 10})
	require.Len(t, conversions, 3)

	assert.Equal(t, int64(2), conversions[0].Value)
	assert.Equal(t, int64(-3), conversions[1].Value)
	assert.Equal(t, "1010", conversions[2].Binary)
	assert.Equal(t, "A", conversions[2].Hex)
}

func TestFormatReport(t *testing.T) {
	out := FormatReport("TC1.txt", Convert([]float64{10}), 1, 2*time.Millisecond)

	assert.Contains(t, out, "File: TC1.txt")
	assert.Contains(t, out, "1010")
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "Skipped: 1")
	assert.Contains(t, out, "Execution Time: 0.0020 seconds")
}

func TestFormatEmpty(t *testing.T) {
	out := FormatEmpty("TC2.txt", 3, time.Millisecond)

	assert.Contains(t, out, "No valid numbers found")
	assert.Contains(t, out, "Skipped: 3")
}
