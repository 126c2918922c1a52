package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/chriscorrea/tally/internal/count"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStats() count.Stats {
	return count.Stats{
		Lines:         10,
		Words:         20,
		Bytes:         30,
		Chars:         40,
		MaxLineLength: 50,
		Label:         "test.txt",
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"plain", Plain, false},
		{"human", Human, false},
		{"json", JSON, false},
		{"", Plain, false},
		{"yaml", Plain, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWritePlainSingle(t *testing.T) {
	var sb strings.Builder
	err := Write(&sb, []count.Stats{testStats()}, count.Default, Plain)
	require.NoError(t, err)

	assert.Equal(t, "10 20 30 test.txt\n", sb.String())
}

func TestWritePlainUnlabeled(t *testing.T) {
	stats := testStats()
	stats.Label = ""

	var sb strings.Builder
	require.NoError(t, Write(&sb, []count.Stats{stats}, count.Default, Plain))
	assert.Equal(t, "10 20 30\n", sb.String())
}

func TestWritePlainMaxLineLengthOnly(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Write(&sb, []count.Stats{testStats()}, count.MaxLineLength, Plain))
	assert.Equal(t, "50 test.txt\n", sb.String())
}

func TestWritePlainMultipleAppendsTotal(t *testing.T) {
	second := count.Stats{Lines: 5, Words: 10, Bytes: 15, MaxLineLength: 60, Label: "other.txt"}

	var sb strings.Builder
	err := Write(&sb, []count.Stats{testStats(), second}, count.Default|count.MaxLineLength, Plain)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "10 20 30 50 test.txt", lines[0])
	assert.Equal(t, "5 10 15 60 other.txt", lines[1])
	// sums for counts, maximum for max line length
	assert.Equal(t, "15 30 45 60 total", lines[2])
}

func TestWriteHuman(t *testing.T) {
	var sb strings.Builder
	err := Write(&sb, []count.Stats{testStats()}, count.Lines|count.Words|count.MaxLineLength, Human)
	require.NoError(t, err)

	out := sb.String()
	assert.Contains(t, out, "lines: 10")
	assert.Contains(t, out, "words: 20")
	assert.Contains(t, out, "50 max line length")
	assert.Contains(t, out, "in test.txt")
	assert.NotContains(t, out, "bytes:")
}

func TestWriteJSON(t *testing.T) {
	second := count.Stats{Lines: 5, Words: 10, Bytes: 15, Label: "other.txt"}

	var sb strings.Builder
	err := Write(&sb, []count.Stats{testStats(), second}, count.Default, JSON)
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(sb.String()), &records))
	require.Len(t, records, 3)

	assert.Equal(t, float64(10), records[0]["lines"])
	assert.Equal(t, "test.txt", records[0]["filename"])
	assert.NotContains(t, records[0], "chars", "unrequested fields are omitted")
	assert.NotContains(t, records[0], "type")

	total := records[2]
	assert.Equal(t, "total", total["type"])
	assert.Equal(t, float64(15), total["lines"])
	assert.NotContains(t, total, "filename")
}

func TestWriteJSONKeepsZeroCounts(t *testing.T) {
	var sb strings.Builder
	err := Write(&sb, []count.Stats{{Label: "empty.txt"}}, count.Default, JSON)
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(sb.String()), &records))
	require.Len(t, records, 1)
	assert.Equal(t, float64(0), records[0]["lines"])
}
