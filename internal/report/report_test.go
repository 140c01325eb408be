package report

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/contactkeval/option-greeks/internal/chain"
)

func buildRows(t *testing.T) []chain.Row {
	t.Helper()
	rows, err := chain.Build(100, chain.Spec{
		Strikes:     2,
		StrikeStep:  5,
		ExpiryYears: 1,
		Rate:        0.05,
		Vol:         0.2,
	})
	require.NoError(t, err)
	return rows
}

func TestWriteJSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	rows := buildRows(t)

	require.NoError(t, WriteJSON(rows, dir))

	b, err := os.ReadFile(filepath.Join(dir, "chain.json"))
	require.NoError(t, err)

	var got []chain.Row
	require.NoError(t, json.Unmarshal(b, &got))
	require.Len(t, got, len(rows))
	require.Equal(t, rows[0].Strike, got[0].Strike)
	require.InDelta(t, rows[2].Call.Price, got[2].Call.Price, 1e-12)
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()
	rows := buildRows(t)

	require.NoError(t, WriteCSV(rows, dir))

	f, err := os.Open(filepath.Join(dir, "chain.csv"))
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(rows)+1)
	require.Equal(t, "strike", records[0][0])
	require.Len(t, records[0], 13)

	// ATM row: strike 100 renders without trailing zeros.
	require.Equal(t, "100", records[3][0])
	require.True(t, strings.HasPrefix(records[3][1], "10.45"), "ATM call price column: %s", records[3][1])
}
