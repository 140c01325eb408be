package chain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildGrid(t *testing.T) {
	rows, err := Build(101.3, Spec{
		Strikes:     2,
		StrikeStep:  5,
		ExpiryYears: 0.5,
		Rate:        0.03,
		Vol:         0.25,
	})
	require.NoError(t, err)
	require.Len(t, rows, 5)

	// Ascending strikes centered on the nearest grid point to spot.
	require.Equal(t, 90.0, rows[0].Strike)
	require.Equal(t, 100.0, rows[2].Strike)
	require.Equal(t, 110.0, rows[4].Strike)

	for i := 1; i < len(rows); i++ {
		require.Greater(t, rows[i].Strike, rows[i-1].Strike)
		// Call delta falls as strike rises.
		require.Less(t, rows[i].Call.Delta, rows[i-1].Call.Delta)
	}
}

func TestBuildDefaults(t *testing.T) {
	rows, err := Build(100, Spec{ExpiryYears: 1, Rate: 0.05, Vol: 0.2})
	require.NoError(t, err)
	require.Len(t, rows, 21) // 10 each side plus the center
}

func TestBuildSkipsNonPositiveStrikes(t *testing.T) {
	rows, err := Build(8, Spec{Strikes: 3, StrikeStep: 5, ExpiryYears: 1, Rate: 0.02, Vol: 0.3})
	require.NoError(t, err)
	for _, row := range rows {
		require.Greater(t, row.Strike, 0.0)
	}
}

func TestBuildRejectsBadInputs(t *testing.T) {
	_, err := Build(0, Spec{ExpiryYears: 1, Vol: 0.2})
	require.Error(t, err)

	_, err = Build(100, Spec{ExpiryYears: 1, Vol: 0})
	require.Error(t, err)

	_, err = Build(100, Spec{ExpiryYears: -1, Vol: 0.2})
	require.Error(t, err)
}
