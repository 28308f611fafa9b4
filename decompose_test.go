package humanize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecomposeRoundTrip(t *testing.T) {
	values := []float64{0, 1, 999, 1000, 95000, 97320000, 172800000, 31557600001, 123456789012.5}

	for _, ms := range values {
		parts, err := decompose(ms, AllUnits, DefaultUnitMeasures, -1)
		require.NoError(t, err)
		require.Len(t, parts.pieces, len(AllUnits))

		var sum float64
		for _, piece := range parts.pieces {
			sum += piece.Count * DefaultUnitMeasures[piece.Unit]
		}
		assert.InDelta(t, ms, sum, 1e-3, "ms=%v", ms)
	}
}

func TestDecomposeUsesMagnitude(t *testing.T) {
	positive, err := decompose(95000, defaultUnits, DefaultUnitMeasures, -1)
	require.NoError(t, err)

	negative, err := decompose(-95000, defaultUnits, DefaultUnitMeasures, -1)
	require.NoError(t, err)

	assert.Equal(t, positive, negative)
}

func TestDecomposeFirstOccupied(t *testing.T) {
	parts, err := decompose(97320000, AllUnits, DefaultUnitMeasures, -1)
	require.NoError(t, err)

	assert.Equal(t, 3, parts.firstOccupied)
	assert.Equal(t, []Piece{
		{Unit: UnitYear},
		{Unit: UnitMonth},
		{Unit: UnitWeek},
		{Unit: UnitDay, Count: 1},
		{Unit: UnitHour, Count: 3},
		{Unit: UnitMinute, Count: 2},
		{Unit: UnitSecond},
		{Unit: UnitMillisecond},
	}, parts.pieces)
}

func TestDecomposeSmallestUnitKeepsFraction(t *testing.T) {
	parts, err := decompose(1500, []Unit{UnitMinute, UnitSecond}, DefaultUnitMeasures, -1)
	require.NoError(t, err)
	assert.Equal(t, 1.5, parts.pieces[1].Count)
}

func TestDecomposeTruncatesDecimals(t *testing.T) {
	tests := []struct {
		ms     float64
		places int
		want   float64
	}{
		{ms: 1234.5678, places: 2, want: 1.23},
		{ms: 1999, places: 0, want: 1},
		{ms: 8123.456, places: 3, want: 8.123},
		{ms: 1000.1, places: 1, want: 1},
	}

	for _, tc := range tests {
		parts, err := decompose(tc.ms, []Unit{UnitSecond}, DefaultUnitMeasures, tc.places)
		require.NoError(t, err)
		assert.Equal(t, tc.want, parts.pieces[0].Count, "ms=%v places=%d", tc.ms, tc.places)
	}
}

func TestDecomposeUnknownUnit(t *testing.T) {
	_, err := decompose(1000, []Unit{"fortnight"}, DefaultUnitMeasures, -1)
	require.ErrorIs(t, err, ErrUnknownUnit)
}

func TestRoundCarriesIntoLargerUnit(t *testing.T) {
	parts, err := decompose(59600, []Unit{UnitHour, UnitMinute, UnitSecond}, DefaultUnitMeasures, -1)
	require.NoError(t, err)

	parts.round(DefaultUnitMeasures, 0)

	assert.Equal(t, []Piece{
		{Unit: UnitHour},
		{Unit: UnitMinute, Count: 1},
		{Unit: UnitSecond},
	}, parts.pieces)
}

func TestRoundCarryChain(t *testing.T) {
	// 59 minutes 59.6 seconds
	parts, err := decompose(3599600, []Unit{UnitHour, UnitMinute, UnitSecond}, DefaultUnitMeasures, -1)
	require.NoError(t, err)

	parts.round(DefaultUnitMeasures, 0)

	assert.Equal(t, []Piece{{Unit: UnitHour, Count: 1}}, parts.retained(0))
}

func TestRoundHonoursLargestFromFirstOccupied(t *testing.T) {
	// 1 day 14 hours 24 minutes
	parts, err := decompose(138240000, defaultUnits, DefaultUnitMeasures, -1)
	require.NoError(t, err)
	require.Equal(t, 3, parts.firstOccupied)

	parts.round(DefaultUnitMeasures, 1)

	assert.Equal(t, []Piece{{Unit: UnitDay, Count: 2}}, parts.retained(1))
}

func TestRetainedLargest(t *testing.T) {
	parts, err := decompose(97320000, defaultUnits, DefaultUnitMeasures, -1)
	require.NoError(t, err)

	assert.Equal(t, []Piece{
		{Unit: UnitDay, Count: 1},
		{Unit: UnitHour, Count: 3},
	}, parts.retained(2))

	assert.Len(t, parts.retained(0), 3)
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 3.0, roundHalfUp(2.5))
	assert.Equal(t, 2.0, roundHalfUp(2.49))
	assert.Equal(t, 60.0, roundHalfUp(59.6))
}
