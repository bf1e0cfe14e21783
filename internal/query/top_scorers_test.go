package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopScorers_RanksDescending(t *testing.T) {
	ds := testDataset()

	lines := TopScorers(ds, 1998, DefaultTopN)
	require.Len(t, lines, 2)

	assert.Equal(t, "Michael Jordan", lines[0].Player)
	assert.Equal(t, "CHI", lines[0].Team)
	assert.InDelta(t, 28.7, lines[0].PtsPerGame, 0.001)
	assert.Equal(t, int64(82), lines[0].Games)

	assert.Equal(t, "Karl Malone", lines[1].Player)
	assert.InDelta(t, 27.0, lines[1].PtsPerGame, 0.001)
}

func TestTopScorers_TruncatesToN(t *testing.T) {
	ds := testDataset()

	lines := TopScorers(ds, 1998, 1)
	require.Len(t, lines, 1)
	assert.Equal(t, "Michael Jordan", lines[0].Player)
}

func TestTopScorers_SkipsIncompleteRows(t *testing.T) {
	ds := testDataset()

	// The 1998 table carries a row with no team; it never ranks even
	// though its scoring figure would top the list.
	lines := TopScorers(ds, 1998, DefaultTopN)
	for _, line := range lines {
		assert.NotEqual(t, "Benched Forever", line.Player)
	}
}

func TestTopScorers_EmptySeason(t *testing.T) {
	ds := testDataset()

	lines := TopScorers(ds, 1947, DefaultTopN)
	assert.Empty(t, lines)
}

func TestTopScorers_MetricColumnAbsent(t *testing.T) {
	ds := emptyDataset()

	lines := TopScorers(ds, 1998, DefaultTopN)
	assert.Empty(t, lines)
}

func TestTopScorers_ZeroN(t *testing.T) {
	ds := testDataset()

	assert.Empty(t, TopScorers(ds, 1998, 0))
}
