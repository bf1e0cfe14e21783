package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamSummary_ByAbbreviation(t *testing.T) {
	ds := testDataset()

	card, miss := TeamSummary(ds, 1998, "CHI")
	require.Nil(t, miss)

	assert.Equal(t, "Chicago Bulls", card.Match)
	assert.Equal(t, 1998, card.Season)

	// The regular-season row wins over the playoff row.
	assert.Equal(t, int64(62), card.Summary["w"])
	assert.Equal(t, int64(20), card.Summary["l"])
	assert.Equal(t, "CHI", card.Summary["abbreviation"])
	assert.InDelta(t, 7.24, card.Summary["srs"].(float64), 0.001)
	assert.InDelta(t, 89.6, card.Summary["pace"].(float64), 0.001)
}

func TestTeamSummary_DerivesNetRating(t *testing.T) {
	ds := testDataset()

	card, miss := TeamSummary(ds, 1998, "Chicago Bulls")
	require.Nil(t, miss)

	nrtg, ok := card.Summary["n_rtg"].(float64)
	require.True(t, ok)
	assert.InDelta(t, 7.9, nrtg, 0.001)
}

func TestTeamSummary_CanonicalizesPercentages(t *testing.T) {
	ds := testDataset()

	card, miss := TeamSummary(ds, 1998, "CHI")
	require.Nil(t, miss)

	ts, ok := card.Summary["ts_percent"].(float64)
	require.True(t, ok)
	assert.InDelta(t, 53.2, ts, 0.001)
}

func TestTeamSummary_EnrichesFromPerGameTable(t *testing.T) {
	ds := testDataset()

	card, miss := TeamSummary(ds, 1998, "CHI")
	require.Nil(t, miss)

	assert.InDelta(t, 96.7, card.Summary["pts_per_game"].(float64), 0.001)
	assert.InDelta(t, 23.8, card.Summary["ast_per_game"].(float64), 0.001)
	assert.InDelta(t, 33.9, card.Summary["x3p_percent"].(float64), 0.001)
}

func TestTeamSummary_WithoutOptionalTable(t *testing.T) {
	ds := testDataset()
	ds.TeamStatsPerGame = nil

	card, miss := TeamSummary(ds, 1998, "CHI")
	require.Nil(t, miss)

	_, present := card.Summary["pts_per_game"]
	assert.False(t, present)
	assert.Contains(t, card.Summary, "srs")
}

func TestTeamSummary_ScoresQueryAgainstMatch(t *testing.T) {
	ds := testDataset()

	card, miss := TeamSummary(ds, 1998, "chicago bulls")
	require.Nil(t, miss)
	assert.Equal(t, 100.0, card.Score)

	card, miss = TeamSummary(ds, 1998, "Bulls")
	require.Nil(t, miss)
	assert.Greater(t, card.Score, 0.0)
	assert.LessOrEqual(t, card.Score, 100.0)
}

func TestTeamSummary_NotFound(t *testing.T) {
	ds := testDataset()

	card, miss := TeamSummary(ds, 1998, "Seattle SuperSonics")
	assert.Nil(t, card)
	require.NotNil(t, miss)
	assert.Equal(t, "No team summary for 'Seattle SuperSonics' in 1998", miss.Reason)

	_, miss = TeamSummary(ds, 1947, "CHI")
	require.NotNil(t, miss)
}
