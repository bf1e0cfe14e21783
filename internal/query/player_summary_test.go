package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerSummary_ExactName(t *testing.T) {
	ds := testDataset()

	card, miss := PlayerSummary(ds, "Michael Jordan")
	require.Nil(t, miss)

	assert.Equal(t, "Michael Jordan", card.Match)
	assert.Equal(t, 100.0, card.Score)

	require.NotNil(t, card.Span.From)
	require.NotNil(t, card.Span.To)
	assert.Equal(t, 1997, *card.Span.From)
	assert.Equal(t, 1998, *card.Span.To)

	assert.Equal(t, []string{"CHI"}, card.Teams)
	assert.Equal(t, 2, card.AllStarSelections)

	require.NotNil(t, card.CareerAvgs.Pts)
	assert.InDelta(t, 29.15, *card.CareerAvgs.Pts, 0.001)
	require.NotNil(t, card.CareerAvgs.Ast)
	assert.InDelta(t, 3.9, *card.CareerAvgs.Ast, 0.001)
	require.NotNil(t, card.CareerAvgs.Trb)
	assert.InDelta(t, 5.85, *card.CareerAvgs.Trb, 0.001)
}

func TestPlayerSummary_FuzzyName(t *testing.T) {
	ds := testDataset()

	card, miss := PlayerSummary(ds, "Micheal Jordon")
	require.Nil(t, miss)

	assert.Equal(t, "Michael Jordan", card.Match)
	assert.Greater(t, card.Score, 80.0)
	assert.Less(t, card.Score, 100.0)
}

func TestPlayerSummary_TopAwardShares(t *testing.T) {
	ds := testDataset()

	card, miss := PlayerSummary(ds, "Michael Jordan")
	require.Nil(t, miss)
	require.Len(t, card.TopAwardShares, 2)

	// Sorted by award name.
	assert.Equal(t, "dpoy", card.TopAwardShares[0].Award)

	mvp := card.TopAwardShares[1]
	assert.Equal(t, "nba mvp", mvp.Award)
	require.NotNil(t, mvp.Season)
	assert.Equal(t, 1998, *mvp.Season)
	require.NotNil(t, mvp.Share)
	assert.InDelta(t, 0.934, *mvp.Share, 0.0001)
	assert.Equal(t, "TRUE", mvp.Winner)
}

func TestPlayerSummary_TotalsFallback(t *testing.T) {
	ds := testDataset()

	card, miss := PlayerSummary(ds, "Wilt Chamberlain")
	require.Nil(t, miss)

	// Per-game cells are absent for this career, so the figure comes
	// from the totals table instead. One season means the weighted
	// average collapses to that season's total.
	require.NotNil(t, card.CareerAvgs.Pts)
	assert.InDelta(t, 4029.0, *card.CareerAvgs.Pts, 0.001)

	assert.Nil(t, card.CareerAvgs.Ast)
	assert.Nil(t, card.CareerAvgs.Trb)
}

func TestPlayerSummary_NotFound(t *testing.T) {
	ds := emptyDataset()

	card, miss := PlayerSummary(ds, "Anyone At All")
	assert.Nil(t, card)
	require.NotNil(t, miss)
	assert.Equal(t, "Player 'Anyone At All' not found.", miss.Reason)

	payload := NotFoundPayload(miss)
	assert.True(t, payload.NotFound)
	assert.Zero(t, payload.Score)
	assert.Equal(t, miss.Reason, payload.Error)
}
