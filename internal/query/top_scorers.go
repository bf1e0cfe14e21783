package query

import (
	"github.com/dunkmaster/hoopstats/internal/dataset"
	"github.com/dunkmaster/hoopstats/internal/stats"
	"github.com/dunkmaster/hoopstats/internal/types"
)

const colPtsPerGame = "pts_per_game"

// DefaultTopN is the top_scorers ranking size when the caller omits n.
const DefaultTopN = 10

// TopScorers ranks a season's players by points per game. Rows missing
// any projected column are excluded before ranking. An empty season or
// an absent metric column yields an empty slice, not an error.
func TopScorers(ds *dataset.Dataset, season, n int) []ScorerLine {
	t := ds.PerGame
	if !t.HasColumn(colPtsPerGame) {
		return []ScorerLine{}
	}

	var complete []types.Row
	for _, row := range t.Rows {
		if _, ok := row.Text(types.ColPlayer); !ok {
			continue
		}
		if _, ok := row.Text(types.ColTeam); !ok {
			continue
		}
		if _, ok := row.Float(types.ColGames); !ok {
			continue
		}
		complete = append(complete, row)
	}

	ranked := stats.SeasonTopN(dataset.NewTable(t.Name, t.Columns, complete), season, colPtsPerGame, n)

	out := make([]ScorerLine, 0, len(ranked))
	for _, row := range ranked {
		player, _ := row.Text(types.ColPlayer)
		team, _ := row.Text(types.ColTeam)
		ppg, _ := row.Float(colPtsPerGame)
		games, _ := row.Int(types.ColGames)
		out = append(out, ScorerLine{
			Player:     player,
			Team:       team,
			PtsPerGame: round2(ppg),
			Games:      games,
		})
	}
	return out
}
