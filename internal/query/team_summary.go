package query

import (
	"fmt"

	"github.com/dunkmaster/hoopstats/internal/dataset"
	"github.com/dunkmaster/hoopstats/internal/resolve"
	"github.com/dunkmaster/hoopstats/internal/stats"
	"github.com/dunkmaster/hoopstats/internal/types"
)

// Team Summaries metric columns, grouped by how they are presented.
var (
	teamCountColumns   = []string{"w", "l"}
	teamFloatColumns   = []string{"srs", "o_rtg", "d_rtg", "pace", "ft_fga"}
	teamPercentColumns = []string{"ts_percent", "e_fg_percent", "tov_percent", "orb_percent"}
)

// TeamSummary matches the (season, team) row in the team-summaries table
// and, when the optional per-game team stats table is loaded, enriches
// the result with box-score rates for the same pair. Net rating is
// derived from offensive minus defensive rating when not stored
// directly. Only fields present in the source rows appear in the output.
func TeamSummary(ds *dataset.Dataset, season int, team string) (*TeamCard, *Miss) {
	row, ok := stats.MatchTeamRow(ds.TeamSummaries, season, team)
	if !ok {
		return nil, &Miss{Reason: fmt.Sprintf("No team summary for '%s' in %d", team, season)}
	}

	matchName := team
	if name, ok := row.Text(types.ColTeam); ok {
		matchName = name
	}

	card := &TeamCard{
		Match:   matchName,
		Score:   round2(resolve.Similarity(team, matchName)),
		Season:  season,
		Summary: make(map[string]interface{}),
	}

	if abbr, ok := row.Text(types.ColAbbreviation); ok {
		card.Summary[types.ColAbbreviation] = abbr
	}
	for _, col := range teamCountColumns {
		if v, ok := row.Int(col); ok {
			card.Summary[col] = v
		}
	}
	for _, col := range teamFloatColumns {
		if v, ok := row.Float(col); ok {
			card.Summary[col] = round2(v)
		}
	}
	if v, ok := row.Float("n_rtg"); ok {
		card.Summary["n_rtg"] = round2(v)
	} else if o, okO := row.Float("o_rtg"); okO {
		if d, okD := row.Float("d_rtg"); okD {
			card.Summary["n_rtg"] = round2(o - d)
		}
	}
	for _, col := range teamPercentColumns {
		if v, ok := row.Float(col); ok {
			card.Summary[col] = round2(stats.CanonPercent(v))
		}
	}

	enrichPerGame(ds.TeamStatsPerGame, season, team, card.Summary)

	if len(card.Summary) == 0 {
		card.Message = fmt.Sprintf("%s %d: no metrics found", matchName, season)
	}
	return card, nil
}

// enrichPerGame mixes per-game box rates into the summary when the
// optional table is available and has a row for the same pair.
func enrichPerGame(t *dataset.Table, season int, team string, summary map[string]interface{}) {
	if t == nil {
		return
	}
	row, ok := stats.MatchTeamRow(t, season, team)
	if !ok {
		return
	}
	for _, col := range []string{"pts_per_game", "ast_per_game", "trb_per_game"} {
		if v, ok := row.Float(col); ok {
			summary[col] = round2(v)
		}
	}
	if v, ok := row.Float("x3p_percent"); ok {
		summary["x3p_percent"] = round2(stats.CanonPercent(v))
	}
}
