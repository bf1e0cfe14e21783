package query

import (
	"fmt"
	"sort"

	"github.com/dunkmaster/hoopstats/internal/dataset"
	"github.com/dunkmaster/hoopstats/internal/resolve"
	"github.com/dunkmaster/hoopstats/internal/stats"
	"github.com/dunkmaster/hoopstats/internal/types"
)

// Per-game value columns with their totals-table fallbacks. The fallback
// applies only when the per-game aggregate is undefined, never when it
// is legitimately zero.
var careerColumns = []struct {
	perGame string
	totals  string
	assign  func(*CareerAverages, *float64)
}{
	{"pts_per_game", "pts", func(c *CareerAverages, v *float64) { c.Pts = v }},
	{"ast_per_game", "ast", func(c *CareerAverages, v *float64) { c.Ast = v }},
	{"trb_per_game", "trb", func(c *CareerAverages, v *float64) { c.Trb = v }},
}

// PlayerSummary resolves a free-text player name against the per-game
// table and assembles a compact career overview: season span, teams,
// game-weighted career averages, all-star selections, and the best
// season per award type. The Miss return is non-nil when the resolved
// name has no rows in any of the per-game, totals, and career tables.
func PlayerSummary(ds *dataset.Dataset, name string) (*PlayerCard, *Miss) {
	match := resolve.BestMatch(name, ds.PerGame.DistinctStrings(types.ColPlayer))

	perGame := ds.PerGame.Select(types.ColPlayer, match.Name)
	totals := ds.Totals.Select(types.ColPlayer, match.Name)
	career := ds.Career.Select(types.ColPlayer, match.Name)

	if len(perGame) == 0 && len(totals) == 0 && len(career) == 0 {
		return nil, &Miss{Reason: fmt.Sprintf("Player '%s' not found.", name)}
	}

	card := &PlayerCard{
		Match: match.Name,
		Score: round2(match.Score),
		Span:  seasonSpan(perGame),
		Teams: distinctText(perGame, types.ColTeam),
	}

	for _, col := range careerColumns {
		avg := stats.WeightedAverage(perGame, col.perGame, types.ColGames)
		if avg.IsMissing() {
			avg = stats.WeightedAverage(totals, col.totals, types.ColGames)
		}
		col.assign(&card.CareerAvgs, round2Ptr(avg))
	}

	card.AllStarSelections = len(ds.AllStar.Select(types.ColPlayer, match.Name))
	card.TopAwardShares = topAwardShares(ds.Awards.Select(types.ColPlayer, match.Name))

	return card, nil
}

// seasonSpan returns the first and last non-missing season in the rows.
func seasonSpan(rows []types.Row) SeasonSpan {
	var span SeasonSpan
	for _, row := range rows {
		s, ok := row.Int(types.ColSeason)
		if !ok {
			continue
		}
		season := int(s)
		if span.From == nil || season < *span.From {
			span.From = intPtr(season)
		}
		if span.To == nil || season > *span.To {
			span.To = intPtr(season)
		}
	}
	return span
}

// topAwardShares picks, per distinct award type, the single season with
// the highest share value. Rows with a missing share lose to any row
// with one; a fully shareless award keeps its first row in load order.
// Output is sorted by award name for stable responses.
func topAwardShares(rows []types.Row) []AwardShare {
	best := make(map[string]types.Row)
	var order []string
	for _, row := range rows {
		award, ok := row.Text(types.ColAward)
		if !ok {
			continue
		}
		current, exists := best[award]
		if !exists {
			best[award] = row
			order = append(order, award)
			continue
		}
		currentShare, hasCurrent := current.Float(types.ColShare)
		rowShare, hasRow := row.Float(types.ColShare)
		if hasRow && (!hasCurrent || rowShare > currentShare) {
			best[award] = row
		}
	}

	sort.Strings(order)
	out := make([]AwardShare, 0, len(order))
	for _, award := range order {
		row := best[award]
		share := AwardShare{
			Award:  award,
			Winner: row.Get(types.ColWinner).Interface(),
		}
		if s, ok := row.Int(types.ColSeason); ok {
			share.Season = intPtr(int(s))
		}
		if v, ok := row.Float(types.ColShare); ok {
			share.Share = &v
		}
		out = append(out, share)
	}
	return out
}
