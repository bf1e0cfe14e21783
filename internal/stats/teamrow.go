package stats

import (
	"strings"

	"github.com/dunkmaster/hoopstats/internal/dataset"
	"github.com/dunkmaster/hoopstats/internal/types"
)

// MatchTeamRow finds the row for (season, team): exact case-insensitive
// name first, then exact abbreviation, then substring containment inside
// the team name. When more than one candidate survives and the table
// carries a playoffs indicator, regular-season rows (playoffs == 0) are
// preferred. The first candidate in load order wins any remaining tie;
// that order carries no semantic ranking.
func MatchTeamRow(t *dataset.Table, season int, team string) (types.Row, bool) {
	sub := FilterSeason(t, season)
	if len(sub) == 0 {
		return nil, false
	}

	query := strings.ToLower(strings.TrimSpace(team))

	matched := matchColumn(sub, types.ColTeam, query, equalFold)
	if len(matched) == 0 && t.HasColumn(types.ColAbbreviation) {
		matched = matchColumn(sub, types.ColAbbreviation, query, equalFold)
	}
	if len(matched) == 0 {
		matched = matchColumn(sub, types.ColTeam, query, containsFold)
	}
	if len(matched) == 0 {
		return nil, false
	}

	if len(matched) > 1 && t.HasColumn(types.ColPlayoffs) {
		var regular []types.Row
		for _, row := range matched {
			if isRegularSeason(row.Get(types.ColPlayoffs)) {
				regular = append(regular, row)
			}
		}
		if len(regular) > 0 {
			matched = regular
		}
	}

	return matched[0], true
}

// isRegularSeason interprets the playoffs indicator, which appears as a
// 0/1 flag in some exports and as FALSE/TRUE text in others.
func isRegularSeason(v types.Value) bool {
	if f, ok := v.AsFloat(); ok {
		return f == 0
	}
	if s, ok := v.AsString(); ok {
		return strings.EqualFold(strings.TrimSpace(s), "false")
	}
	return false
}

func matchColumn(rows []types.Row, col, query string, match func(cell, query string) bool) []types.Row {
	var out []types.Row
	for _, row := range rows {
		if s, ok := row.Text(col); ok && match(s, query) {
			out = append(out, row)
		}
	}
	return out
}

func equalFold(cell, query string) bool {
	return strings.ToLower(cell) == query
}

func containsFold(cell, query string) bool {
	return strings.Contains(strings.ToLower(cell), query)
}
