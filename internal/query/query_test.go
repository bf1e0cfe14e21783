package query

import (
	"github.com/dunkmaster/hoopstats/internal/dataset"
	"github.com/dunkmaster/hoopstats/internal/types"
)

// testDataset builds a small in-memory dataset covering two careers, a
// shortened one with missing per-game cells, and one team season.
func testDataset() *dataset.Dataset {
	perGame := dataset.NewTable(dataset.PerGame,
		[]string{"season", "player", "team", "g", "pts_per_game", "ast_per_game", "trb_per_game"},
		[]types.Row{
			{"season": types.Int(1997), "player": types.Text("Michael Jordan"), "team": types.Text("CHI"), "g": types.Int(82), "pts_per_game": types.Float(29.6), "ast_per_game": types.Float(4.3), "trb_per_game": types.Float(5.9)},
			{"season": types.Int(1998), "player": types.Text("Michael Jordan"), "team": types.Text("CHI"), "g": types.Int(82), "pts_per_game": types.Float(28.7), "ast_per_game": types.Float(3.5), "trb_per_game": types.Float(5.8)},
			{"season": types.Int(1997), "player": types.Text("Karl Malone"), "team": types.Text("UTA"), "g": types.Int(82), "pts_per_game": types.Float(27.4), "ast_per_game": types.Float(4.5), "trb_per_game": types.Float(9.9)},
			{"season": types.Int(1998), "player": types.Text("Karl Malone"), "team": types.Text("UTA"), "g": types.Int(81), "pts_per_game": types.Float(27.0), "ast_per_game": types.Float(3.9), "trb_per_game": types.Float(10.3)},
			{"season": types.Int(1962), "player": types.Text("Wilt Chamberlain"), "team": types.Text("PHW"), "g": types.Int(80)},
			{"season": types.Int(1998), "player": types.Text("Benched Forever"), "g": types.Int(0), "pts_per_game": types.Float(99.9)},
		})

	per36 := dataset.NewTable(dataset.Per36,
		[]string{"season", "player", "g", "pts_per_36_min", "ast_per_36_min", "trb_per_36_min"},
		[]types.Row{
			{"season": types.Int(1997), "player": types.Text("Michael Jordan"), "g": types.Int(82), "pts_per_36_min": types.Float(27.0), "ast_per_36_min": types.Float(3.9), "trb_per_36_min": types.Float(5.4)},
			{"season": types.Int(1998), "player": types.Text("Michael Jordan"), "g": types.Int(82), "pts_per_36_min": types.Float(26.5), "ast_per_36_min": types.Float(3.2), "trb_per_36_min": types.Float(5.4)},
			{"season": types.Int(1997), "player": types.Text("Karl Malone"), "g": types.Int(82), "pts_per_36_min": types.Float(26.1), "ast_per_36_min": types.Float(4.3), "trb_per_36_min": types.Float(9.5)},
		})

	per100 := dataset.NewTable(dataset.Per100,
		[]string{"season", "player", "g", "pts_per_100_poss", "ast_per_100_poss", "trb_per_100_poss"},
		[]types.Row{
			{"season": types.Int(1997), "player": types.Text("Michael Jordan"), "g": types.Int(82), "pts_per_100_poss": types.Float(41.1), "ast_per_100_poss": types.Float(6.0), "trb_per_100_poss": types.Float(8.2)},
			{"season": types.Int(1998), "player": types.Text("Michael Jordan"), "g": types.Int(82), "pts_per_100_poss": types.Float(40.3), "ast_per_100_poss": types.Float(4.9), "trb_per_100_poss": types.Float(8.1)},
		})

	totals := dataset.NewTable(dataset.Totals,
		[]string{"season", "player", "g", "pts", "ast", "trb"},
		[]types.Row{
			{"season": types.Int(1997), "player": types.Text("Michael Jordan"), "g": types.Int(82), "pts": types.Int(2431), "ast": types.Int(352), "trb": types.Int(482)},
			{"season": types.Int(1998), "player": types.Text("Michael Jordan"), "g": types.Int(82), "pts": types.Int(2357), "ast": types.Int(283), "trb": types.Int(475)},
			{"season": types.Int(1962), "player": types.Text("Wilt Chamberlain"), "g": types.Int(80), "pts": types.Int(4029)},
		})

	career := dataset.NewTable(dataset.Career,
		[]string{"player", "first_seas", "last_seas"},
		[]types.Row{
			{"player": types.Text("Michael Jordan"), "first_seas": types.Int(1985), "last_seas": types.Int(2003)},
			{"player": types.Text("Karl Malone"), "first_seas": types.Int(1986), "last_seas": types.Int(2004)},
			{"player": types.Text("Wilt Chamberlain"), "first_seas": types.Int(1960), "last_seas": types.Int(1973)},
		})

	allStar := dataset.NewTable(dataset.AllStar,
		[]string{"player", "season"},
		[]types.Row{
			{"player": types.Text("Michael Jordan"), "season": types.Int(1997)},
			{"player": types.Text("Michael Jordan"), "season": types.Int(1998)},
			{"player": types.Text("Karl Malone"), "season": types.Int(1998)},
		})

	awards := dataset.NewTable(dataset.Awards,
		[]string{"player", "award", "season", "share", "winner"},
		[]types.Row{
			{"player": types.Text("Michael Jordan"), "award": types.Text("nba mvp"), "season": types.Int(1997), "share": types.Float(0.47), "winner": types.Text("FALSE")},
			{"player": types.Text("Michael Jordan"), "award": types.Text("nba mvp"), "season": types.Int(1998), "share": types.Float(0.934), "winner": types.Text("TRUE")},
			{"player": types.Text("Michael Jordan"), "award": types.Text("dpoy"), "season": types.Int(1998), "share": types.Float(0.2), "winner": types.Text("FALSE")},
		})

	teamSummaries := dataset.NewTable(dataset.TeamSummaries,
		[]string{"season", "team", "abbreviation", "playoffs", "w", "l", "srs", "o_rtg", "d_rtg", "pace", "ts_percent"},
		[]types.Row{
			{"season": types.Int(1998), "team": types.Text("Chicago Bulls"), "abbreviation": types.Text("CHI"), "playoffs": types.Int(0), "w": types.Int(62), "l": types.Int(20), "srs": types.Float(7.24), "o_rtg": types.Float(107.7), "d_rtg": types.Float(99.8), "pace": types.Float(89.6), "ts_percent": types.Float(0.532)},
			{"season": types.Int(1998), "team": types.Text("Chicago Bulls"), "abbreviation": types.Text("CHI"), "playoffs": types.Int(1), "w": types.Int(15), "l": types.Int(6)},
		})

	teamPerGame := dataset.NewTable(dataset.TeamStatsPerGame,
		[]string{"season", "team", "abbreviation", "playoffs", "pts_per_game", "ast_per_game", "trb_per_game", "x3p_percent"},
		[]types.Row{
			{"season": types.Int(1998), "team": types.Text("Chicago Bulls"), "abbreviation": types.Text("CHI"), "playoffs": types.Int(0), "pts_per_game": types.Float(96.7), "ast_per_game": types.Float(23.8), "trb_per_game": types.Float(43.3), "x3p_percent": types.Float(0.339)},
		})

	return &dataset.Dataset{
		PerGame:          perGame,
		Per36:            per36,
		Per100:           per100,
		Totals:           totals,
		Career:           career,
		AllStar:          allStar,
		Awards:           awards,
		TeamSummaries:    teamSummaries,
		TeamStatsPerGame: teamPerGame,
	}
}

// emptyDataset has every required table present but holding no rows.
func emptyDataset() *dataset.Dataset {
	empty := func(name dataset.TableName) *dataset.Table {
		return dataset.NewTable(name, []string{"season", "player"}, nil)
	}
	return &dataset.Dataset{
		PerGame:       empty(dataset.PerGame),
		Per36:         empty(dataset.Per36),
		Per100:        empty(dataset.Per100),
		Totals:        empty(dataset.Totals),
		Career:        empty(dataset.Career),
		AllStar:       empty(dataset.AllStar),
		Awards:        empty(dataset.Awards),
		TeamSummaries: dataset.NewTable(dataset.TeamSummaries, []string{"season", "team"}, nil),
	}
}
