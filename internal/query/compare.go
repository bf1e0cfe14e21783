package query

import (
	"github.com/dunkmaster/hoopstats/internal/dataset"
	"github.com/dunkmaster/hoopstats/internal/resolve"
	"github.com/dunkmaster/hoopstats/internal/stats"
	"github.com/dunkmaster/hoopstats/internal/types"
)

// Comparison bases and the column triple each one reads.
const (
	BasisPerGame = "per_game"
	BasisPer36   = "per_36"
	BasisPer100  = "per_100"
)

type basisColumns struct {
	pts, ast, trb string
}

var basisMap = map[string]basisColumns{
	BasisPerGame: {"pts_per_game", "ast_per_game", "trb_per_game"},
	BasisPer36:   {"pts_per_36_min", "ast_per_36_min", "trb_per_36_min"},
	BasisPer100:  {"pts_per_100_poss", "ast_per_100_poss", "trb_per_100_poss"},
}

// ComparePlayers resolves both names independently against the basis
// table and computes game-weighted career points/assists/rebounds for
// each. An unknown basis silently falls back to per_game. A name with no
// matching rows yields zero games and null averages, never a failure of
// the whole comparison.
func ComparePlayers(ds *dataset.Dataset, nameA, nameB, basis string) PlayerComparison {
	cols, ok := basisMap[basis]
	if !ok {
		basis = BasisPerGame
		cols = basisMap[BasisPerGame]
	}

	table := basisTable(ds, basis)
	choices := table.DistinctStrings(types.ColPlayer)

	return PlayerComparison{
		Basis:   basis,
		PlayerA: compareLine(table, resolve.BestMatch(nameA, choices), cols),
		PlayerB: compareLine(table, resolve.BestMatch(nameB, choices), cols),
	}
}

func basisTable(ds *dataset.Dataset, basis string) *dataset.Table {
	switch basis {
	case BasisPer36:
		return ds.Per36
	case BasisPer100:
		return ds.Per100
	default:
		return ds.PerGame
	}
}

func compareLine(table *dataset.Table, match resolve.Match, cols basisColumns) CompareLine {
	rows := table.Select(types.ColPlayer, match.Name)
	line := CompareLine{
		Match: match.Name,
		Score: round2(match.Score),
		Games: int64(stats.SumColumn(rows, types.ColGames)),
	}
	line.Pts = round2Ptr(stats.WeightedAverage(rows, cols.pts, types.ColGames))
	line.Ast = round2Ptr(stats.WeightedAverage(rows, cols.ast, types.ColGames))
	line.Trb = round2Ptr(stats.WeightedAverage(rows, cols.trb, types.ColGames))
	return line
}
