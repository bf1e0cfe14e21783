package dataset

import (
	"sort"

	"github.com/dunkmaster/hoopstats/internal/types"
)

// TableName identifies one of the season-indexed source tables.
type TableName string

const (
	PerGame          TableName = "per_game"
	Per36            TableName = "per_36"
	Per100           TableName = "per_100"
	Totals           TableName = "totals"
	Career           TableName = "career"
	AllStar          TableName = "all_star"
	Awards           TableName = "awards"
	TeamSummaries    TableName = "team_summaries"
	TeamStatsPerGame TableName = "team_stats_per_game"
)

// Table is an immutable, in-memory ordered collection of rows sharing a
// schema, loaded once from a CSV source. Row order is the source file's
// natural order and is never rearranged after load.
type Table struct {
	Name        TableName
	Source      string
	Columns     []string
	Rows        []types.Row
	Fingerprint uint64

	colSet map[string]struct{}
}

// NewTable builds a table over already-normalized rows. The loader and
// tests are the only constructors; nothing mutates a table afterwards.
func NewTable(name TableName, columns []string, rows []types.Row) *Table {
	colSet := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		colSet[c] = struct{}{}
	}
	return &Table{
		Name:    name,
		Columns: columns,
		Rows:    rows,
		colSet:  colSet,
	}
}

// HasColumn reports whether the table schema contains the column.
func (t *Table) HasColumn(col string) bool {
	_, ok := t.colSet[col]
	return ok
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// DistinctStrings returns the sorted set of distinct textual values in a
// column, skipping missing and non-textual cells. The sorted order makes
// downstream fuzzy resolution deterministic.
func (t *Table) DistinctStrings(col string) []string {
	if !t.HasColumn(col) {
		return nil
	}
	seen := make(map[string]struct{})
	for _, row := range t.Rows {
		if s, ok := row.Text(col); ok {
			seen[s] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Select returns the rows whose column equals the given text exactly,
// preserving load order.
func (t *Table) Select(col, text string) []types.Row {
	if !t.HasColumn(col) {
		return nil
	}
	var out []types.Row
	for _, row := range t.Rows {
		if s, ok := row.Text(col); ok && s == text {
			out = append(out, row)
		}
	}
	return out
}
