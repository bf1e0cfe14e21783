package types

// Row is one record within a table: a mapping from column name to typed
// value. A column absent from the map and a column holding Missing are
// both treated as missing data by accessors.
type Row map[string]Value

// Common column names shared across the season-indexed tables.
const (
	ColSeason       = "season"
	ColPlayer       = "player"
	ColTeam         = "team"
	ColGames        = "g"
	ColAbbreviation = "abbreviation"
	ColPlayoffs     = "playoffs"
	ColAward        = "award"
	ColShare        = "share"
	ColWinner       = "winner"
)

// Get returns the value for a column, Missing if the column is absent.
func (r Row) Get(col string) Value {
	if v, ok := r[col]; ok {
		return v
	}
	return Missing()
}

// Float returns a column as float64, reporting false when the column is
// absent, missing, or non-numeric.
func (r Row) Float(col string) (float64, bool) {
	return r.Get(col).AsFloat()
}

// Int returns a column as int64, reporting false when the column is
// absent, missing, or non-numeric.
func (r Row) Int(col string) (int64, bool) {
	return r.Get(col).AsInt()
}

// Text returns a column as a string, reporting false when the column is
// absent, missing, or non-textual.
func (r Row) Text(col string) (string, bool) {
	return r.Get(col).AsString()
}
