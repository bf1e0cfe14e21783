// Package query implements the four statistical query operations over a
// loaded dataset. Every operation is a pure function of the dataset and
// its arguments: no hidden state, safe to call concurrently.
package query

import (
	"math"
	"sort"

	"github.com/dunkmaster/hoopstats/internal/types"
)

// Miss is the structured "not found" outcome of an operation. It is a
// valid result, not an error: unresolved entities and empty seasons are
// expected query outcomes and never abort the serving loop.
type Miss struct {
	Reason string
}

// NotFoundResult is the wire payload rendered for a Miss.
type NotFoundResult struct {
	NotFound bool    `json:"not_found"`
	Score    float64 `json:"score"`
	Error    string  `json:"error"`
}

// NotFoundPayload renders a Miss for transport.
func NotFoundPayload(m *Miss) NotFoundResult {
	return NotFoundResult{NotFound: true, Error: m.Reason}
}

// SeasonSpan is the first and last season an entity appears in. Both
// ends are null when no season rows exist.
type SeasonSpan struct {
	From *int `json:"from"`
	To   *int `json:"to"`
}

// CareerAverages holds game-weighted career figures. Null means the
// aggregate was undefined (no rows, zero games, or column absent).
type CareerAverages struct {
	Pts *float64 `json:"pts"`
	Ast *float64 `json:"ast"`
	Trb *float64 `json:"trb"`
}

// AwardShare is the single best season for one award type.
type AwardShare struct {
	Award  string      `json:"award"`
	Season *int        `json:"season"`
	Share  *float64    `json:"share"`
	Winner interface{} `json:"winner"`
}

// PlayerCard is the player_summary result.
type PlayerCard struct {
	Match             string         `json:"match"`
	Score             float64        `json:"score"`
	Span              SeasonSpan     `json:"span"`
	Teams             []string       `json:"teams"`
	CareerAvgs        CareerAverages `json:"career_avgs"`
	AllStarSelections int            `json:"all_star_selections"`
	TopAwardShares    []AwardShare   `json:"top_award_shares"`
}

// ScorerLine is one entry of the top_scorers ranking.
type ScorerLine struct {
	Player     string  `json:"player"`
	Team       string  `json:"team"`
	PtsPerGame float64 `json:"pts_per_game"`
	Games      int64   `json:"g"`
}

// CompareLine is one side of a compare_players result.
type CompareLine struct {
	Match string   `json:"match"`
	Score float64  `json:"score"`
	Games int64    `json:"g"`
	Pts   *float64 `json:"pts"`
	Ast   *float64 `json:"ast"`
	Trb   *float64 `json:"trb"`
}

// PlayerComparison is the compare_players result.
type PlayerComparison struct {
	Basis   string      `json:"basis"`
	PlayerA CompareLine `json:"player_a"`
	PlayerB CompareLine `json:"player_b"`
}

// TeamCard is the team_summary result. Summary holds only the metrics
// actually present in the source row; absent fields are omitted rather
// than nulled.
type TeamCard struct {
	Match   string                 `json:"match"`
	Score   float64                `json:"score"`
	Season  int                    `json:"season"`
	Summary map[string]interface{} `json:"summary"`
	Message string                 `json:"message,omitempty"`
}

// round2 rounds to two decimals for presentation. Aggregation never
// rounds internally.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func round2Ptr(v types.Value) *float64 {
	if f, ok := v.AsFloat(); ok {
		r := round2(f)
		return &r
	}
	return nil
}

func intPtr(i int) *int {
	return &i
}

// distinctText collects the sorted distinct textual values of a column
// across rows.
func distinctText(rows []types.Row, col string) []string {
	seen := make(map[string]struct{})
	for _, row := range rows {
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
