package query

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/dunkmaster/hoopstats/internal/dataset"
)

// Tool names exposed by both transports.
const (
	ToolPlayerSummary  = "player_summary"
	ToolTopScorers     = "top_scorers"
	ToolComparePlayers = "compare_players"
	ToolTeamSummary    = "team_summary"
	ToolDatasetInfo    = "dataset_info"
)

// Tool is a transport-neutral tool advertisement: name, description, and
// the machine-readable schema of its argument bag.
type Tool struct {
	Name        string
	Description string
	InputSchema *jsonschema.Schema
}

// Tools lists every exposed operation with its argument schema. Both the
// MCP server and the HTTP bridge advertise from this single registry.
func Tools() []Tool {
	return []Tool{
		{
			Name:        ToolPlayerSummary,
			Description: "Compact career summary for a player: season span, teams, weighted career averages, all-star selections, and top award shares. The name is fuzzy-matched; the result carries the match confidence.",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"player": {
						Type:        "string",
						Description: "Player name (misspellings tolerated)",
					},
				},
				Required: []string{"player"},
			},
		},
		{
			Name:        ToolTopScorers,
			Description: "Top-N players by points per game for a season.",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"season": {
						Type:        "integer",
						Description: "Season end year, e.g. 1998",
					},
					"n": {
						Type:        "integer",
						Description: "Ranking size (default 10)",
					},
				},
				Required: []string{"season"},
			},
		},
		{
			Name:        ToolComparePlayers,
			Description: "Compare weighted career averages of two players using a basis: per_game | per_36 | per_100.",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"player_a": {
						Type:        "string",
						Description: "First player name",
					},
					"player_b": {
						Type:        "string",
						Description: "Second player name",
					},
					"basis": {
						Type:        "string",
						Description: "per_game, per_36, or per_100 (default per_game)",
					},
				},
				Required: []string{"player_a", "player_b"},
			},
		},
		{
			Name:        ToolTeamSummary,
			Description: "W/L, SRS, ratings, pace, and shooting/possession metrics for a team season. Team may be a full name or an abbreviation.",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"season": {
						Type:        "integer",
						Description: "Season end year",
					},
					"team": {
						Type:        "string",
						Description: "Team name or abbreviation",
					},
				},
				Required: []string{"season", "team"},
			},
		},
		{
			Name:        ToolDatasetInfo,
			Description: "Inventory of the loaded dataset: tables, row counts, and content fingerprints.",
			InputSchema: &jsonschema.Schema{
				Type:       "object",
				Properties: map[string]*jsonschema.Schema{},
			},
		},
	}
}

// UnknownToolError reports a tool name outside the registry.
type UnknownToolError struct {
	Name string
}

// Error implements the error interface
func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool: %s", e.Name)
}

type playerSummaryParams struct {
	Player string `json:"player"`
}

type topScorersParams struct {
	Season *int `json:"season"`
	N      *int `json:"n"`
}

type compareParams struct {
	PlayerA string `json:"player_a"`
	PlayerB string `json:"player_b"`
	Basis   string `json:"basis"`
}

type teamSummaryParams struct {
	Season *int   `json:"season"`
	Team   string `json:"team"`
}

// Call dispatches a tool name plus raw argument bag to the matching
// operation and returns the result payload. Missing or mistyped
// arguments come back as errors for the transport to wrap in a
// structured error result; a Miss comes back as a not-found payload.
// Panics inside an operation are caught here so one failed query never
// tears down the loaded tables or the serving loop.
func Call(ds *dataset.Dataset, tool string, args json.RawMessage) (payload interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			payload = nil
			err = fmt.Errorf("internal error in %s: %v", tool, r)
		}
	}()

	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch tool {
	case ToolPlayerSummary:
		var p playerSummaryParams
		if err := json.Unmarshal(args, &p); err != nil {
			return nil, fmt.Errorf("invalid arguments: %w", err)
		}
		if p.Player == "" {
			return nil, fmt.Errorf("player is required")
		}
		card, miss := PlayerSummary(ds, p.Player)
		if miss != nil {
			return NotFoundPayload(miss), nil
		}
		return card, nil

	case ToolTopScorers:
		var p topScorersParams
		if err := json.Unmarshal(args, &p); err != nil {
			return nil, fmt.Errorf("invalid arguments: %w", err)
		}
		if p.Season == nil {
			return nil, fmt.Errorf("season is required")
		}
		n := DefaultTopN
		if p.N != nil {
			n = *p.N
		}
		return TopScorers(ds, *p.Season, n), nil

	case ToolComparePlayers:
		var p compareParams
		if err := json.Unmarshal(args, &p); err != nil {
			return nil, fmt.Errorf("invalid arguments: %w", err)
		}
		if p.PlayerA == "" || p.PlayerB == "" {
			return nil, fmt.Errorf("player_a and player_b are required")
		}
		return ComparePlayers(ds, p.PlayerA, p.PlayerB, p.Basis), nil

	case ToolTeamSummary:
		var p teamSummaryParams
		if err := json.Unmarshal(args, &p); err != nil {
			return nil, fmt.Errorf("invalid arguments: %w", err)
		}
		if p.Season == nil {
			return nil, fmt.Errorf("season is required")
		}
		if p.Team == "" {
			return nil, fmt.Errorf("team is required")
		}
		card, miss := TeamSummary(ds, *p.Season, p.Team)
		if miss != nil {
			return NotFoundPayload(miss), nil
		}
		return card, nil

	case ToolDatasetInfo:
		return DatasetInfo(ds), nil

	default:
		return nil, &UnknownToolError{Name: tool}
	}
}
