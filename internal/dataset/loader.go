package dataset

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"github.com/dunkmaster/hoopstats/internal/debug"
	"github.com/dunkmaster/hoopstats/internal/types"
)

// sourceFiles maps each table to its CSV file name inside the data root.
// The names are the published Kaggle export names and are not configurable.
var sourceFiles = map[TableName]string{
	PerGame:          "Player Per Game.csv",
	Per36:            "Per 36 Minutes.csv",
	Per100:           "Per 100 Poss.csv",
	Totals:           "Player Totals.csv",
	Career:           "Player Career Info.csv",
	AllStar:          "All-Star Selections.csv",
	Awards:           "Player Award Shares.csv",
	TeamSummaries:    "Team Summaries.csv",
	TeamStatsPerGame: "Team Stats Per Game.csv",
}

// requiredTables must all load for the process to start serving.
// TeamStatsPerGame is optional: it only enriches team summaries.
var requiredTables = []TableName{
	PerGame, Per36, Per100, Totals, Career, AllStar, Awards, TeamSummaries,
}

// nameColumns are trimmed of surrounding whitespace at load time so that
// entity identity is stable across tables.
var nameColumns = []string{types.ColPlayer, types.ColTeam}

// Dataset is the full set of loaded tables, constructed once at startup
// and shared read-only by every query for the process lifetime.
type Dataset struct {
	PerGame          *Table
	Per36            *Table
	Per100           *Table
	Totals           *Table
	Career           *Table
	AllStar          *Table
	Awards           *Table
	TeamSummaries    *Table
	TeamStatsPerGame *Table // nil when the optional source file is absent
}

// Tables returns the loaded tables in a stable order for inventory-style
// listings.
func (d *Dataset) Tables() []*Table {
	out := []*Table{
		d.PerGame, d.Per36, d.Per100, d.Totals,
		d.Career, d.AllStar, d.Awards, d.TeamSummaries,
	}
	if d.TeamStatsPerGame != nil {
		out = append(out, d.TeamStatsPerGame)
	}
	return out
}

// Loader reads tables from a data root directory. Loading is idempotent
// and cached: a second request for an already-loaded table returns the
// cached instance without re-reading the source file.
type Loader struct {
	root string

	mu      sync.Mutex
	entries map[TableName]*loadEntry
}

type loadEntry struct {
	once  sync.Once
	table *Table
	err   error
}

// NewLoader creates a loader rooted at the given data directory.
func NewLoader(root string) *Loader {
	return &Loader{
		root:    root,
		entries: make(map[TableName]*loadEntry),
	}
}

// Root returns the data root directory.
func (l *Loader) Root() string {
	return l.root
}

// Load reads a single table, or returns the cached instance. A missing
// backing file yields a *MissingSourceError.
func (l *Loader) Load(name TableName) (*Table, error) {
	file, ok := sourceFiles[name]
	if !ok {
		return nil, fmt.Errorf("unknown table %q", name)
	}

	l.mu.Lock()
	entry, ok := l.entries[name]
	if !ok {
		entry = &loadEntry{}
		l.entries[name] = entry
	}
	l.mu.Unlock()

	entry.once.Do(func() {
		entry.table, entry.err = l.read(name, file)
	})
	return entry.table, entry.err
}

// LoadAll loads every required table concurrently and the optional
// team-stats table tolerantly. Any missing required file fails the whole
// load; the error names the file.
func (l *Loader) LoadAll(ctx context.Context) (*Dataset, error) {
	if info, err := os.Stat(l.root); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("data directory does not exist: %s", l.root)
	}

	g, _ := errgroup.WithContext(ctx)
	for _, name := range requiredTables {
		g.Go(func() error {
			_, err := l.Load(name)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ds := &Dataset{}
	ds.PerGame, _ = l.Load(PerGame)
	ds.Per36, _ = l.Load(Per36)
	ds.Per100, _ = l.Load(Per100)
	ds.Totals, _ = l.Load(Totals)
	ds.Career, _ = l.Load(Career)
	ds.AllStar, _ = l.Load(AllStar)
	ds.Awards, _ = l.Load(Awards)
	ds.TeamSummaries, _ = l.Load(TeamSummaries)

	if t, err := l.Load(TeamStatsPerGame); err == nil {
		ds.TeamStatsPerGame = t
	} else {
		var missing *MissingSourceError
		if !errors.As(err, &missing) {
			return nil, err
		}
		debug.LogDataset("optional table %s not present, team summaries will not be enriched\n", TeamStatsPerGame)
	}

	return ds, nil
}

// read loads and normalizes one table from disk.
func (l *Loader) read(name TableName, file string) (*Table, error) {
	path, err := l.findSource(name, file)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Table: name, Path: path, Underlying: err}
	}

	columns, rows, err := parseCSV(raw)
	if err != nil {
		return nil, &LoadError{Table: name, Path: path, Underlying: err}
	}

	normalize(columns, rows)

	table := NewTable(name, columns, rows)
	table.Source = path
	table.Fingerprint = xxhash.Sum64(raw)

	debug.LogDataset("loaded %s: %d rows, %d columns (xxh64 %016x)\n",
		name, len(rows), len(columns), table.Fingerprint)
	return table, nil
}

// findSource locates a table's CSV. The file is looked up directly under
// the data root first; Kaggle archives often unpack into a subdirectory,
// so a recursive glob is the fallback.
func (l *Loader) findSource(name TableName, file string) (string, error) {
	direct := filepath.Join(l.root, file)
	if _, err := os.Stat(direct); err == nil {
		return direct, nil
	}

	matches, err := doublestar.Glob(os.DirFS(l.root), "**/"+file)
	if err == nil && len(matches) > 0 {
		sort.Strings(matches)
		return filepath.Join(l.root, filepath.FromSlash(matches[0])), nil
	}

	return "", &MissingSourceError{Table: name, Path: direct}
}

// parseCSV decodes raw CSV bytes into a header and typed rows. Cell
// values are sniffed as int, then float, then text; empty cells are
// missing.
func parseCSV(raw []byte) ([]string, []types.Row, error) {
	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("reading header: %w", err)
	}
	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = strings.TrimSpace(h)
	}

	var rows []types.Row
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading record: %w", err)
		}
		row := make(types.Row, len(columns))
		for i, col := range columns {
			if i >= len(record) {
				break
			}
			row[col] = types.Parse(record[i])
		}
		rows = append(rows, row)
	}
	return columns, rows, nil
}

// normalize applies the load-time coercions exactly once: season columns
// become numeric (non-parsable entries become missing, never an error)
// and entity name columns are trimmed.
func normalize(columns []string, rows []types.Row) {
	hasSeason := false
	var presentNames []string
	for _, c := range columns {
		if c == types.ColSeason {
			hasSeason = true
		}
		for _, nc := range nameColumns {
			if c == nc {
				presentNames = append(presentNames, c)
			}
		}
	}

	for _, row := range rows {
		if hasSeason {
			v := row.Get(types.ColSeason)
			if _, ok := v.AsFloat(); !ok && !v.IsMissing() {
				row[types.ColSeason] = types.Missing()
			}
		}
		for _, col := range presentNames {
			if s, ok := row.Text(col); ok {
				row[col] = types.Text(strings.TrimSpace(s))
			}
		}
	}
}
