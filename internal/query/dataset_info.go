package query

import (
	"fmt"
	"path/filepath"

	"github.com/dunkmaster/hoopstats/internal/dataset"
)

// TableInfo describes one loaded table for inventory listings.
type TableInfo struct {
	Name        string `json:"name"`
	File        string `json:"file"`
	Rows        int    `json:"rows"`
	Columns     int    `json:"columns"`
	Fingerprint string `json:"xxh64"`
}

// DatasetInfoResult is the dataset_info payload.
type DatasetInfoResult struct {
	Tables []TableInfo `json:"tables"`
}

// DatasetInfo reports the loaded table inventory: row counts, column
// counts, and content fingerprints. Read-only, no arguments.
func DatasetInfo(ds *dataset.Dataset) DatasetInfoResult {
	tables := ds.Tables()
	out := DatasetInfoResult{Tables: make([]TableInfo, 0, len(tables))}
	for _, t := range tables {
		out.Tables = append(out.Tables, TableInfo{
			Name:        string(t.Name),
			File:        filepath.Base(t.Source),
			Rows:        t.RowCount(),
			Columns:     len(t.Columns),
			Fingerprint: fmt.Sprintf("%016x", t.Fingerprint),
		})
	}
	return out
}
