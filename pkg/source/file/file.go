// Package file loads category counts from JSON files.
//
// The format is a flat array of (name, count) objects:
//
//	[
//	  {"name": "Rivers", "count": 14},
//	  {"name": "Fly_Fishing", "count": 3}
//	]
//
// Loaded counts are served through a memory source, so all query-hint
// behavior matches the other backends.
package file

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mhelmke/wikicloud/pkg/cloud"
	"github.com/mhelmke/wikicloud/pkg/errors"
	"github.com/mhelmke/wikicloud/pkg/source/memory"
)

// Read decodes a category count list from r.
//
// Names are normalized on load, rows with empty names are rejected, and
// negative counts are rejected. Read does not close r.
func Read(r io.Reader) ([]cloud.Category, error) {
	var rows []cloud.Category
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	for i := range rows {
		rows[i].Name = cloud.Normalize(rows[i].Name)
		if rows[i].Name == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "row %d: empty category name", i)
		}
		if rows[i].Count < 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "row %d (%s): negative count", i, rows[i].Name)
		}
	}
	return rows, nil
}

// Load reads a count file from disk and returns a source over its rows.
func Load(path string) (*memory.Source, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return memory.New(rows), nil
}

// Write encodes categories as indented JSON to w, for round-tripping with
// [Read].
func Write(categories []cloud.Category, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(categories)
}
