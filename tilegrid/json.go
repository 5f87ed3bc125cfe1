package tilegrid

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FormatVersion is the only save format this package reads and writes.
const FormatVersion = "1.0"

var ErrVersion = errors.New("tilegrid: unsupported format version")

type gridJSON[T any] struct {
	Version string `json:"version"`
	Rows    int    `json:"rows"`
	Cols    int    `json:"cols"`
	List    []*T   `json:"list"`
}

// MarshalJSON writes the tiles column by column, null for empty tiles.
func (g *Grid[T]) MarshalJSON() ([]byte, error) {
	out := gridJSON[T]{
		Version: FormatVersion,
		Rows:    g.rows,
		Cols:    g.cols,
		List:    make([]*T, len(g.tiles)),
	}
	for i, t := range g.tiles {
		if t.set {
			v := t.value
			out.List[i] = &v
		}
	}
	return json.Marshal(out)
}

func (g *Grid[T]) UnmarshalJSON(b []byte) error {
	var in gridJSON[T]
	if err := json.Unmarshal(b, &in); err != nil {
		return fmt.Errorf("tilegrid: unmarshal: %w", err)
	}
	if in.Version != FormatVersion {
		return fmt.Errorf("%w %q", ErrVersion, in.Version)
	}
	if err := ValidSize(in.Rows, in.Cols); err != nil {
		return err
	}
	if len(in.List) > in.Rows*in.Cols {
		return fmt.Errorf("tilegrid: %d tiles do not fit %dx%d", len(in.List), in.Rows, in.Cols)
	}

	next := New[T](in.Rows, in.Cols)
	for i, v := range in.List {
		if v != nil {
			next.tiles[i] = tile[T]{value: *v, set: true}
		}
	}
	*g = *next
	return nil
}

// SaveFile writes g as indented JSON, creating parent directories.
func SaveFile[T comparable](path string, g *Grid[T]) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("tilegrid: save %s: %w", path, err)
		}
	}
	b, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return fmt.Errorf("tilegrid: save %s: %w", path, err)
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("tilegrid: save %s: %w", path, err)
	}
	return nil
}

func LoadFile[T comparable](path string) (*Grid[T], error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tilegrid: load %s: %w", path, err)
	}
	g := New[T](0, 0)
	if err := json.Unmarshal(b, g); err != nil {
		return nil, fmt.Errorf("tilegrid: load %s: %w", path, err)
	}
	return g, nil
}
