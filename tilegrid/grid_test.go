package tilegrid

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGridSetGetClear(t *testing.T) {
	g := New[string](4, 6)
	if r, c := g.Size(); r != 4 || c != 6 {
		t.Fatalf("size = %dx%d", r, c)
	}
	p := Pos{Row: 3, Col: 5}
	if _, ok := g.Get(p); ok {
		t.Fatalf("new grid tile should be empty")
	}
	g.Set(p, "grass")
	if v, ok := g.Get(p); !ok || v != "grass" {
		t.Fatalf("Get = %q,%v", v, ok)
	}
	g.Clear(p)
	if _, ok := g.Get(p); ok {
		t.Fatalf("tile should be empty after Clear")
	}
}

func TestGridStorageOrder(t *testing.T) {
	g := New[int](3, 2)
	for i := 0; i < g.Len(); i++ {
		p := g.PosOf(i)
		if g.index(p) != i {
			t.Fatalf("PosOf(%d) = %+v maps back to %d", i, p, g.index(p))
		}
	}
	if p := g.PosOf(4); p != (Pos{Row: 1, Col: 1}) {
		t.Fatalf("PosOf(4) = %+v, want {1 1}", p)
	}
}

func TestGridOutOfBoundsPanics(t *testing.T) {
	cases := []Pos{{Row: -1}, {Row: 2}, {Col: 3}}
	for _, p := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic for %+v", p)
				}
			}()
			New[int](2, 3).Get(p)
		}()
	}
}

func TestNewRejectsBadSizes(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"negative_rows", -1, 2},
		{"negative_cols", 2, -1},
		{"product_wraps", 1 << 32, 1 << 32},
		{"over_max_tiles", MaxTiles + 1, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			defer func() {
				err, _ := recover().(error)
				if !errors.Is(err, ErrSize) {
					t.Fatalf("recovered %v, want ErrSize", err)
				}
			}()
			New[int](c.rows, c.cols)
		})
	}

	if err := ValidSize(MaxTiles, 1); err != nil {
		t.Fatalf("ValidSize at the cap: %v", err)
	}
	if err := ValidSize(0, 1<<40); err != nil {
		t.Fatalf("empty grid with many cols: %v", err)
	}
}

func TestGridResizeKeepsOverlap(t *testing.T) {
	g := New[string](2, 2)
	g.Set(Pos{Row: 0, Col: 0}, "a")
	g.Set(Pos{Row: 1, Col: 1}, "d")
	g.Set(Pos{Row: 1, Col: 0}, "b")

	g.Resize(3, 1)
	if r, c := g.Size(); r != 3 || c != 1 {
		t.Fatalf("size after resize = %dx%d", r, c)
	}
	if v, _ := g.Get(Pos{Row: 0, Col: 0}); v != "a" {
		t.Fatalf("(0,0) = %q", v)
	}
	if v, _ := g.Get(Pos{Row: 1, Col: 0}); v != "b" {
		t.Fatalf("(1,0) = %q", v)
	}
	if _, ok := g.Get(Pos{Row: 2, Col: 0}); ok {
		t.Fatalf("new row should be empty")
	}
	if g.Count() != 2 {
		t.Fatalf("count = %d, want 2", g.Count())
	}
}

func TestGridCloneEqual(t *testing.T) {
	g := New[string](2, 3)
	g.Set(Pos{Row: 1, Col: 2}, "x")
	c := g.Clone()
	if !g.Equal(c) {
		t.Fatalf("clone should equal original")
	}
	c.Set(Pos{Row: 0, Col: 0}, "y")
	if g.Equal(c) {
		t.Fatalf("clone must not share tiles")
	}
	if g.Equal(New[string](3, 2)) {
		t.Fatalf("different sizes are not equal")
	}
}

func TestGridJSONFormat(t *testing.T) {
	g := New[string](2, 2)
	g.Set(Pos{Row: 1, Col: 0}, "b")
	g.Set(Pos{Row: 0, Col: 1}, "c")

	b, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"version":"1.0","rows":2,"cols":2,"list":[null,"b","c",null]}`
	if string(b) != want {
		t.Fatalf("json = %s, want %s", b, want)
	}

	var back Grid[string]
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(g) {
		t.Fatalf("decoded grid differs")
	}
}

func TestGridJSONErrors(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		version bool
		size    bool
	}{
		{"bad_version", `{"version":"2.0","rows":1,"cols":1,"list":[]}`, true, false},
		{"missing_version", `{"rows":1,"cols":1,"list":[]}`, true, false},
		{"negative", `{"version":"1.0","rows":-1,"cols":1,"list":[]}`, false, true},
		{"too_many_tiles", `{"version":"1.0","rows":1,"cols":1,"list":["a","b"]}`, false, false},
		{"product_wraps", `{"version":"1.0","rows":4294967296,"cols":4294967296,"list":[]}`, false, true},
		{"over_max_tiles", `{"version":"1.0","rows":4097,"cols":4097,"list":[]}`, false, true},
		{"wrong_type", `{"version":"1.0","rows":1,"cols":1,"list":[3]}`, false, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var g Grid[string]
			err := json.Unmarshal([]byte(c.in), &g)
			if err == nil {
				t.Fatalf("expected error")
			}
			if c.version != errors.Is(err, ErrVersion) {
				t.Fatalf("errors.Is(ErrVersion) = %v for %v", !c.version, err)
			}
			if c.size != errors.Is(err, ErrSize) {
				t.Fatalf("errors.Is(ErrSize) = %v for %v", !c.size, err)
			}
		})
	}
}

func TestGridJSONShortListPadsEmpty(t *testing.T) {
	var g Grid[string]
	if err := json.Unmarshal([]byte(`{"version":"1.0","rows":2,"cols":2,"list":["a"]}`), &g); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if g.Count() != 1 || g.Len() != 4 {
		t.Fatalf("count %d len %d", g.Count(), g.Len())
	}
}

func TestSaveLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saves", "quick-save.json")
	g := New[string](3, 2)
	g.Set(Pos{Row: 2, Col: 1}, "tree.png")

	if err := SaveFile(path, g); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(raw), `"version": "1.0"`) {
		t.Fatalf("saved file is not indented JSON: %s", raw)
	}

	back, err := LoadFile[string](path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !back.Equal(g) {
		t.Fatalf("loaded grid differs")
	}

	if _, err := LoadFile[string](filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file error = %v", err)
	}
}
