// Package tilegrid stores an editable rows by cols grid of optional tiles.
package tilegrid

import (
	"errors"
	"fmt"
)

// Pos addresses one tile.
type Pos struct {
	Row, Col int
}

type tile[T any] struct {
	value T
	set   bool
}

// Grid is stored column-major: tile (r, c) lives at r + c*rows.
type Grid[T comparable] struct {
	rows, cols int
	tiles      []tile[T]
}

// MaxTiles bounds rows*cols for every grid, including ones read from
// files or the clipboard.
const MaxTiles = 1 << 24

// ErrSize reports a negative size or one over MaxTiles. New and Resize
// panic with it.
var ErrSize = errors.New("tilegrid: invalid grid size")

// ValidSize checks rows and cols without computing an overflowing product.
func ValidSize(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("%w: negative size %dx%d", ErrSize, rows, cols)
	}
	if cols != 0 && rows > MaxTiles/cols {
		return fmt.Errorf("%w: %dx%d is over %d tiles", ErrSize, rows, cols, MaxTiles)
	}
	return nil
}

func New[T comparable](rows, cols int) *Grid[T] {
	if err := ValidSize(rows, cols); err != nil {
		panic(err)
	}
	return &Grid[T]{
		rows:  rows,
		cols:  cols,
		tiles: make([]tile[T], rows*cols),
	}
}

func (g *Grid[T]) Size() (rows, cols int) { return g.rows, g.cols }

func (g *Grid[T]) Len() int { return len(g.tiles) }

func (g *Grid[T]) index(p Pos) int {
	if p.Row < 0 || p.Row >= g.rows || p.Col < 0 || p.Col >= g.cols {
		panic(fmt.Sprintf("tilegrid: position (%d, %d) outside %dx%d", p.Row, p.Col, g.rows, g.cols))
	}
	return p.Row + p.Col*g.rows
}

// PosOf is the inverse of the storage order.
func (g *Grid[T]) PosOf(i int) Pos {
	return Pos{Row: i % g.rows, Col: i / g.rows}
}

func (g *Grid[T]) Get(p Pos) (T, bool) {
	t := g.tiles[g.index(p)]
	return t.value, t.set
}

func (g *Grid[T]) Set(p Pos, v T) {
	g.tiles[g.index(p)] = tile[T]{value: v, set: true}
}

func (g *Grid[T]) Clear(p Pos) {
	g.tiles[g.index(p)] = tile[T]{}
}

// Resize changes the grid dimensions, keeping tiles that still fit.
func (g *Grid[T]) Resize(rows, cols int) {
	next := New[T](rows, cols)
	for c := 0; c < min(cols, g.cols); c++ {
		for r := 0; r < min(rows, g.rows); r++ {
			next.tiles[next.index(Pos{Row: r, Col: c})] = g.tiles[g.index(Pos{Row: r, Col: c})]
		}
	}
	*g = *next
}

func (g *Grid[T]) Clone() *Grid[T] {
	c := &Grid[T]{rows: g.rows, cols: g.cols, tiles: make([]tile[T], len(g.tiles))}
	copy(c.tiles, g.tiles)
	return c
}

// Equal reports whether both grids have the same size and tiles.
func (g *Grid[T]) Equal(o *Grid[T]) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.tiles {
		if g.tiles[i] != o.tiles[i] {
			return false
		}
	}
	return true
}

// Count returns how many tiles are set.
func (g *Grid[T]) Count() int {
	n := 0
	for _, t := range g.tiles {
		if t.set {
			n++
		}
	}
	return n
}
