// Package icons keeps the palette of named icons the editor paints with.
package icons

import "fmt"

// Asset is a named icon payload, usually an *ebiten.Image.
type Asset[T any] struct {
	Name  string
	Value T
}

// Server tracks the palette plus two distinguished entries: the selected
// icon painted on left click, and the default icon shown for empty tiles.
type Server[T any] struct {
	assets   []Asset[T]
	selected string
	fallback string
}

// NewServer needs at least two assets. The first becomes the default icon
// and the second the selected one.
func NewServer[T any](assets []Asset[T]) *Server[T] {
	if len(assets) < 2 {
		panic(fmt.Sprintf("icons: need at least 2 assets, got %d", len(assets)))
	}
	return &Server[T]{
		assets:   append([]Asset[T](nil), assets...),
		fallback: assets[0].Name,
		selected: assets[1].Name,
	}
}

func (s *Server[T]) Assets() []Asset[T] { return s.assets }

func (s *Server[T]) Len() int { return len(s.assets) }

func (s *Server[T]) Names() []string {
	names := make([]string, len(s.assets))
	for i, a := range s.assets {
		names[i] = a.Name
	}
	return names
}

func (s *Server[T]) Selected() string { return s.selected }

func (s *Server[T]) Default() string { return s.fallback }

func (s *Server[T]) indexOf(name string) int {
	for i, a := range s.assets {
		if a.Name == name {
			return i
		}
	}
	return -1
}

func (s *Server[T]) Get(name string) (T, bool) {
	if i := s.indexOf(name); i >= 0 {
		return s.assets[i].Value, true
	}
	var zero T
	return zero, false
}

func (s *Server[T]) mustGet(name string) T {
	v, ok := s.Get(name)
	if !ok {
		panic(fmt.Sprintf("icons: unknown asset %q", name))
	}
	return v
}

func (s *Server[T]) DefaultValue() T { return s.mustGet(s.fallback) }

func (s *Server[T]) SelectedValue() T { return s.mustGet(s.selected) }

func (s *Server[T]) SetSelected(name string) {
	s.mustGet(name)
	s.selected = name
}

func (s *Server[T]) SetDefault(name string) {
	s.mustGet(name)
	s.fallback = name
}

// cycle returns the name count steps away from name, wrapping both ways.
func (s *Server[T]) cycle(name string, count int) string {
	i := s.indexOf(name)
	if i < 0 {
		panic(fmt.Sprintf("icons: unknown asset %q", name))
	}
	n := len(s.assets)
	return s.assets[((i+count)%n+n)%n].Name
}

func (s *Server[T]) CycleSelected(count int) { s.selected = s.cycle(s.selected, count) }

func (s *Server[T]) CycleDefault(count int) { s.fallback = s.cycle(s.fallback, count) }

// Add appends an asset, or replaces the value of an existing name. It
// reports whether the name was new.
func (s *Server[T]) Add(name string, v T) bool {
	if i := s.indexOf(name); i >= 0 {
		s.assets[i].Value = v
		return false
	}
	s.assets = append(s.assets, Asset[T]{Name: name, Value: v})
	return true
}
