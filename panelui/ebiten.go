package panelui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// NewGoRegularSource loads the embedded Go Regular font.
func NewGoRegularSource() (*text.GoTextFaceSource, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("panelui: load goregular: %w", err)
	}
	return s, nil
}

// GoTextMeasurer measures strings with a text/v2 face source.
type GoTextMeasurer struct {
	Source *text.GoTextFaceSource
}

func (m GoTextMeasurer) MeasureText(s string, size float64) float64 {
	w, _ := text.Measure(s, &text.GoTextFace{Source: m.Source, Size: size}, 0)
	return w
}

// EbitenSurface draws panels onto an ebiten image.
type EbitenSurface struct {
	Target *ebiten.Image
	Source *text.GoTextFaceSource
}

func NewEbitenSurface(target *ebiten.Image, source *text.GoTextFaceSource) *EbitenSurface {
	return &EbitenSurface{Target: target, Source: source}
}

func (s *EbitenSurface) FillRect(r Rect, c color.Color) {
	if c == nil || r.Width <= 0 || r.Height <= 0 {
		return
	}
	vector.FillRect(s.Target, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c, false)
}

func (s *EbitenSurface) DrawText(str string, at Point, size float64, c color.Color) {
	if s.Source == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(at.X, at.Y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.Target, str, &text.GoTextFace{Source: s.Source, Size: size}, op)
}

func (s *EbitenSurface) DrawImage(img *ebiten.Image, r Rect) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width/float64(b.Dx()), r.Height/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	op.Filter = ebiten.FilterNearest
	s.Target.DrawImage(img, op)
}

// MouseTracker builds MouseState snapshots from ebiten input.
type MouseTracker struct {
	last   Point
	primed bool
}

// Snapshot reads the pointer for the current tick. Call it once per Update.
func (t *MouseTracker) Snapshot() MouseState {
	x, y := ebiten.CursorPosition()
	pos := Point{X: float64(x), Y: float64(y)}

	var delta Point
	if t.primed {
		delta = pos.Sub(t.last)
	}
	t.last = pos
	t.primed = true

	return MouseState{
		Position:     pos,
		Delta:        delta,
		LeftPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		LeftReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		RightPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
	}
}
