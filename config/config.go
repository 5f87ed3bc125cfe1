// Package config loads the editor settings from YAML. The embedded
// default.yaml is always applied first and a file on disk overrides it.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

type Config struct {
	Window   WindowConfig  `yaml:"window"`
	Grid     GridConfig    `yaml:"grid"`
	Tiles    TileConfig    `yaml:"tiles"`
	Palette  PaletteConfig `yaml:"palette"`
	Text     TextConfig    `yaml:"text"`
	SavePath string        `yaml:"save_path"`
	IconsDir string        `yaml:"icons_dir"`
	Colors   Colors        `yaml:"colors"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// GridConfig is the size of a new grid when there is no save to load.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

type TileConfig struct {
	Size    float64 `yaml:"size"`
	Spacing float64 `yaml:"spacing"`
}

type PaletteConfig struct {
	Columns  int     `yaml:"columns"`
	IconSize float64 `yaml:"icon_size"`
}

type TextConfig struct {
	Size    float64 `yaml:"size"`
	Padding float64 `yaml:"padding"`
}

type Colors struct {
	Background  Color `yaml:"background"`
	Tile        Color `yaml:"tile"`
	DefaultTile Color `yaml:"default_tile"`
	Palette     Color `yaml:"palette"`
	Selected    Color `yaml:"selected"`
	DefaultIcon Color `yaml:"default_icon"`
	Hover       Color `yaml:"hover"`
	Header      Color `yaml:"header"`
	HeaderText  Color `yaml:"header_text"`
	StatusText  Color `yaml:"status_text"`
}

// Color is a color.Color read from "#rrggbb", "#rrggbbaa" or a CSS color
// name.
type Color struct {
	color.Color
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	c.Color = parsed
	return nil
}

func (c Color) MarshalYAML() (any, error) {
	if c.Color == nil {
		return "", nil
	}
	n := color.NRGBAModel.Convert(c.Color).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B), nil
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A), nil
}

func ParseColor(v string) (color.Color, error) {
	v = strings.TrimSpace(v)
	if c, ok := colornames.Map[strings.ToLower(v)]; ok {
		return c, nil
	}
	if !strings.HasPrefix(v, "#") {
		return nil, fmt.Errorf("invalid color: %q", v)
	}
	return parseHexColor(v)
}

func parseHexColor(v string) (color.Color, error) {
	s := strings.TrimPrefix(v, "#")
	if len(s) != 6 && len(s) != 8 {
		return nil, fmt.Errorf("invalid color format: %q", v)
	}
	var out [4]uint8
	out[3] = 0xff
	for i := 0; i < len(s)/2; i++ {
		n, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid color %q: %w", v, err)
		}
		out[i] = uint8(n)
	}
	return color.NRGBA{R: out[0], G: out[1], B: out[2], A: out[3]}, nil
}

// Default returns the embedded configuration.
func Default() *Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic(fmt.Errorf("config: embedded default.yaml: %w", err))
	}
	return &cfg
}

// Load applies the file at path over the embedded defaults. A missing file
// is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	return cfg, nil
}

// Parse overlays data onto cfg. Fields that end up zero are taken from the
// embedded defaults.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	cfg.fill(Default())
	return nil
}

func (c *Config) fill(def *Config) {
	positive(&c.Window.Width, def.Window.Width)
	positive(&c.Window.Height, def.Window.Height)
	nonEmpty(&c.Window.Title, def.Window.Title)
	positive(&c.Grid.Rows, def.Grid.Rows)
	positive(&c.Grid.Cols, def.Grid.Cols)
	positive(&c.Tiles.Size, def.Tiles.Size)
	positive(&c.Palette.Columns, def.Palette.Columns)
	positive(&c.Palette.IconSize, def.Palette.IconSize)
	positive(&c.Text.Size, def.Text.Size)
	nonEmpty(&c.SavePath, def.SavePath)

	if c.Tiles.Spacing < 0 {
		c.Tiles.Spacing = def.Tiles.Spacing
	}
	if c.Text.Padding < 0 {
		c.Text.Padding = def.Text.Padding
	}

	for _, p := range []struct{ dst, src *Color }{
		{&c.Colors.Background, &def.Colors.Background},
		{&c.Colors.Tile, &def.Colors.Tile},
		{&c.Colors.DefaultTile, &def.Colors.DefaultTile},
		{&c.Colors.Palette, &def.Colors.Palette},
		{&c.Colors.Selected, &def.Colors.Selected},
		{&c.Colors.DefaultIcon, &def.Colors.DefaultIcon},
		{&c.Colors.Hover, &def.Colors.Hover},
		{&c.Colors.Header, &def.Colors.Header},
		{&c.Colors.HeaderText, &def.Colors.HeaderText},
		{&c.Colors.StatusText, &def.Colors.StatusText},
	} {
		if p.dst.Color == nil {
			*p.dst = *p.src
		}
	}
}

func positive[T int | float64](v *T, def T) {
	if *v <= 0 {
		*v = def
	}
}

func nonEmpty(v *string, def string) {
	if *v == "" {
		*v = def
	}
}
