// Package config loads host configuration from HCL.
//
// A file looks like:
//
//	theme       = "dark"
//	fps         = 60
//	pixel_ratio = 2
//
//	hover {
//	  gap    = 6
//	  speed  = 0.035
//	  colors = palette.sky
//	}
//
//	palette "light" {
//	  background = "#f8fafc"
//	  foreground = "#0f172a"
//	  cells      = ["#0f172a", "#334155"]
//	}
//
//	tiles {
//	  columns     = 3
//	  cell_width  = 2
//	  cell_height = 4
//	}
//
// Expressions may reference the built-in palettes as palette.<name>; see
// BuiltinPalettes.
package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/gogpu/pixelhover"
	"github.com/gogpu/pixelhover/state"
)

// Common errors returned by Load and Parse.
var (
	ErrParse        = errors.New("config: parse failed")
	ErrInvalidTheme = errors.New("config: invalid theme")
	ErrInvalidValue = errors.New("config: invalid value")
)

// BuiltinPalettes are exposed to expressions as palette.<name>.
var BuiltinPalettes = map[string][]string{
	"snow":    {"#f8fafc"},
	"slate":   {"#e2e8f0", "#cbd5e1", "#94a3b8"},
	"sky":     {"#e0f2fe", "#7dd3fc", "#0ea5e9"},
	"emerald": {"#d1fae5", "#6ee7b7", "#10b981"},
	"rose":    {"#ffe4e6", "#fda4af", "#f43f5e"},
}

// Hover is the animator configuration. Zero values select the animator
// defaults.
type Hover struct {
	Gap    float64
	Speed  float64
	Colors []string
}

// Palette is the color scheme of one theme.
type Palette struct {
	Background string
	Foreground string
	// Cells is the hover palette used when Hover.Colors is empty.
	Cells []string
}

// Tiles describes the host grid geometry.
type Tiles struct {
	Columns int
	// CellWidth and CellHeight are the logical size of one terminal cell.
	// Each cell shows two vertically stacked samples, so a 1:2 ratio keeps
	// samples square.
	CellWidth  int
	CellHeight int
}

// Config is a decoded and validated configuration.
type Config struct {
	Theme      state.Theme
	FPS        int
	PixelRatio float64
	Hover      Hover
	Palettes   map[state.Theme]Palette
	Tiles      Tiles
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Theme:      state.Dark,
		FPS:        60,
		PixelRatio: 1,
		Palettes: map[state.Theme]Palette{
			state.Dark: {
				Background: "#020617",
				Foreground: "#f8fafc",
				Cells:      pixelhover.DefaultColors,
			},
			state.Light: {
				Background: "#f8fafc",
				Foreground: "#0f172a",
				Cells:      []string{"#0f172a", "#334155", "#64748b"},
			},
		},
		Tiles: Tiles{Columns: 3, CellWidth: 2, CellHeight: 4},
	}
}

// Colors returns the hover palette for theme: Hover.Colors when set,
// otherwise the theme palette's cells.
func (c Config) Colors(theme state.Theme) []string {
	if len(c.Hover.Colors) > 0 {
		return c.Hover.Colors
	}
	return c.Palettes[theme].Cells
}

// HoverOptions returns the animator options for theme.
func (c Config) HoverOptions(theme state.Theme) []pixelhover.Option {
	return []pixelhover.Option{
		pixelhover.WithGap(c.Hover.Gap),
		pixelhover.WithSpeed(c.Hover.Speed),
		pixelhover.WithColors(c.Colors(theme)...),
	}
}

type fileSchema struct {
	Theme      string          `hcl:"theme,optional"`
	FPS        int             `hcl:"fps,optional"`
	PixelRatio float64         `hcl:"pixel_ratio,optional"`
	Hover      *hoverSchema    `hcl:"hover,block"`
	Palettes   []paletteSchema `hcl:"palette,block"`
	Tiles      *tilesSchema    `hcl:"tiles,block"`
}

type hoverSchema struct {
	Gap    float64  `hcl:"gap,optional"`
	Speed  float64  `hcl:"speed,optional"`
	Colors []string `hcl:"colors,optional"`
}

type paletteSchema struct {
	Theme      string   `hcl:"theme,label"`
	Background string   `hcl:"background"`
	Foreground string   `hcl:"foreground,optional"`
	Cells      []string `hcl:"cells,optional"`
}

type tilesSchema struct {
	Columns    int `hcl:"columns,optional"`
	CellWidth  int `hcl:"cell_width,optional"`
	CellHeight int `hcl:"cell_height,optional"`
}

// Load parses and validates the HCL file at path.
func Load(path string) (Config, error) {
	pixelhover.Logger().Debug("config: loading", "path", path)
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("%w: %s: %s", ErrParse, path, diags.Error())
	}
	return decode(file, path)
}

// Parse parses and validates HCL source. filename is used in diagnostics.
func Parse(src []byte, filename string) (Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("%w: %s: %s", ErrParse, filename, diags.Error())
	}
	return decode(file, filename)
}

func decode(file *hcl.File, name string) (Config, error) {
	var raw fileSchema
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &raw); diags.HasErrors() {
		return Config{}, fmt.Errorf("%w: %s: %s", ErrParse, name, diags.Error())
	}

	cfg := Default()
	if raw.Theme != "" {
		cfg.Theme = state.Theme(raw.Theme)
	}
	if raw.FPS != 0 {
		cfg.FPS = raw.FPS
	}
	if raw.PixelRatio != 0 {
		cfg.PixelRatio = raw.PixelRatio
	}
	if raw.Hover != nil {
		cfg.Hover = Hover{Gap: raw.Hover.Gap, Speed: raw.Hover.Speed, Colors: raw.Hover.Colors}
	}
	for _, p := range raw.Palettes {
		cur := cfg.Palettes[state.Theme(p.Theme)]
		cur.Background = p.Background
		if p.Foreground != "" {
			cur.Foreground = p.Foreground
		}
		if len(p.Cells) > 0 {
			cur.Cells = p.Cells
		}
		cfg.Palettes[state.Theme(p.Theme)] = cur
	}
	if raw.Tiles != nil {
		if raw.Tiles.Columns != 0 {
			cfg.Tiles.Columns = raw.Tiles.Columns
		}
		if raw.Tiles.CellWidth != 0 {
			cfg.Tiles.CellWidth = raw.Tiles.CellWidth
		}
		if raw.Tiles.CellHeight != 0 {
			cfg.Tiles.CellHeight = raw.Tiles.CellHeight
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", name, err)
	}
	pixelhover.Logger().Debug("config: loaded", "name", name, "theme", cfg.Theme, "palettes", len(cfg.Palettes))
	return cfg, nil
}

// Validate checks ranges and colors.
func (c Config) Validate() error {
	var errs []error
	for theme := range c.Palettes {
		if theme != state.Dark && theme != state.Light {
			errs = append(errs, fmt.Errorf("%w: palette %q", ErrInvalidTheme, theme))
		}
	}
	if c.Theme != state.Dark && c.Theme != state.Light {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidTheme, c.Theme))
	}
	if c.FPS < 1 || c.FPS > 240 {
		errs = append(errs, fmt.Errorf("%w: fps %d outside [1, 240]", ErrInvalidValue, c.FPS))
	}
	if c.PixelRatio <= 0 {
		errs = append(errs, fmt.Errorf("%w: pixel_ratio %v", ErrInvalidValue, c.PixelRatio))
	}
	if c.Hover.Gap < 0 || c.Hover.Speed < 0 {
		errs = append(errs, fmt.Errorf("%w: negative hover gap or speed", ErrInvalidValue))
	}
	if c.Tiles.Columns < 1 || c.Tiles.CellWidth < 1 || c.Tiles.CellHeight < 1 {
		errs = append(errs, fmt.Errorf("%w: tiles must be positive", ErrInvalidValue))
	}
	if _, err := pixelhover.ParsePalette(c.Hover.Colors); err != nil {
		errs = append(errs, err)
	}
	for _, p := range c.Palettes {
		colors := append([]string{p.Background}, p.Cells...)
		if p.Foreground != "" {
			colors = append(colors, p.Foreground)
		}
		if _, err := pixelhover.ParsePalette(colors); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// evalContext exposes BuiltinPalettes as the palette object.
func evalContext() *hcl.EvalContext {
	palettes := make(map[string]cty.Value, len(BuiltinPalettes))
	for name, colors := range BuiltinPalettes {
		vals := make([]cty.Value, 0, len(colors))
		for _, c := range colors {
			vals = append(vals, cty.StringVal(c))
		}
		palettes[name] = cty.ListVal(vals)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"palette": cty.ObjectVal(palettes),
		},
	}
}
