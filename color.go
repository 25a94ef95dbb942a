package pixelhover

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned by ParsePalette for entries that are not hex colors.
var ErrInvalidColor = errors.New("pixelhover: invalid color")

// Palette is the set of colors cells sample from at layout time.
type Palette []gg.RGBA

// ParsePalette parses hex color strings into a Palette.
// Invalid entries are skipped; the returned error joins one
// ErrInvalidColor per skipped entry and is nil when all entries parse.
func ParsePalette(colors []string) (Palette, error) {
	p := make(Palette, 0, len(colors))
	var errs []error
	for _, s := range colors {
		c, err := colorful.Hex(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidColor, s))
			continue
		}
		p = append(p, gg.RGB(c.R, c.G, c.B))
	}
	return p, errors.Join(errs...)
}

// mustPalette parses colors, logging rejected entries, and falls back to
// DefaultColors when nothing usable remains.
func mustPalette(colors []string) Palette {
	p, err := ParsePalette(colors)
	if err != nil {
		Logger().Warn("pixelhover: palette entries skipped", "err", err)
	}
	if len(p) == 0 {
		p, _ = ParsePalette(DefaultColors)
	}
	return p
}

// pick samples a palette entry uniformly.
func (p Palette) pick(r Rand) gg.RGBA {
	i := int(r.Float64() * float64(len(p)))
	if i >= len(p) {
		i = len(p) - 1
	}
	return p[i]
}
