// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package termhost

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/pixelhover/content"
)

const halfBlock = '▀'

// presenter converts tile canvases to terminal cells. It keeps a scratch
// image between frames.
type presenter struct {
	scratch *image.RGBA
	upper   cases.Caser
	ready   bool
}

// sample reduces src to cols×rows*2 samples.
func (p *presenter) sample(src image.Image, cols, rows int) *image.RGBA {
	r := image.Rect(0, 0, cols, rows*2)
	if p.scratch == nil || p.scratch.Bounds() != r {
		p.scratch = image.NewRGBA(r)
	}
	draw.BiLinear.Scale(p.scratch, r, src, src.Bounds(), draw.Src, nil)
	return p.scratch
}

func (p *presenter) label(s string) string {
	if !p.ready {
		p.upper = cases.Upper(language.English)
		p.ready = true
	}
	return p.upper.String(s)
}

// over composites a premultiplied sample onto an opaque background.
func over(bg colorful.Color, px color.RGBA) colorful.Color {
	if px.A == 0 {
		return bg
	}
	a := float64(px.A) / 255
	fg := colorful.Color{
		R: float64(px.R) / float64(px.A),
		G: float64(px.G) / float64(px.A),
		B: float64(px.B) / float64(px.A),
	}
	return bg.BlendRgb(fg, a).Clamped()
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Draw renders the whole screen and shows it.
func (h *Host) Draw() {
	s := h.screen
	base := tcell.StyleDefault.Background(toTcell(h.bg)).Foreground(toTcell(h.fg))
	s.Fill(' ', base)

	w, ht := s.Size()
	top := content.Narrative["top"]
	drawCentered(s, 0, w, 0, top[0].Text+" "+top[1].Text, base.Bold(true))

	for _, t := range h.tiles {
		h.drawTile(t, base)
	}
	h.drawFooter(w, ht, base)
	h.drawCursor(w, ht, base)
	s.Show()
}

func (h *Host) drawTile(t *Tile, base tcell.Style) {
	cols, rows := t.Rect.Dx(), t.Rect.Dy()
	if cols <= 0 || rows <= 0 {
		return
	}
	if img := t.canvas.Image(); img != nil {
		px := h.presenter.sample(img, cols, rows)
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				hi, lo := px.RGBAAt(x, 2*y), px.RGBAAt(x, 2*y+1)
				if hi.A == 0 && lo.A == 0 {
					continue
				}
				st := tcell.StyleDefault.
					Foreground(toTcell(over(h.bg, hi))).
					Background(toTcell(over(h.bg, lo)))
				h.screen.SetContent(t.Rect.Min.X+x, t.Rect.Min.Y+y, halfBlock, nil, st)
			}
		}
	}
	st := base
	if t.hovered {
		st = st.Bold(true)
	} else {
		st = st.Dim(true)
	}
	drawCentered(h.screen, t.Rect.Min.X, t.Rect.Max.X, t.Rect.Min.Y+rows/2, h.presenter.label(t.Label), st)
}

func (h *Host) drawFooter(w, ht int, base tcell.Style) {
	y := ht - 1
	if y < headerRows {
		return
	}
	msg := "hover a tile · t: theme · q: quit"
	for _, t := range h.tiles {
		if t.hovered {
			msg = content.Introduce(content.Persona{Label: t.Label})
			break
		}
	}
	drawText(h.screen, 1, y, msg, base)

	tg := h.pointer.ToggleState()
	toggle := fmt.Sprintf("◐ %s", h.theme.Get())
	st := base.Foreground(toTcell(h.bg.BlendRgb(h.fg, tg.Opacity)))
	if tg.Scale > 0.8 {
		st = st.Bold(true)
	}
	drawText(h.screen, w-len([]rune(toggle))-1, y, toggle, st)
}

// drawCursor marks the spring-smoothed pointer position.
func (h *Host) drawCursor(w, ht int, base tcell.Style) {
	c := h.pointer.Cursor()
	x := int((c.X + 0.5) * float64(w))
	y := int((c.Y + 0.5) * float64(ht))
	if x < 0 || x >= w || y < 0 || y >= ht {
		return
	}
	mainc, combc, st, _ := h.screen.GetContent(x, y)
	if mainc == ' ' {
		mainc, combc, st = '·', nil, base
	}
	h.screen.SetContent(x, y, mainc, combc, st.Reverse(true))
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, st)
		x++
	}
}

func drawCentered(s tcell.Screen, x0, x1, y int, text string, st tcell.Style) {
	n := len([]rune(text))
	if n > x1-x0 {
		text = string([]rune(text)[:max(0, x1-x0)])
		n = x1 - x0
	}
	drawText(s, x0+(x1-x0-n)/2, y, text, st)
}
