// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package termhost

import (
	"image"

	"github.com/gogpu/pixelhover"
)

// Tile is a rectangular screen region decorated by one animator.
// It implements pixelhover.Element.
type Tile struct {
	Label string

	// Rect is the tile in terminal cells.
	Rect image.Rectangle

	cellW, cellH float64
	ratio        float64
	canvas       *pixelhover.Canvas
	observers    map[int]pixelhover.Observer
	nextID       int
	hovered      bool
	animator     *pixelhover.Animator
}

var _ pixelhover.Element = (*Tile)(nil)

func newTile(label string, cellW, cellH int, ratio float64) *Tile {
	return &Tile{
		Label:     label,
		cellW:     float64(cellW),
		cellH:     float64(cellH),
		ratio:     ratio,
		canvas:    pixelhover.NewCanvas(),
		observers: map[int]pixelhover.Observer{},
	}
}

// Bounds implements pixelhover.Element.
func (t *Tile) Bounds() pixelhover.Size {
	return pixelhover.Size{
		Width:  float64(t.Rect.Dx()) * t.cellW,
		Height: float64(t.Rect.Dy()) * t.cellH,
	}
}

// PixelRatio implements pixelhover.Element.
func (t *Tile) PixelRatio() float64 { return t.ratio }

// Surface implements pixelhover.Element.
func (t *Tile) Surface() pixelhover.Surface { return t.canvas }

// Observe implements pixelhover.Element.
func (t *Tile) Observe(o pixelhover.Observer) func() {
	id := t.nextID
	t.nextID++
	t.observers[id] = o
	return func() { delete(t.observers, id) }
}

// Hovered reports whether the pointer is over the tile.
func (t *Tile) Hovered() bool { return t.hovered }

// Animator returns the tile's animator.
func (t *Tile) Animator() *pixelhover.Animator { return t.animator }

// Canvas returns the tile's drawable surface.
func (t *Tile) Canvas() *pixelhover.Canvas { return t.canvas }

func (t *Tile) setRect(r image.Rectangle) {
	if r == t.Rect {
		return
	}
	t.Rect = r
	for _, o := range t.observers {
		o.OnResize()
	}
}

func (t *Tile) setHovered(h bool) {
	if h == t.hovered {
		return
	}
	t.hovered = h
	for _, o := range t.observers {
		if h {
			o.OnEnter()
		} else {
			o.OnLeave()
		}
	}
}
