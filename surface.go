package pixelhover

import (
	"errors"
	"image"

	"github.com/gogpu/gg"
)

// Surface is the drawable raster an Animator paints its cells onto.
//
// Coordinates passed to FillRect are logical units; the surface maps them
// to physical pixels using the ratio given to SetScale.
type Surface interface {
	// SetSize resizes the backing store to width×height physical pixels.
	// A zero dimension leaves the surface empty.
	SetSize(width, height int) error

	// SetScale replaces the drawing transform with a uniform scale.
	SetScale(ratio float64)

	// Clear makes the whole surface transparent.
	Clear()

	// FillRect fills an axis-aligned rectangle with c.
	FillRect(x, y, w, h float64, c gg.RGBA) error
}

// ErrNilCanvas is returned by SetSize on a nil *Canvas.
var ErrNilCanvas = errors.New("pixelhover: nil canvas")

// Canvas is a Surface backed by a gg.Context. Methods on a nil *Canvas
// are no-ops.
//
// Canvas is NOT safe for concurrent use; it belongs to the host loop that
// drives its Animator.
type Canvas struct {
	dc    *gg.Context
	scale float64
}

var _ Surface = (*Canvas)(nil)

// NewCanvas returns an empty Canvas. The backing store is allocated by the
// first SetSize with non-zero dimensions.
func NewCanvas() *Canvas {
	return &Canvas{scale: 1}
}

// SetSize implements Surface.
func (c *Canvas) SetSize(width, height int) error {
	if c == nil {
		return ErrNilCanvas
	}
	if width <= 0 || height <= 0 {
		if c.dc != nil {
			_ = c.dc.Close()
			c.dc = nil
		}
		return nil
	}
	if c.dc == nil {
		c.dc = gg.NewContext(width, height)
		c.dc.SetTransform(gg.Scale(c.scale, c.scale))
		return nil
	}
	return c.dc.Resize(width, height)
}

// SetScale implements Surface.
func (c *Canvas) SetScale(ratio float64) {
	if c == nil {
		return
	}
	if ratio <= 0 {
		ratio = 1
	}
	c.scale = ratio
	if c.dc != nil {
		c.dc.SetTransform(gg.Scale(ratio, ratio))
	}
}

// Clear implements Surface.
func (c *Canvas) Clear() {
	if c != nil && c.dc != nil {
		c.dc.Clear()
	}
}

// FillRect implements Surface.
func (c *Canvas) FillRect(x, y, w, h float64, col gg.RGBA) error {
	if c == nil || c.dc == nil || w <= 0 || h <= 0 {
		return nil
	}
	c.dc.SetColor(col.Color())
	c.dc.DrawRectangle(x, y, w, h)
	return c.dc.Fill()
}

// Size returns the backing store size in physical pixels.
func (c *Canvas) Size() (width, height int) {
	if c == nil || c.dc == nil {
		return 0, 0
	}
	return c.dc.Width(), c.dc.Height()
}

// Image returns the backing store contents, or nil while the canvas is empty.
func (c *Canvas) Image() image.Image {
	if c == nil || c.dc == nil {
		return nil
	}
	return c.dc.Image()
}

// Context exposes the underlying gg.Context for hosts that draw their own
// decorations (captions, borders) after a frame. It is nil while empty.
func (c *Canvas) Context() *gg.Context {
	if c == nil {
		return nil
	}
	return c.dc
}

// Close releases the backing store.
func (c *Canvas) Close() error {
	if c == nil || c.dc == nil {
		return nil
	}
	err := c.dc.Close()
	c.dc = nil
	return err
}
