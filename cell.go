package pixelhover

import (
	"math"

	"github.com/gogpu/gg"
)

// Per-cell constants.
const (
	// MinSize is the shimmer floor.
	MinSize = 0.5

	// ShrinkStep is the size lost per disappear frame.
	ShrinkStep = 0.1
)

// Phase is the discrete animation state of a Cell.
type Phase uint8

const (
	// PhaseIdle: not growing and not drawn.
	PhaseIdle Phase = iota
	// PhaseGrowing: delay elapsed, size increasing toward MaxSize.
	PhaseGrowing
	// PhaseShimmering: oscillating between MinSize and MaxSize.
	PhaseShimmering
	// PhaseShrinking: pointer left, size decreasing toward zero.
	PhaseShrinking
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseGrowing:
		return "Growing"
	case PhaseShimmering:
		return "Shimmering"
	case PhaseShrinking:
		return "Shrinking"
	default:
		return "Unknown"
	}
}

// Rand is the random source used for per-cell parameters.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// Cell is one animated square of the hover grid.
//
// Cells are plain values: Appear and Disappear return the next state
// without side effects, so a frame can be replayed deterministically.
type Cell struct {
	X, Y  float64
	Color gg.RGBA

	Size    float64
	MaxSize float64

	// Speed is the shimmer increment per frame.
	Speed float64
	// SizeStep is the growth increment per frame.
	SizeStep float64

	// Delay is the counter threshold before growth starts.
	Delay float64
	// Counter accumulates CounterStep each appear frame until it passes Delay.
	Counter     float64
	CounterStep float64

	Phase Phase

	// reverse is the shimmer direction: true while shrinking toward MinSize.
	reverse bool
}

// newCell samples the randomized parameters of a cell at (x, y) inside
// a width×height region. Draw order matters for reproducible tests.
func newCell(x, y, width, height float64, color gg.RGBA, speed float64, r Rand) Cell {
	dx := x - width/2
	dy := y - height/2
	return Cell{
		X:           x,
		Y:           y,
		Color:       color,
		Speed:       (r.Float64()*0.8 + 0.1) * speed,
		SizeStep:    r.Float64() * 0.4,
		MaxSize:     r.Float64()*(2-MinSize) + MinSize,
		Delay:       math.Sqrt(dx*dx + dy*dy),
		CounterStep: r.Float64()*4 + (width+height)*0.01,
	}
}

// Idle reports whether the cell has settled and will not change until the
// next appear frame.
func (c Cell) Idle() bool {
	return c.Phase == PhaseIdle
}

// Visible reports whether the cell is drawn this frame.
func (c Cell) Visible() bool {
	return c.Phase != PhaseIdle && c.Size > 0
}

// Rect returns the square to fill, centered on the cell's grid point.
func (c Cell) Rect() (x, y, w, h float64) {
	offset := 1 - c.Size*0.5
	return c.X + offset, c.Y + offset, c.Size, c.Size
}

// Appear advances c by one frame while the pointer is over the element.
//
// Until Counter passes Delay the cell only counts and is not drawn, which
// staggers growth outward from the center. After that the cell grows by
// SizeStep up to MaxSize and then shimmers between MinSize and MaxSize.
// The shimmer reverses only once a bound is crossed, so it may overshoot
// either bound by one Speed increment.
func Appear(c Cell) Cell {
	if c.Counter <= c.Delay {
		c.Counter += c.CounterStep
		c.Phase = PhaseIdle
		return c
	}
	if c.Size >= c.MaxSize {
		c.Phase = PhaseShimmering
	}
	if c.Phase == PhaseShimmering {
		return shimmer(c)
	}
	c.Phase = PhaseGrowing
	c.Size = math.Min(c.Size+c.SizeStep, c.MaxSize)
	return c
}

func shimmer(c Cell) Cell {
	if c.Size >= c.MaxSize {
		c.reverse = true
	} else if c.Size <= MinSize {
		c.reverse = false
	}
	if c.reverse {
		c.Size = math.Max(c.Size-c.Speed, 0)
	} else {
		c.Size += c.Speed
	}
	return c
}

// Disappear advances c by one frame after the pointer has left.
// The cell drops out of shimmer, resets its counter and shrinks by
// ShrinkStep per frame; it becomes Idle on the frame after reaching zero.
func Disappear(c Cell) Cell {
	c.Counter = 0
	if c.Size <= 0 {
		c.Size = 0
		c.Phase = PhaseIdle
		return c
	}
	c.Phase = PhaseShrinking
	c.Size = math.Max(c.Size-ShrinkStep, 0)
	return c
}
