package pixelhover

import (
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"
)

// Size is a logical (device-independent) extent.
type Size struct {
	Width, Height float64
}

// Element is the host-side region an Animator decorates.
type Element interface {
	// Bounds returns the element's current logical size.
	Bounds() Size

	// PixelRatio returns physical pixels per logical unit (1 if unknown).
	PixelRatio() float64

	// Surface returns the drawable child of the element, or nil if the
	// element has none.
	Surface() Surface

	// Observe registers o for pointer enter/leave and resize
	// notifications. The returned func unregisters it.
	Observe(o Observer) (stop func())
}

// Observer receives the host events an Animator reacts to.
type Observer interface {
	OnResize()
	OnEnter()
	OnLeave()
}

// FrameID identifies a scheduled frame callback. Zero is never issued.
type FrameID uint64

// Scheduler is a requestAnimationFrame-style callback queue.
type Scheduler interface {
	// RequestFrame runs fn once, before the next repaint.
	RequestFrame(fn func()) FrameID

	// CancelFrame drops a pending callback. Unknown IDs are ignored.
	CancelFrame(id FrameID)
}

// Animator runs the hover animation for one Element.
//
// All methods must be called from the host loop goroutine that also runs
// Scheduler callbacks.
type Animator struct {
	el    Element
	sched Scheduler
	surf  Surface
	rand  Rand
	log   *slog.Logger

	opts    options
	palette Palette
	session Session

	frame   FrameID
	running bool
	stop    func()
}

// AttachOption configures Attach beyond the hover options.
type AttachOption func(*Animator)

// WithRand sets the random source for per-cell parameters.
func WithRand(r Rand) AttachOption {
	return func(a *Animator) {
		a.rand = r
	}
}

// Attach starts observing el and lays out its cell grid.
//
// If el has no drawable surface the returned Animator is inert: it never
// schedules frames, and Update and Detach are no-ops.
func Attach(el Element, sched Scheduler, opts ...Option) *Animator {
	return AttachWith(el, sched, nil, opts...)
}

// AttachWith is Attach with additional attach-time options.
func AttachWith(el Element, sched Scheduler, attachOpts []AttachOption, opts ...Option) *Animator {
	a := &Animator{
		el:    el,
		sched: sched,
		log:   Logger().With("animator", uuid.NewString()),
	}
	for _, opt := range attachOpts {
		opt(a)
	}
	if a.rand == nil {
		a.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if el == nil || sched == nil {
		a.log.Debug("pixelhover: attach skipped, no host")
		return a
	}
	a.surf = el.Surface()
	if c, ok := a.surf.(*Canvas); ok && c == nil {
		a.surf = nil
	}
	if a.surf == nil {
		a.log.Debug("pixelhover: attach skipped, no drawable surface")
		return a
	}

	a.configure(nil, opts)
	a.stop = el.Observe(a)
	a.layout()
	a.log.Debug("pixelhover: attached", "cells", len(a.session.cells), "gap", a.opts.gap)
	return a
}

// Active reports whether the Animator is bound to a drawable surface.
func (a *Animator) Active() bool {
	return a.surf != nil
}

// Running reports whether a frame is scheduled.
func (a *Animator) Running() bool {
	return a.running
}

// Session returns the simulation state, for inspection.
func (a *Animator) Session() *Session {
	return &a.session
}

// Update replaces the hover options and relayouts the grid. A running
// loop keeps running over the new grid. Gap and speed not given revert to
// their defaults; the palette is kept unless WithColors is given.
func (a *Animator) Update(opts ...Option) {
	if !a.Active() {
		return
	}
	a.configure(a.opts.colors, opts)
	a.layout()
	a.log.Debug("pixelhover: updated", "cells", len(a.session.cells), "gap", a.opts.gap)
}

// Detach stops observing the element and cancels any pending frame.
// It is safe to call more than once.
func (a *Animator) Detach() {
	if a.stop != nil {
		a.stop()
		a.stop = nil
	}
	if a.running {
		a.sched.CancelFrame(a.frame)
		a.running = false
		a.frame = 0
	}
	if a.surf != nil {
		a.log.Debug("pixelhover: detached")
	}
	a.surf = nil
}

// OnResize implements Observer.
func (a *Animator) OnResize() {
	if a.Active() {
		a.layout()
	}
}

// OnEnter implements Observer.
func (a *Animator) OnEnter() {
	if !a.Active() {
		return
	}
	a.session.SetMode(ModeAppear)
	if !a.running {
		a.log.Debug("pixelhover: loop started")
		a.tick()
	}
}

// OnLeave implements Observer.
func (a *Animator) OnLeave() {
	if a.Active() {
		a.session.SetMode(ModeDisappear)
	}
}

func (a *Animator) configure(prevColors []string, opts []Option) {
	a.opts = resolve(prevColors, opts)
	a.palette = mustPalette(a.opts.colors)
}

// layout sizes the backing store to the element and rebuilds the grid.
func (a *Animator) layout() {
	b := a.el.Bounds()
	ratio := a.el.PixelRatio()
	if ratio <= 0 {
		ratio = 1
	}
	if err := a.surf.SetSize(int(b.Width*ratio), int(b.Height*ratio)); err != nil {
		a.log.Warn("pixelhover: surface resize failed", "err", err)
	}
	a.surf.SetScale(ratio)
	a.session.Relayout(b.Width, b.Height, a.opts.gap, a.opts.speed, a.palette, a.rand)
}

// tick draws one frame and schedules the next unless the session settled.
func (a *Animator) tick() {
	if !a.Active() {
		a.running = false
		return
	}
	more, err := a.session.Step(a.surf)
	if err != nil {
		a.log.Warn("pixelhover: fill failed", "err", err)
	}
	if !more {
		a.running = false
		a.frame = 0
		a.log.Debug("pixelhover: loop settled")
		return
	}
	a.running = true
	a.frame = a.sched.RequestFrame(a.tick)
}
