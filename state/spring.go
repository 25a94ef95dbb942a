package state

import (
	"math"
	"slices"
	"sync"

	"github.com/charmbracelet/harmonica"
)

// Spring defaults.
const (
	DefaultStiffness = 0.15
	DefaultDamping   = 0.8
	DefaultPrecision = 0.01
	DefaultFPS       = 60
)

// SpringOptions configures a Spring.
//
// Stiffness and Damping are per-frame coefficients at 60 frames per second:
// each frame the velocity changes by Stiffness×offset − Damping×velocity.
type SpringOptions struct {
	Stiffness float64
	Damping   float64
	// Precision is the offset and velocity below which the spring snaps
	// to its target and stops.
	Precision float64
	// FPS is the rate Tick is called at.
	FPS int
}

func (o SpringOptions) withDefaults() SpringOptions {
	if o.Stiffness <= 0 {
		o.Stiffness = DefaultStiffness
	}
	if o.Damping < 0 {
		o.Damping = DefaultDamping
	}
	if o.Precision <= 0 {
		o.Precision = DefaultPrecision
	}
	if o.FPS <= 0 {
		o.FPS = DefaultFPS
	}
	return o
}

// Spring animates a vector of values toward a target.
type Spring struct {
	mu        sync.Mutex
	spring    harmonica.Spring
	precision float64
	pos       []float64
	vel       []float64
	target    []float64
	settled   bool
	subs      subscribers[[]float64]
}

// NewSpring returns a spring resting at initial.
func NewSpring(initial []float64, opts SpringOptions) *Spring {
	opts = opts.withDefaults()
	// Convert per-frame coefficients to an angular frequency in rad/s and
	// a damping ratio.
	omega := math.Sqrt(opts.Stiffness) * 60
	zeta := opts.Damping / (2 * math.Sqrt(opts.Stiffness))
	return &Spring{
		spring:    harmonica.NewSpring(harmonica.FPS(opts.FPS), omega, zeta),
		precision: opts.Precision,
		pos:       slices.Clone(initial),
		vel:       make([]float64, len(initial)),
		target:    slices.Clone(initial),
		settled:   true,
	}
}

// Set moves the target. Extra values are ignored; missing ones keep their
// current target.
func (s *Spring) Set(target ...float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := min(len(target), len(s.target))
	copy(s.target, target[:n])
	s.settled = false
}

// Snap jumps to target without animating and notifies subscribers.
func (s *Spring) Snap(target ...float64) {
	s.mu.Lock()
	n := min(len(target), len(s.target))
	copy(s.target, target[:n])
	copy(s.pos, s.target)
	clear(s.vel)
	s.settled = true
	v := slices.Clone(s.pos)
	fns := s.subs.snapshot()
	s.mu.Unlock()

	for _, f := range fns {
		f(v)
	}
}

// Tick advances the spring by one frame and reports whether it is still
// moving. Subscribers are notified whenever the value changes.
func (s *Spring) Tick() bool {
	s.mu.Lock()
	if s.settled {
		s.mu.Unlock()
		return false
	}
	settled := true
	for i := range s.pos {
		s.pos[i], s.vel[i] = s.spring.Update(s.pos[i], s.vel[i], s.target[i])
		if math.Abs(s.target[i]-s.pos[i]) >= s.precision || math.Abs(s.vel[i]) >= s.precision {
			settled = false
		}
	}
	if settled {
		copy(s.pos, s.target)
		clear(s.vel)
	}
	s.settled = settled
	v := slices.Clone(s.pos)
	fns := s.subs.snapshot()
	s.mu.Unlock()

	for _, f := range fns {
		f(v)
	}
	return !settled
}

// Value returns a copy of the current values.
func (s *Spring) Value() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.pos)
}

// Target returns a copy of the current target.
func (s *Spring) Target() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.target)
}

// Settled reports whether the spring is at rest on its target.
func (s *Spring) Settled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settled
}

// Subscribe calls fn with the current value, then after every change
// until the returned func is called.
func (s *Spring) Subscribe(fn func([]float64)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.subs.add(fn)
	v := slices.Clone(s.pos)
	s.mu.Unlock()

	fn(v)
	return func() {
		s.mu.Lock()
		delete(s.subs.fns, id)
		s.mu.Unlock()
	}
}
