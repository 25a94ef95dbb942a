package pixelhover

// Default hover configuration.
const (
	DefaultGap   = 6.0
	DefaultSpeed = 0.035
)

// DefaultColors is the palette used when none is configured: a single
// near-white.
var DefaultColors = []string{"#f8fafc"}

// Option configures an Animator at Attach or Update time.
//
// Example:
//
//	a := pixelhover.Attach(el, sched,
//	    pixelhover.WithGap(8),
//	    pixelhover.WithColors("#e0f2fe", "#7dd3fc", "#0ea5e9"),
//	)
type Option func(*options)

// options holds the hover configuration. A zero gap or speed means
// "not set" and resolves to the default.
type options struct {
	gap    float64
	speed  float64
	colors []string
}

// WithGap sets the spacing between grid points in logical units.
// Non-positive values select DefaultGap.
func WithGap(gap float64) Option {
	return func(o *options) {
		o.gap = gap
	}
}

// WithSpeed sets the base shimmer speed multiplier.
// Non-positive values select DefaultSpeed.
func WithSpeed(speed float64) Option {
	return func(o *options) {
		o.speed = speed
	}
}

// WithColors sets the palette each cell samples its color from.
// Entries are CSS-style hex strings ("#rgb", "#rrggbb").
func WithColors(colors ...string) Option {
	return func(o *options) {
		o.colors = append([]string(nil), colors...)
	}
}

// resolve applies opts over an empty configuration and fills defaults.
// prevColors is kept when opts do not name a palette, so that Update
// without WithColors preserves the current palette.
func resolve(prevColors []string, opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.gap <= 0 {
		o.gap = DefaultGap
	}
	if o.speed <= 0 {
		o.speed = DefaultSpeed
	}
	if len(o.colors) == 0 {
		o.colors = prevColors
	}
	if len(o.colors) == 0 {
		o.colors = DefaultColors
	}
	return o
}
