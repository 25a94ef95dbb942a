package state

// Point is a normalized viewport position; (0, 0) is the center and
// each axis spans [-0.5, 0.5].
type Point struct {
	X, Y float64
}

// Toggle is the scale and opacity of the theme toggle button.
type Toggle struct {
	Scale, Opacity float64
}

// Pointer holds the spring-animated values driven by the global pointer:
// the parallax cursor and the theme toggle's magnetic response.
type Pointer struct {
	// Coords follows the pointer. It starts at the north-east corner.
	Coords *Spring
	// Toggle animates the theme toggle button.
	Toggle *Spring
}

// NewPointer returns the pointer springs ticked at fps frames per second.
func NewPointer(fps int) *Pointer {
	return &Pointer{
		Coords: NewSpring([]float64{0.5, -0.5}, SpringOptions{Stiffness: 0.05, Damping: 0.25, FPS: fps}),
		Toggle: NewSpring([]float64{0.63, 0.5}, SpringOptions{Stiffness: 0.1, Damping: 0.25, FPS: fps}),
	}
}

// HandleGlobalMouseMove retargets Coords to the pointer at (x, y) in a
// viewport of the given size. Empty viewports are ignored.
func (p *Pointer) HandleGlobalMouseMove(x, y, viewWidth, viewHeight float64) {
	if viewWidth <= 0 || viewHeight <= 0 {
		return
	}
	p.Coords.Set(x/viewWidth-0.5, y/viewHeight-0.5)
}

// SetToggle retargets the toggle spring.
func (p *Pointer) SetToggle(t Toggle) {
	p.Toggle.Set(t.Scale, t.Opacity)
}

// Cursor returns the current animated cursor position.
func (p *Pointer) Cursor() Point {
	v := p.Coords.Value()
	return Point{X: v[0], Y: v[1]}
}

// ToggleState returns the current animated toggle state.
func (p *Pointer) ToggleState() Toggle {
	v := p.Toggle.Value()
	return Toggle{Scale: v[0], Opacity: v[1]}
}

// Tick advances both springs by one frame and reports whether either is
// still moving.
func (p *Pointer) Tick() bool {
	a := p.Coords.Tick()
	b := p.Toggle.Tick()
	return a || b
}
