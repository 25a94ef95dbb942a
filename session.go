package pixelhover

import "errors"

// Mode selects which per-cell step a frame applies.
type Mode uint8

const (
	// ModeDisappear shrinks cells toward Idle. It is the initial mode.
	ModeDisappear Mode = iota
	// ModeAppear grows and shimmers cells while the pointer is inside.
	ModeAppear
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeAppear {
		return "appear"
	}
	return "disappear"
}

// Layout walks a regular grid over a width×height region and returns one
// freshly sampled Cell per grid point, column by column.
// The grid has ceil(width/gap) × ceil(height/gap) points; an empty region
// or a non-positive gap yields no cells.
func Layout(width, height, gap, speed float64, palette Palette, r Rand) []Cell {
	if gap <= 0 || width <= 0 || height <= 0 || len(palette) == 0 {
		return nil
	}
	cells := make([]Cell, 0, gridPoints(width, gap)*gridPoints(height, gap))
	for x := 0.0; x < width; x += gap {
		for y := 0.0; y < height; y += gap {
			color := palette.pick(r)
			cells = append(cells, newCell(x, y, width, height, color, speed, r))
		}
	}
	return cells
}

func gridPoints(extent, gap float64) int {
	n := 0
	for v := 0.0; v < extent; v += gap {
		n++
	}
	return n
}

// Session is the simulation state of one hovered element: its cell grid
// and the current mode. It has no knowledge of the host; Animator drives
// it from a frame scheduler.
type Session struct {
	cells  []Cell
	mode   Mode
	width  float64
	height float64
}

// Relayout discards the current cells and lays out a new grid.
func (s *Session) Relayout(width, height, gap, speed float64, palette Palette, r Rand) {
	s.width, s.height = width, height
	s.cells = Layout(width, height, gap, speed, palette, r)
}

// SetMode switches between appear and disappear frames.
func (s *Session) SetMode(m Mode) { s.mode = m }

// Mode returns the current mode.
func (s *Session) Mode() Mode { return s.mode }

// Cells returns the current grid. The slice is owned by the session.
func (s *Session) Cells() []Cell { return s.cells }

// Settled reports whether every cell is Idle.
func (s *Session) Settled() bool {
	for i := range s.cells {
		if !s.cells[i].Idle() {
			return false
		}
	}
	return true
}

// Step advances every cell by one frame and, if dst is non-nil, clears it
// and redraws the visible cells. It reports whether another frame is
// needed: false only in disappear mode once every cell is Idle. Fill
// failures do not stop the frame; they are joined into the returned error.
func (s *Session) Step(dst Surface) (bool, error) {
	var errs []error
	if dst != nil {
		dst.Clear()
	}
	step := Disappear
	if s.mode == ModeAppear {
		step = Appear
	}
	for i := range s.cells {
		c := step(s.cells[i])
		s.cells[i] = c
		if dst == nil || !c.Visible() {
			continue
		}
		x, y, w, h := c.Rect()
		if err := dst.FillRect(x, y, w, h, c.Color); err != nil {
			errs = append(errs, err)
		}
	}
	return s.mode == ModeAppear || !s.Settled(), errors.Join(errs...)
}
