// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package termhost

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/pixelhover"
	"github.com/gogpu/pixelhover/config"
	"github.com/gogpu/pixelhover/content"
	"github.com/gogpu/pixelhover/internal/frameloop"
	"github.com/gogpu/pixelhover/state"
)

// Common errors returned by Host.
var (
	// ErrNilScreen is returned when New is given a nil screen.
	ErrNilScreen = errors.New("termhost: nil screen")

	// ErrClosed is returned by Run after Close.
	ErrClosed = errors.New("termhost: host is closed")
)

// Rows reserved above and below the tile grid.
const (
	headerRows = 2
	footerRows = 2
)

// Host owns a tcell screen and the animators of its tiles.
//
// Host is NOT safe for concurrent use. Run processes events and frames on
// a single goroutine.
type Host struct {
	screen  tcell.Screen
	cfg     config.Config
	log     *slog.Logger
	frames  frameloop.Queue
	tiles   []*Tile
	pointer *state.Pointer
	theme   *state.Writable[state.Theme]

	bg, fg    colorful.Color
	mouse     image.Point
	unsubs    []func()
	presenter presenter
	closed    bool
}

// New sets up a host on screen, which must already be initialized.
// One tile is created per persona in content.Personas.
func New(screen tcell.Screen, cfg config.Config) (*Host, error) {
	if screen == nil {
		return nil, ErrNilScreen
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("termhost: %w", err)
	}
	h := &Host{
		screen:  screen,
		cfg:     cfg,
		log:     pixelhover.Logger().With("host", "termhost"),
		pointer: state.NewPointer(cfg.FPS),
		theme:   state.NewWritable(cfg.Theme),
		mouse:   image.Pt(-1, -1),
	}
	screen.EnableMouse(tcell.MouseMotionEvents)

	for _, p := range content.Personas {
		h.tiles = append(h.tiles, newTile(p.Label, cfg.Tiles.CellWidth, cfg.Tiles.CellHeight, cfg.PixelRatio))
	}
	h.layoutTiles()
	for _, t := range h.tiles {
		t.animator = pixelhover.Attach(t, &h.frames, cfg.HoverOptions(cfg.Theme)...)
	}

	// Subscribe delivers the current theme first, which sets the colors.
	h.unsubs = append(h.unsubs, h.theme.Subscribe(h.applyTheme))
	h.log.Debug("termhost: ready", "tiles", len(h.tiles), "theme", cfg.Theme)
	return h, nil
}

// Tiles returns the tiles in grid order.
func (h *Host) Tiles() []*Tile { return h.tiles }

// Theme returns the theme store.
func (h *Host) Theme() *state.Writable[state.Theme] { return h.theme }

// Pointer returns the pointer springs.
func (h *Host) Pointer() *state.Pointer { return h.pointer }

// Frames returns the repaint scheduler.
func (h *Host) Frames() *frameloop.Queue { return &h.frames }

// Run processes events and frames until ctx is done or the user quits.
func (h *Host) Run(ctx context.Context) error {
	if h.closed {
		return ErrClosed
	}
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(h.cfg.FPS))
	defer ticker.Stop()

	h.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !h.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			h.Step()
			h.Draw()
		}
	}
}

// Step runs one repaint: pending animator frames and the pointer springs.
func (h *Host) Step() {
	h.frames.Tick()
	h.pointer.Tick()
}

// HandleEvent applies one terminal event and reports whether the host
// should keep running.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 't':
			state.ToggleTheme(h.theme)
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		h.moveMouse(image.Pt(x, y))
	case *tcell.EventResize:
		h.screen.Sync()
		h.layoutTiles()
	}
	return true
}

// Close detaches every animator and releases the canvases. It does not
// finalize the screen, which belongs to the caller.
func (h *Host) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true
	for _, u := range h.unsubs {
		u()
	}
	var errs []error
	for _, t := range h.tiles {
		t.animator.Detach()
		errs = append(errs, t.canvas.Close())
	}
	h.log.Debug("termhost: closed", "pending_frames", h.frames.Pending())
	return errors.Join(errs...)
}

func (h *Host) moveMouse(p image.Point) {
	h.mouse = p
	w, ht := h.screen.Size()
	h.pointer.HandleGlobalMouseMove(float64(p.X), float64(p.Y), float64(w), float64(ht))

	var over *Tile
	for _, t := range h.tiles {
		if p.In(t.Rect) {
			over = t
			break
		}
	}
	h.pointer.SetToggle(toggleFor(p, w))
	// Leave before enter, as a browser orders mouseleave/mouseenter.
	for _, t := range h.tiles {
		if t != over {
			t.setHovered(false)
		}
	}
	if over != nil {
		over.setHovered(true)
	}
}

// toggleFor pulls the theme toggle (top-right corner) toward the pointer
// when it is close.
func toggleFor(p image.Point, width int) state.Toggle {
	dx := float64(width - 1 - p.X)
	dy := float64(p.Y)
	if dx*dx+dy*dy < 36 {
		return state.Toggle{Scale: 1, Opacity: 1}
	}
	return state.Toggle{Scale: 0.63, Opacity: 0.5}
}

// layoutTiles splits the screen below the header into a grid.
func (h *Host) layoutTiles() {
	w, ht := h.screen.Size()
	cols := max(1, min(h.cfg.Tiles.Columns, len(h.tiles)))
	rows := (len(h.tiles) + cols - 1) / cols
	gridH := max(0, ht-headerRows-footerRows)

	for i, t := range h.tiles {
		c, r := i%cols, i/cols
		x0, x1 := c*w/cols, (c+1)*w/cols
		y0, y1 := headerRows+r*gridH/rows, headerRows+(r+1)*gridH/rows
		t.setRect(image.Rect(x0, y0, x1, y1))
	}
	if h.mouse.X >= 0 {
		h.moveMouse(h.mouse)
	}
}

func (h *Host) applyTheme(theme state.Theme) {
	p := h.cfg.Palettes[theme]
	h.bg = mustColor(p.Background, colorful.Color{})
	h.fg = mustColor(p.Foreground, colorful.Color{R: 1, G: 1, B: 1})
	for _, t := range h.tiles {
		t.animator.Update(h.cfg.HoverOptions(theme)...)
	}
	h.log.Debug("termhost: theme applied", "theme", theme)
}

func mustColor(hex string, fallback colorful.Color) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	return c
}
