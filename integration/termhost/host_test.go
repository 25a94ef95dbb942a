// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package termhost

import (
	"context"
	"errors"
	"image"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/pixelhover/config"
	"github.com/gogpu/pixelhover/state"
)

func newTestHost(t *testing.T, w, h int) (*Host, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)

	host, err := New(s, config.Default())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = host.Close() })
	return host, s
}

func mouseAt(p image.Point) *tcell.EventMouse {
	return tcell.NewEventMouse(p.X, p.Y, tcell.ButtonNone, tcell.ModNone)
}

func center(r image.Rectangle) image.Point {
	return image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

func TestNewNilScreen(t *testing.T) {
	if _, err := New(nil, config.Default()); !errors.Is(err, ErrNilScreen) {
		t.Errorf("New(nil) error = %v, want ErrNilScreen", err)
	}
}

func TestLayoutCoversGrid(t *testing.T) {
	host, _ := newTestHost(t, 60, 24)
	tiles := host.Tiles()
	if len(tiles) != 9 {
		t.Fatalf("tiles = %d, want 9", len(tiles))
	}
	for i, tl := range tiles {
		if tl.Rect.Empty() {
			t.Errorf("tile %d (%s) is empty", i, tl.Label)
		}
		if tl.Rect.Min.Y < headerRows || tl.Rect.Max.Y > 24-footerRows {
			t.Errorf("tile %d rect %v overlaps header or footer", i, tl.Rect)
		}
		for j := i + 1; j < len(tiles); j++ {
			if tl.Rect.Overlaps(tiles[j].Rect) {
				t.Errorf("tiles %d and %d overlap", i, j)
			}
		}
		if !tl.Animator().Active() {
			t.Errorf("tile %d animator is inert", i)
		}
		b := tl.Bounds()
		if b.Width != float64(tl.Rect.Dx()*2) || b.Height != float64(tl.Rect.Dy()*4) {
			t.Errorf("tile %d bounds = %+v for rect %v", i, b, tl.Rect)
		}
	}
}

func TestHoverEnterLeave(t *testing.T) {
	host, _ := newTestHost(t, 60, 24)
	first, second := host.Tiles()[0], host.Tiles()[1]

	host.HandleEvent(mouseAt(center(first.Rect)))
	if !first.Hovered() || !first.Animator().Running() {
		t.Fatal("first tile should be hovered and animating")
	}
	for i := 0; i < 30; i++ {
		host.Step()
	}
	host.Draw()

	host.HandleEvent(mouseAt(center(second.Rect)))
	if first.Hovered() || !second.Hovered() {
		t.Fatal("hover did not move to the second tile")
	}
	if !first.Animator().Running() {
		t.Error("first tile should keep animating while it shrinks")
	}

	// Move off every tile and drain.
	host.HandleEvent(mouseAt(image.Pt(0, 0)))
	for i := 0; i < 200 && host.Frames().Pending() > 0; i++ {
		host.Step()
	}
	if host.Frames().Pending() != 0 {
		t.Errorf("pending frames = %d after all tiles left", host.Frames().Pending())
	}
	for _, tl := range host.Tiles() {
		if tl.Animator().Running() {
			t.Errorf("tile %s still running", tl.Label)
		}
	}
}

func TestResizeRelayoutsTiles(t *testing.T) {
	host, s := newTestHost(t, 60, 24)
	tl := host.Tiles()[0]
	before := len(tl.Animator().Session().Cells())

	s.SetSize(120, 40)
	host.HandleEvent(tcell.NewEventResize(120, 40))
	after := len(tl.Animator().Session().Cells())
	if after <= before {
		t.Errorf("cells after growing the screen = %d, want more than %d", after, before)
	}
	if w, h := tl.Canvas().Size(); w != tl.Rect.Dx()*2 || h != tl.Rect.Dy()*4 {
		t.Errorf("canvas = %dx%d for rect %v", w, h, tl.Rect)
	}
}

func TestThemeToggleUpdatesAnimators(t *testing.T) {
	host, _ := newTestHost(t, 60, 24)
	tl := host.Tiles()[0]

	host.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 't', tcell.ModNone))
	if host.Theme().Get() != state.Light {
		t.Fatalf("theme = %q, want light", host.Theme().Get())
	}
	cells := tl.Animator().Session().Cells()
	if len(cells) == 0 {
		t.Fatal("no cells")
	}
	// Light cells are dark slate, never the near-white dark-theme default.
	for _, c := range cells {
		if c.Color.R > 0.5 {
			t.Fatalf("cell color %+v is not from the light palette", c.Color)
		}
	}
}

func TestQuitKeys(t *testing.T) {
	host, _ := newTestHost(t, 40, 12)
	for _, ev := range []tcell.Event{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	} {
		if host.HandleEvent(ev) {
			t.Errorf("%T should quit", ev)
		}
	}
}

func TestDrawRendersHalfBlocks(t *testing.T) {
	host, s := newTestHost(t, 60, 24)
	tl := host.Tiles()[4]
	host.HandleEvent(mouseAt(center(tl.Rect)))
	for i := 0; i < 60; i++ {
		host.Step()
	}
	host.Draw()

	cells, w, _ := s.GetContents()
	found := false
	for y := tl.Rect.Min.Y; y < tl.Rect.Max.Y && !found; y++ {
		for x := tl.Rect.Min.X; x < tl.Rect.Max.X; x++ {
			if r := cells[y*w+x].Runes; len(r) > 0 && r[0] == halfBlock {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("no half-block cells drawn in the hovered tile")
	}
}

func TestRunStopsOnContext(t *testing.T) {
	host, _ := newTestHost(t, 40, 12)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := host.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() error = %v, want deadline exceeded", err)
	}
	_ = host.Close()
	if err := host.Run(context.Background()); !errors.Is(err, ErrClosed) {
		t.Errorf("Run() after Close error = %v, want ErrClosed", err)
	}
}
