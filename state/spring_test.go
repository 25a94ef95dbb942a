package state

import (
	"math"
	"testing"
)

func tickUntilSettled(t *testing.T, s interface{ Tick() bool }, max int) int {
	t.Helper()
	for i := 1; i <= max; i++ {
		if !s.Tick() {
			return i
		}
	}
	t.Fatalf("spring still moving after %d frames", max)
	return 0
}

func TestSpringSettlesOnTarget(t *testing.T) {
	s := NewSpring([]float64{0, 0}, SpringOptions{Stiffness: 0.05, Damping: 0.25})
	if !s.Settled() || s.Tick() {
		t.Fatal("new spring should be at rest")
	}

	s.Set(1, -2)
	tickUntilSettled(t, s, 1000)
	v := s.Value()
	if v[0] != 1 || v[1] != -2 {
		t.Errorf("Value() = %v, want [1 -2]", v)
	}
}

func TestSpringMovesTowardTarget(t *testing.T) {
	s := NewSpring([]float64{0}, SpringOptions{Stiffness: 0.1, Damping: 0.25})
	s.Set(1)
	s.Tick()
	first := s.Value()[0]
	if first <= 0 || first >= 1 {
		t.Errorf("after one frame value = %v, want in (0, 1)", first)
	}
}

func TestSpringSetPartial(t *testing.T) {
	s := NewSpring([]float64{1, 2, 3}, SpringOptions{})
	s.Set(5)
	tg := s.Target()
	if tg[0] != 5 || tg[1] != 2 || tg[2] != 3 {
		t.Errorf("Target() = %v, want [5 2 3]", tg)
	}
	s.Set(7, 8, 9, 10)
	if tg = s.Target(); tg[2] != 9 {
		t.Errorf("Target() = %v, want [7 8 9]", tg)
	}
}

func TestSpringSnapAndSubscribe(t *testing.T) {
	s := NewSpring([]float64{0}, SpringOptions{})
	var last []float64
	calls := 0
	unsub := s.Subscribe(func(v []float64) { last = v; calls++ })
	if calls != 1 || last[0] != 0 {
		t.Fatalf("subscribe should deliver the current value, got %v", last)
	}

	s.Snap(3)
	if last[0] != 3 || !s.Settled() {
		t.Errorf("after Snap value = %v settled = %v", last, s.Settled())
	}
	unsub()
	s.Set(10)
	s.Tick()
	if last[0] != 3 {
		t.Error("unsubscribed callback still called")
	}
}

func TestPointerHandleGlobalMouseMove(t *testing.T) {
	p := NewPointer(60)
	if c := p.Cursor(); c.X != 0.5 || c.Y != -0.5 {
		t.Fatalf("initial cursor = %+v, want north-east (0.5, -0.5)", c)
	}

	p.HandleGlobalMouseMove(200, 50, 400, 100)
	tg := p.Coords.Target()
	if tg[0] != 0 || tg[1] != 0 {
		t.Errorf("target = %v, want viewport center [0 0]", tg)
	}

	p.HandleGlobalMouseMove(10, 10, 0, 100)
	if tg2 := p.Coords.Target(); tg2[0] != tg[0] || tg2[1] != tg[1] {
		t.Error("empty viewport should be ignored")
	}

	tickUntilSettled(t, p, 2000)
	if c := p.Cursor(); math.Abs(c.X) > 1e-12 || math.Abs(c.Y) > 1e-12 {
		t.Errorf("settled cursor = %+v, want (0, 0)", c)
	}
}

func TestPointerToggle(t *testing.T) {
	p := NewPointer(60)
	if ts := p.ToggleState(); ts.Scale != 0.63 || ts.Opacity != 0.5 {
		t.Fatalf("initial toggle = %+v", ts)
	}
	p.SetToggle(Toggle{Scale: 1, Opacity: 1})
	tickUntilSettled(t, p, 2000)
	if ts := p.ToggleState(); ts.Scale != 1 || ts.Opacity != 1 {
		t.Errorf("settled toggle = %+v, want {1 1}", ts)
	}
}
