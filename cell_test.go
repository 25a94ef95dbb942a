package pixelhover

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

// seqRand replays a fixed sequence of values, cycling when exhausted.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestNewCellParameters(t *testing.T) {
	r := &seqRand{vals: []float64{0.5}}
	c := newCell(0, 0, 12, 12, gg.White, DefaultSpeed, r)

	if want := 0.5 * DefaultSpeed; !near(c.Speed, want) {
		t.Errorf("Speed = %v, want %v", c.Speed, want)
	}
	if !near(c.SizeStep, 0.2) {
		t.Errorf("SizeStep = %v, want 0.2", c.SizeStep)
	}
	if !near(c.MaxSize, 1.25) {
		t.Errorf("MaxSize = %v, want 1.25", c.MaxSize)
	}
	if want := 2 + 24*0.01; !near(c.CounterStep, want) {
		t.Errorf("CounterStep = %v, want %v", c.CounterStep, want)
	}
	if want := math.Sqrt(72); !near(c.Delay, want) {
		t.Errorf("Delay = %v, want %v", c.Delay, want)
	}
	if c.Phase != PhaseIdle || c.Size != 0 {
		t.Errorf("new cell = %v size %v, want Idle size 0", c.Phase, c.Size)
	}
}

func TestNewCellParameterRanges(t *testing.T) {
	for _, v := range []float64{0, 0.999999} {
		c := newCell(3, 3, 10, 10, gg.White, 1, &seqRand{vals: []float64{v}})
		if c.Speed < 0.1 || c.Speed > 0.9 {
			t.Errorf("rand %v: Speed = %v, want in [0.1, 0.9]", v, c.Speed)
		}
		if c.SizeStep < 0 || c.SizeStep > 0.4 {
			t.Errorf("rand %v: SizeStep = %v, want in [0, 0.4]", v, c.SizeStep)
		}
		if c.MaxSize < 0.5 || c.MaxSize > 2 {
			t.Errorf("rand %v: MaxSize = %v, want in [0.5, 2]", v, c.MaxSize)
		}
	}
}

func TestAppearWaitsForDelay(t *testing.T) {
	c := Cell{Delay: 5, CounterStep: 2, SizeStep: 0.3, MaxSize: 1.5}

	// Counter goes 0 -> 2 -> 4 -> 6; growth starts on the frame after it passes 5.
	for i := 0; i < 3; i++ {
		c = Appear(c)
		if c.Phase != PhaseIdle || c.Visible() {
			t.Fatalf("frame %d: phase %v visible %v, want Idle and hidden", i, c.Phase, c.Visible())
		}
	}
	c = Appear(c)
	if c.Phase != PhaseGrowing {
		t.Fatalf("frame 3: phase = %v, want Growing", c.Phase)
	}
	if !near(c.Size, 0.3) {
		t.Errorf("frame 3: size = %v, want 0.3", c.Size)
	}
	if !c.Visible() {
		t.Error("growing cell should be visible")
	}
}

func TestAppearGrowthClampsToMax(t *testing.T) {
	c := Cell{Delay: -1, SizeStep: 0.4, MaxSize: 1, Speed: 0.01}
	var phases []Phase
	for i := 0; i < 5; i++ {
		c = Appear(c)
		phases = append(phases, c.Phase)
		if c.Phase == PhaseGrowing && c.Size > c.MaxSize {
			t.Fatalf("frame %d: growing size %v exceeds max %v", i, c.Size, c.MaxSize)
		}
	}
	// 0.4, 0.8, 1.0 (clamped), then shimmer starts.
	want := []Phase{PhaseGrowing, PhaseGrowing, PhaseGrowing, PhaseShimmering, PhaseShimmering}
	for i := range want {
		if phases[i] != want[i] {
			t.Errorf("frame %d: phase = %v, want %v", i, phases[i], want[i])
		}
	}
}

func TestShimmerBounceStaysNearBounds(t *testing.T) {
	c := Cell{Delay: -1, SizeStep: 0.25, MaxSize: 1.7, Speed: 0.03}
	sawReverse, sawForward := false, false
	prev := 0.0
	for i := 0; i < 2000; i++ {
		c = Appear(c)
		if c.Size < 0 {
			t.Fatalf("frame %d: size %v < 0", i, c.Size)
		}
		if c.Size > c.MaxSize+c.Speed+1e-9 {
			t.Fatalf("frame %d: size %v overshoots max %v by more than one step", i, c.Size, c.MaxSize)
		}
		if c.Phase == PhaseShimmering {
			if c.Size < MinSize-c.Speed-1e-9 {
				t.Fatalf("frame %d: size %v undershoots min by more than one step", i, c.Size)
			}
			if c.Size < prev {
				sawReverse = true
			} else if sawReverse && c.Size > prev {
				sawForward = true
			}
		}
		prev = c.Size
	}
	if !sawReverse || !sawForward {
		t.Errorf("shimmer did not oscillate: reverse=%v forward=%v", sawReverse, sawForward)
	}
}

func TestDisappearTerminates(t *testing.T) {
	for _, maxSize := range []float64{0.5, 1.33, 2} {
		c := Cell{Size: maxSize, MaxSize: maxSize, Phase: PhaseShimmering, Counter: 42}
		bound := int(math.Ceil(maxSize/ShrinkStep)) + 2
		frames := 0
		for !c.Idle() {
			c = Disappear(c)
			frames++
			if c.Size < 0 {
				t.Fatalf("max %v: size %v < 0", maxSize, c.Size)
			}
			if c.Counter != 0 {
				t.Fatalf("max %v: counter = %v, want 0", maxSize, c.Counter)
			}
			if frames > bound {
				t.Fatalf("max %v: not idle after %d frames", maxSize, frames)
			}
		}
		if c.Visible() {
			t.Errorf("max %v: idle cell should be hidden", maxSize)
		}
	}
}

func TestDisappearFromIdleIsImmediate(t *testing.T) {
	c := Disappear(Cell{Delay: 10, Counter: 3, Phase: PhaseIdle})
	if !c.Idle() || c.Counter != 0 {
		t.Errorf("Disappear(idle) = phase %v counter %v, want Idle counter 0", c.Phase, c.Counter)
	}
}

func framesUntilGrowing(c Cell) int {
	for n := 1; n < 10000; n++ {
		c = Appear(c)
		if c.Phase != PhaseIdle {
			return n
		}
	}
	return -1
}

func TestRippleOrdering(t *testing.T) {
	delays := []float64{0, 0.5, 3, 3.1, 10, 25.7, 80}
	prev := 0
	for _, d := range delays {
		n := framesUntilGrowing(Cell{Delay: d, CounterStep: 1.3, SizeStep: 0.1, MaxSize: 1})
		if n < prev {
			t.Errorf("delay %v starts at frame %d, before a nearer cell (frame %d)", d, n, prev)
		}
		prev = n
	}
}

func TestCellRectCentersOnGridPoint(t *testing.T) {
	c := Cell{X: 6, Y: 12, Size: 2}
	x, y, w, h := c.Rect()
	if x != 6 || y != 12 || w != 2 || h != 2 {
		t.Errorf("Rect() = (%v, %v, %v, %v), want (6, 12, 2, 2)", x, y, w, h)
	}
	c.Size = 1
	x, y, _, _ = c.Rect()
	if x != 6.5 || y != 12.5 {
		t.Errorf("Rect() origin = (%v, %v), want (6.5, 12.5)", x, y)
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		p    Phase
		want string
	}{
		{PhaseIdle, "Idle"},
		{PhaseGrowing, "Growing"},
		{PhaseShimmering, "Shimmering"},
		{PhaseShrinking, "Shrinking"},
		{Phase(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.p, got, tt.want)
		}
	}
}
