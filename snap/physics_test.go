package snap

import (
	"math"
	"testing"
)

func testPhysics() Physics {
	// 160 ppi baseline density, stock scroll friction.
	return NewPhysics(1.0, 0.015)
}

func TestNewPhysicsCoefficients(t *testing.T) {
	p := testPhysics()

	if p.Friction != 0.015 {
		t.Errorf("Friction = %v, want 0.015", p.Friction)
	}
	want := 9.80665 * 39.37 * 160.0 * 0.84
	if math.Abs(p.PhysicalCoeff-want) > 1e-9 {
		t.Errorf("PhysicalCoeff = %v, want %v", p.PhysicalCoeff, want)
	}

	// Doubling density doubles the physical coefficient.
	hi := NewPhysics(2.0, 0.015)
	if math.Abs(hi.PhysicalCoeff-2*p.PhysicalCoeff) > 1e-9 {
		t.Errorf("PhysicalCoeff at density 2.0 = %v, want %v", hi.PhysicalCoeff, 2*p.PhysicalCoeff)
	}
}

func TestFlingDistanceGrowsWithVelocity(t *testing.T) {
	p := testPhysics()

	prev := 0.0
	for _, v := range []int{100, 500, 1000, 2500, 5000, 8000} {
		d := p.FlingDistance(v)
		if d <= prev {
			t.Fatalf("FlingDistance(%d) = %v, not greater than FlingDistance of previous velocity %v", v, d, prev)
		}
		prev = d
	}
}

func TestFlingDistanceIgnoresSign(t *testing.T) {
	p := testPhysics()

	pos := p.FlingDistance(3000)
	neg := p.FlingDistance(-3000)
	if pos != neg {
		t.Errorf("FlingDistance(3000) = %v, FlingDistance(-3000) = %v, want equal", pos, neg)
	}
	if pos <= 0 {
		t.Errorf("FlingDistance(3000) = %v, want positive", pos)
	}
}

// Round-trip law: converting a fling distance back to a velocity must
// recover the original magnitude within the deliberate +1 bias.
func TestVelocityForDistanceRoundTrip(t *testing.T) {
	p := testPhysics()

	for _, v := range []int{77, 150, 400, 1000, 2345, 6000, 12000, -900, -4500} {
		d := p.FlingDistance(v)
		got := p.VelocityForDistance(d)
		want := int(math.Abs(float64(v)))
		if got < want || got > want+1 {
			t.Errorf("VelocityForDistance(FlingDistance(%d)) = %d, want %d or %d", v, got, want, want+1)
		}
	}
}

// The +1 bias must guarantee the recovered velocity never undershoots
// the target distance when run back through the simulator.
func TestVelocityForDistanceNeverUndershoots(t *testing.T) {
	p := testPhysics()

	for _, target := range []float64{50, 120, 333.3, 1000, 4096, 20000} {
		v := p.VelocityForDistance(target)
		got := p.FlingDistance(v)
		if got < target {
			t.Errorf("FlingDistance(VelocityForDistance(%v)) = %v, undershoots target", target, got)
		}
		// The bias is a single velocity unit; the overshoot stays small.
		if got > target*1.05+5 {
			t.Errorf("FlingDistance(VelocityForDistance(%v)) = %v, overshoots far past target", target, got)
		}
	}
}

func TestFlingDurationGrowsWithVelocity(t *testing.T) {
	p := testPhysics()

	prev := p.FlingDuration(100)
	if prev <= 0 {
		t.Fatalf("FlingDuration(100) = %v, want positive", prev)
	}
	for _, v := range []int{500, 2000, 8000} {
		d := p.FlingDuration(v)
		if d <= prev {
			t.Fatalf("FlingDuration(%d) = %v, not greater than duration of previous velocity %v", v, d, prev)
		}
		prev = d
	}
}

func TestDecelerationRateValue(t *testing.T) {
	want := math.Log(0.78) / math.Log(0.9)
	if DecelerationRate != want {
		t.Errorf("DecelerationRate = %v, want %v", DecelerationRate, want)
	}
}
