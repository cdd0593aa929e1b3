package snap

import (
	"math"
	"time"
)

// Deceleration spline constants. The fling distance formula is the
// closed-form inversion of the exponential spline used by standard
// fling scrollers, so a velocity derived from a distance reproduces
// that distance when run through the same simulator.
const (
	// Inflexion is the point where the tension lines cross (x, 1).
	Inflexion = 0.35

	gravityEarth   = 9.80665 // m/s^2
	inchesPerMeter = 39.37
	tuningFactor   = 0.84 // look and feel tuning
)

// DecelerationRate is the fixed spline deceleration rate.
var DecelerationRate = math.Log(0.78) / math.Log(0.9)

// Physics holds the device-derived fling coefficients. Both values are
// strictly positive and fixed for the lifetime of the owning view; a
// new Physics must be built if the display density changes.
type Physics struct {
	Friction      float64
	PhysicalCoeff float64
}

// NewPhysics derives the physical coefficient from the display density
// (1.0 = 160 ppi baseline) and the configured scroll friction.
func NewPhysics(density, friction float64) Physics {
	ppi := density * 160.0
	return Physics{
		Friction:      friction,
		PhysicalCoeff: gravityEarth * inchesPerMeter * ppi * tuningFactor,
	}
}

// deceleration returns the spline deceleration value l for a velocity.
func (p Physics) deceleration(velocity int) float64 {
	return math.Log(Inflexion * math.Abs(float64(velocity)) / (p.Friction * p.PhysicalCoeff))
}

// FlingDistance returns the total distance a fling with the given
// initial velocity travels before coming to rest. The velocity must be
// non-zero; the sign is ignored.
func (p Physics) FlingDistance(velocity int) float64 {
	l := p.deceleration(velocity)
	decelMinusOne := DecelerationRate - 1.0
	return p.Friction * p.PhysicalCoeff * math.Exp(DecelerationRate/decelMinusOne*l)
}

// VelocityForDistance returns the initial velocity required for a
// fling to travel the given distance. The result is truncated and
// incremented by 1 so the simulator's own rounding never undershoots
// the target distance; the +1 is deliberate, not a rounding artifact.
func (p Physics) VelocityForDistance(distance float64) int {
	coeff := p.Friction * p.PhysicalCoeff
	v := math.Exp(
		math.Log(math.Abs(distance)/coeff)*(DecelerationRate-1.0)/DecelerationRate +
			math.Log(coeff/Inflexion))
	return int(v) + 1
}

// FlingDuration returns how long a fling with the given initial
// velocity takes to come to rest.
func (p Physics) FlingDuration(velocity int) time.Duration {
	l := p.deceleration(velocity)
	seconds := math.Exp(l / (DecelerationRate - 1.0))
	return time.Duration(seconds * float64(time.Second))
}
