// Package physics holds the stateless per-frame motion helpers. Every function
// takes objects by value and returns the updated copies; nothing here touches
// game state.
package physics

// Default constants.
const (
	GravityConstant = 9.81
	TimeDilation    = 0.5
	Uncertainty     = 0.05
)

// Params tunes the per-frame helpers.
type Params struct {
	Gravity      float64 // Acceleration along Y per unit of gravity direction
	TimeDilation float64 // Velocity factor applied in quantum reality
	Uncertainty  float64 // Max absolute position jitter in quantum reality
}

// DefaultParams returns the standard constants.
func DefaultParams() Params {
	return Params{
		Gravity:      GravityConstant,
		TimeDilation: TimeDilation,
		Uncertainty:  Uncertainty,
	}
}

// Object is the transient physics record built for a single frame.
type Object struct {
	Position Vec3
	Velocity Vec3
	Mass     float64
}

// Source yields uniform floats in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// ApplyGravity integrates one step with the default constants.
func ApplyGravity(o Object, direction, dt float64) Object {
	return DefaultParams().ApplyGravity(o, direction, dt)
}

// ApplyGravity updates velocity first and then moves the object with the
// updated velocity (semi-implicit Euler). direction is +1 or -1.
func (p Params) ApplyGravity(o Object, direction, dt float64) Object {
	o.Velocity.Y -= p.Gravity * direction * dt
	o.Position = o.Position.Add(o.Velocity.Scale(dt))
	return o
}

// ApplyQuantumEffect applies the quantum effect with the default constants.
func ApplyQuantumEffect(o Object, isQuantum bool, timeDirection float64, noise Source) Object {
	return DefaultParams().ApplyQuantumEffect(o, isQuantum, timeDirection, noise)
}

// ApplyQuantumEffect dampens (and with reversed time, reverses) velocity and
// jitters X and Y independently. Outside quantum reality it returns o unchanged.
func (p Params) ApplyQuantumEffect(o Object, isQuantum bool, timeDirection float64, noise Source) Object {
	if !isQuantum {
		return o
	}
	o.Velocity = o.Velocity.Scale(p.TimeDilation * timeDirection)
	o.Position.X += p.jitter(noise)
	o.Position.Y += p.jitter(noise)
	return o
}

// jitter returns a uniform value in [-Uncertainty, +Uncertainty).
func (p Params) jitter(noise Source) float64 {
	if noise == nil {
		return 0
	}
	return (noise.Float64()*2 - 1) * p.Uncertainty
}

// CheckCollision reports whether a and b are closer than minDistance.
func CheckCollision(a, b Object, minDistance float64) bool {
	return a.Position.DistanceTo(b.Position) < minDistance
}

// ResolveCollision exchanges momentum between a and b. Each velocity moves by
// the relative velocity weighted with the other object's share of the total
// mass, which keeps total momentum constant. Massless pairs are returned as is.
func ResolveCollision(a, b Object) (Object, Object) {
	total := a.Mass + b.Mass
	if total == 0 {
		return a, b
	}
	rel := a.Velocity.Sub(b.Velocity)
	a.Velocity = a.Velocity.Sub(rel.Scale(b.Mass / total))
	b.Velocity = b.Velocity.Add(rel.Scale(a.Mass / total))
	return a, b
}
