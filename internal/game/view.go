package game

import (
	"math"

	"github.com/vovakirdan/quantum-shift/internal/physics"
	"github.com/vovakirdan/quantum-shift/internal/state"
)

// View is the player's on-screen presentation. It trails the store position
// and is rebuilt every frame by Advance.
type View struct {
	Position physics.Vec3   // Smoothed visual position
	Target   physics.Vec3   // Position produced by this frame's physics pass
	Scale    float64        // 1 in normal reality, grows toward the quantum scale
	Rotation float64        // Radians; 0 with gravity up, pi with gravity down
	Trail    []physics.Vec3 // Recent visual positions, oldest first; quantum only
}

// NewView returns the view of a player at the origin.
func NewView() View {
	return View{Scale: 1}
}

// FrameInput is everything one frame of Advance reads.
type FrameInput struct {
	State        state.State
	Params       physics.Params
	Lerp         float64
	TrailLength  int
	QuantumScale float64
	Noise        physics.Source // nil disables quantum jitter
}

// Advance computes the next frame's view. A fresh physics object is built at
// the store position, pushed through gravity and the quantum effect, and the
// visual position, scale and rotation each move a Lerp fraction toward their
// targets. The store is never written.
func Advance(prev View, in FrameInput, dt float64) View {
	st := in.State

	obj := physics.Object{
		Position: physics.V(st.Position.X, st.Position.Y, 0),
		Mass:     1,
	}
	obj = in.Params.ApplyGravity(obj, st.Gravity.Sign(), dt)
	obj = in.Params.ApplyQuantumEffect(obj, st.IsQuantum(), st.Time.Sign(), in.Noise)

	next := View{
		Target:   obj.Position,
		Position: prev.Position.Lerp(obj.Position, in.Lerp),
		Scale:    physics.Lerp(prev.Scale, scaleTarget(st, in.QuantumScale), in.Lerp),
		Rotation: physics.Lerp(prev.Rotation, rotationTarget(st), in.Lerp),
	}

	if st.IsQuantum() && in.TrailLength > 0 {
		trail := append(append([]physics.Vec3(nil), prev.Trail...), next.Position)
		if len(trail) > in.TrailLength {
			trail = trail[len(trail)-in.TrailLength:]
		}
		next.Trail = trail
	}

	return next
}

func scaleTarget(st state.State, quantumScale float64) float64 {
	if st.IsQuantum() {
		return quantumScale
	}
	return 1
}

// rotationTarget flips the player upside down under reversed gravity; the
// direction of the turn follows the time direction.
func rotationTarget(st state.State) float64 {
	target := 0.0
	if st.Gravity == state.GravityDown {
		target = math.Pi
	}
	return target * st.Time.Sign()
}

// UpsideDown reports whether the player is drawn inverted.
func (v View) UpsideDown() bool {
	return math.Cos(v.Rotation) < 0
}
