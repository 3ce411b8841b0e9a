package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/orbitarium/core"
	"github.com/lixenwraith/orbitarium/parameter"
	"github.com/lixenwraith/orbitarium/vmath"
)

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// Two unit masses 10 apart with G=1: |a| = 1/100, first Euler step gives
// v = 0.00005 and p = v*dt = 2.5e-7 toward the other body
func TestTwoBodyFirstStep(t *testing.T) {
	states := []core.Snapshot{
		{Pos: vmath.Vec2{X: 0, Y: 0}},
		{Pos: vmath.Vec2{X: 10, Y: 0}},
	}
	masses := []float64{1, 1}

	aA := Acceleration(states, masses, 0, 1.0)
	if !approx(aA.X, 0.01, 1e-15) || aA.Y != 0 {
		t.Errorf("acceleration on A = %v, want (0.01, 0)", aA)
	}

	aB := Acceleration(states, masses, 1, 1.0)
	if !approx(aB.X, -0.01, 1e-15) || aB.Y != 0 {
		t.Errorf("acceleration on B = %v, want (-0.01, 0)", aB)
	}

	next := Step(states[0], aA, parameter.TimeStep)
	if !approx(next.Vel.X, 0.00005, 1e-15) || next.Vel.Y != 0 {
		t.Errorf("velocity after step = %v, want (0.00005, 0)", next.Vel)
	}
	if !approx(next.Pos.X, 0.00000025, 1e-15) || next.Pos.Y != 0 {
		t.Errorf("position after step = %v, want (2.5e-7, 0)", next.Pos)
	}
}

func TestAccelerationScalesWithGAndMass(t *testing.T) {
	states := []core.Snapshot{
		{Pos: vmath.Vec2{X: 0, Y: 0}},
		{Pos: vmath.Vec2{X: 0, Y: 2}},
	}
	masses := []float64{1, 8}

	a := Acceleration(states, masses, 0, 0.5)
	// 0.5 * 8 / 4 = 1, pointing +y
	if !approx(a.Y, 1.0, 1e-15) || a.X != 0 {
		t.Errorf("acceleration = %v, want (0, 1)", a)
	}
}

func TestAccelerationSumsContributions(t *testing.T) {
	// Symmetric neighbors on both sides cancel
	states := []core.Snapshot{
		{Pos: vmath.Vec2{X: 0, Y: 0}},
		{Pos: vmath.Vec2{X: 5, Y: 0}},
		{Pos: vmath.Vec2{X: -5, Y: 0}},
	}
	masses := []float64{1, 3, 3}

	a := Acceleration(states, masses, 0, 1.0)
	if !approx(a.X, 0, 1e-15) || !approx(a.Y, 0, 1e-15) {
		t.Errorf("symmetric contributions must cancel, got %v", a)
	}
}

func TestCoincidentBodiesSkipped(t *testing.T) {
	states := []core.Snapshot{
		{Pos: vmath.Vec2{X: 1, Y: 1}},
		{Pos: vmath.Vec2{X: 1, Y: 1}},
		{Pos: vmath.Vec2{X: 3, Y: 1}},
	}
	masses := []float64{1, 1, 1}

	a := Acceleration(states, masses, 0, 1.0)
	if !a.IsFinite() {
		t.Fatalf("coincident pair produced non-finite acceleration: %v", a)
	}
	// Only the separated body contributes: 1/4 toward +x
	if !approx(a.X, 0.25, 1e-15) || a.Y != 0 {
		t.Errorf("acceleration = %v, want (0.25, 0)", a)
	}
}

func TestStepIsVelocityFirst(t *testing.T) {
	cur := core.Snapshot{
		Pos: vmath.Vec2{X: 1, Y: 0},
		Vel: vmath.Vec2{X: 0, Y: 2},
	}
	accel := vmath.Vec2{X: 10, Y: 0}

	next := Step(cur, accel, 0.1)
	// v' = (1, 2); p' = p + v'*dt, not p + v*dt
	if !approx(next.Vel.X, 1, 1e-15) || !approx(next.Vel.Y, 2, 1e-15) {
		t.Errorf("velocity = %v", next.Vel)
	}
	if !approx(next.Pos.X, 1.1, 1e-15) || !approx(next.Pos.Y, 0.2, 1e-15) {
		t.Errorf("position = %v, want semi-implicit update (1.1, 0.2)", next.Pos)
	}
}
