package physics

import (
	"github.com/lixenwraith/orbitarium/core"
	"github.com/lixenwraith/orbitarium/parameter"
	"github.com/lixenwraith/orbitarium/vmath"
)

// Acceleration returns the gravitational acceleration on the target body given
// every body's snapshot at one time index. Inverse-square law: each other body
// contributes g * mass * unit(d) / |d|². O(n) per call, O(n²) per index.
//
// Pairs closer than the minimum separation are skipped so coincident bodies
// cannot push non-finite values into the trajectory buffers.
func Acceleration(states []core.Snapshot, masses []float64, target int, g float64) vmath.Vec2 {
	var accel vmath.Vec2
	cur := states[target]

	for k := range states {
		if k == target {
			continue
		}

		d := states[k].Pos.Sub(cur.Pos)
		sqrDist := d.LengthSq()
		if sqrDist < parameter.MinSeparationSq {
			continue
		}

		accel = accel.Add(d.Normalize().Scale(g * masses[k] / sqrDist))
	}

	return accel
}

// Step advances one body by one time index using semi-implicit Euler:
// velocity first, then position from the updated velocity. Symplectic, so
// closed orbits stay bounded under the fixed step
func Step(cur core.Snapshot, accel vmath.Vec2, dt float64) core.Snapshot {
	vel := cur.Vel.Add(accel.Scale(dt))
	return core.Snapshot{
		Pos: cur.Pos.Add(vel.Scale(dt)),
		Vel: vel,
	}
}
