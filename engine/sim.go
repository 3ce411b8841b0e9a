package engine

import (
	"github.com/lixenwraith/orbitarium/core"
	"github.com/lixenwraith/orbitarium/parameter"
	"github.com/lixenwraith/orbitarium/physics"
)

// Precompute fills every body's trajectory from index TrajectoryPos-1 through
// the end of the horizon, then sets TrajectoryPos to the horizon length.
//
// The update is synchronized: all accelerations for step i are computed from
// the same set of step-i snapshots before any body's step i+1 is appended, so
// body iteration order cannot leak into the result. Already-full horizon and
// the empty world are benign no-ops.
func (w *World) Precompute() {
	if len(w.bodies) == 0 {
		w.warnf("nothing to simulate")
		return
	}
	if w.Sim.TrajectoryPos >= parameter.TrajectoryLen {
		return
	}

	n := len(w.bodies)
	states := make([]core.Snapshot, n)
	masses := make([]float64, n)
	for j, b := range w.bodies {
		masses[j] = b.Mass
	}

	g := w.Sim.GravitationalConst
	for i := w.Sim.TrajectoryPos - 1; i < parameter.TrajectoryLen-1; i++ {
		for j, b := range w.bodies {
			states[j] = b.Traj.At(i)
		}
		for j, b := range w.bodies {
			accel := physics.Acceleration(states, masses, j, g)
			b.Traj.PushBack(physics.Step(states[j], accel, parameter.TimeStep))
		}
		w.Sim.TrajectoryPos++
	}
}

// Invalidate discards every precomputed future: each trajectory collapses to
// its current head and TrajectoryPos returns to 1, so the next precompute
// rebuilds the horizon under the edited parameters. Idempotent.
func (w *World) Invalidate() {
	for _, b := range w.bodies {
		b.Traj.Reset()
	}
	w.Sim.TrajectoryPos = 1
	w.dirty = false
}

// Advance consumes one precomputed step: every body's head snapshot is popped
// and becomes its externally-visible position/velocity, and TrajectoryPos
// drops by one. If any trajectory is empty the whole call is a logged no-op;
// that means precomputation has not kept the horizon ahead of playback, which
// is recoverable, not fatal.
func (w *World) Advance() {
	if len(w.bodies) == 0 {
		w.warnf("nothing to update")
		return
	}
	for _, b := range w.bodies {
		if b.Traj.Len() == 0 {
			w.warnf("trajectory of %q is empty", b.Name)
			return
		}
	}

	for _, b := range w.bodies {
		snap, _ := b.Traj.PopFront()
		b.Pos = snap.Pos
		b.Vel = snap.Vel
	}
	w.Sim.TrajectoryPos--
}
