package engine

import (
	"io"
	"log"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/orbitarium/core"
	"github.com/lixenwraith/orbitarium/event"
	"github.com/lixenwraith/orbitarium/parameter"
	"github.com/lixenwraith/orbitarium/status"
	"github.com/lixenwraith/orbitarium/vmath"
)

// Body is one celestial object. Pos/Vel mirror the last snapshot applied by
// playback and are what the front end renders; the trajectory head holds the
// state the next advance will apply. Radius is for rendering and picking only,
// it has no gravitational effect.
type Body struct {
	Name   string
	Mass   float64
	Radius float64
	Color  string // hex or named color, consumed by the renderer

	Pos vmath.Vec2
	Vel vmath.Vec2

	Traj              *core.Trajectory
	TrajectoryVisible bool
}

// SimData holds the global simulation parameters. TrajectoryPos is the count
// of already-computed indices, i.e. the boundary up to which every body's
// trajectory is filled. Invariant: 1 <= TrajectoryPos <= TrajectoryLen, and
// between tick phases every trajectory's length equals TrajectoryPos.
type SimData struct {
	GravitationalConst float64
	TrajectoryPos      int
}

// World owns the body arena and all simulation state. State is mutated only
// inside a tick while the update lock is held; external collaborators request
// edits through the command queue and read state via RunSafe.
type World struct {
	updateMu sync.Mutex

	bodies []*Body
	Sim    SimData

	// Set by physics-affecting edits, consumed by the invalidation phase
	dirty bool

	logger *log.Logger

	// Cached metric pointers
	statBodies *atomic.Int64
	statWarns  *atomic.Int64
}

// NewWorld creates an empty world with default simulation parameters
// A nil logger discards warnings; warning counts still reach the registry
func NewWorld(reg *status.Registry, logger *log.Logger) *World {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &World{
		Sim: SimData{
			GravitationalConst: parameter.DefaultGravitationalConst,
			TrajectoryPos:      1,
		},
		logger:     logger,
		statBodies: reg.Ints.Get("sim.bodies"),
		statWarns:  reg.Ints.Get("sim.warnings"),
	}
}

// RunSafe executes fn while holding the update lock
// Used by the render loop to read body state between ticks
func (w *World) RunSafe(fn func()) {
	w.updateMu.Lock()
	defer w.updateMu.Unlock()
	fn()
}

// Lock acquires the update lock for a tick
func (w *World) Lock() {
	w.updateMu.Lock()
}

// Unlock releases the update lock
func (w *World) Unlock() {
	w.updateMu.Unlock()
}

// Bodies returns the live arena slice. Caller must hold the update lock
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Count returns the number of bodies. Caller must hold the update lock
func (w *World) Count() int {
	return len(w.bodies)
}

// Body returns the body at arena index i, false when out of range
func (w *World) Body(i int) (*Body, bool) {
	if i < 0 || i >= len(w.bodies) {
		return nil, false
	}
	return w.bodies[i], true
}

// Spawn adds a body from a definition and schedules recomputation
func (w *World) Spawn(def event.Spawn) {
	if def.Mass <= 0 {
		w.warnf("spawn %q rejected: mass %v must be positive", def.Name, def.Mass)
		return
	}
	snap := core.Snapshot{Pos: def.Pos, Vel: def.Vel}
	w.bodies = append(w.bodies, &Body{
		Name:              def.Name,
		Mass:              def.Mass,
		Radius:            def.Radius,
		Color:             def.Color,
		Pos:               def.Pos,
		Vel:               def.Vel,
		Traj:              core.NewTrajectory(snap),
		TrajectoryVisible: true,
	})
	w.dirty = true
	w.statBodies.Store(int64(len(w.bodies)))
}

// ResetScenario replaces the whole body set and gravitational constant in one
// edit, used for initial load and scenario reload. Trajectories rebuild from
// scratch on the next tick
func (w *World) ResetScenario(defs []event.Spawn, g float64) {
	w.bodies = w.bodies[:0]
	w.statBodies.Store(0)
	for _, def := range defs {
		w.Spawn(def)
	}
	w.Sim.GravitationalConst = g
	w.Sim.TrajectoryPos = 1
	w.dirty = true
}

// Remove drops the body at index i and its trajectory
func (w *World) Remove(i int) {
	if i < 0 || i >= len(w.bodies) {
		w.warnf("remove: no body at index %d", i)
		return
	}
	w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
	w.dirty = true
	w.statBodies.Store(int64(len(w.bodies)))
}

// SetMass replaces a body's mass and schedules recomputation
func (w *World) SetMass(i int, mass float64) {
	b, ok := w.Body(i)
	if !ok {
		w.warnf("set mass: no body at index %d", i)
		return
	}
	if mass <= 0 {
		w.warnf("set mass: %v must be positive", mass)
		return
	}
	b.Mass = mass
	w.dirty = true
}

// SetPosition rewrites the body's current state and schedules recomputation
func (w *World) SetPosition(i int, pos vmath.Vec2) {
	b, ok := w.Body(i)
	if !ok {
		w.warnf("set position: no body at index %d", i)
		return
	}
	front, ok := b.Traj.Front()
	if !ok {
		w.warnf("set position: body %q has empty trajectory", b.Name)
		return
	}
	front.Pos = pos
	b.Traj.SetFront(front)
	b.Pos = pos
	w.dirty = true
}

// SetVelocity rewrites the body's current state and schedules recomputation
func (w *World) SetVelocity(i int, vel vmath.Vec2) {
	b, ok := w.Body(i)
	if !ok {
		w.warnf("set velocity: no body at index %d", i)
		return
	}
	front, ok := b.Traj.Front()
	if !ok {
		w.warnf("set velocity: body %q has empty trajectory", b.Name)
		return
	}
	front.Vel = vel
	b.Traj.SetFront(front)
	b.Vel = vel
	w.dirty = true
}

// SetGravity replaces the gravitational constant and schedules recomputation
func (w *World) SetGravity(g float64) {
	w.Sim.GravitationalConst = g
	w.dirty = true
}

// SetName renames a body. No trajectory effect
func (w *World) SetName(i int, name string) {
	b, ok := w.Body(i)
	if !ok {
		w.warnf("set name: no body at index %d", i)
		return
	}
	b.Name = name
}

// ToggleTrajectory flips a body's path visibility. No trajectory effect
func (w *World) ToggleTrajectory(i int) {
	b, ok := w.Body(i)
	if !ok {
		w.warnf("toggle trajectory: no body at index %d", i)
		return
	}
	b.TrajectoryVisible = !b.TrajectoryVisible
}

// Dirty reports whether a physics-affecting edit is pending invalidation
func (w *World) Dirty() bool {
	return w.dirty
}

func (w *World) warnf(format string, args ...any) {
	w.statWarns.Add(1)
	w.logger.Printf("warn: "+format, args...)
}
