package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/orbitarium/event"
	"github.com/lixenwraith/orbitarium/status"
)

// ClockScheduler drives the simulation on a fixed tick. Each tick runs the
// phases in a strict order: drain queued commands, invalidate if an edit
// landed, precompute the horizon, then advance playback. The whole tick holds
// the world update lock, so the render loop only ever observes phase
// boundaries.
type ClockScheduler struct {
	world    *World
	playback *Playback
	queue    *event.Queue

	tickInterval time.Duration
	tickCount    atomic.Int64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Cached metric pointers
	statTicks    *atomic.Int64
	statCommands *atomic.Int64
	statHorizon  *atomic.Int64
	statTickSecs *status.AtomicFloat
}

// NewClockScheduler wires a scheduler to a world, playback controller and
// command queue. The queue is the only path for external mutation
func NewClockScheduler(world *World, playback *Playback, queue *event.Queue, tickInterval time.Duration, reg *status.Registry) *ClockScheduler {
	return &ClockScheduler{
		world:        world,
		playback:     playback,
		queue:        queue,
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
		statTicks:    reg.Ints.Get("engine.ticks"),
		statCommands: reg.Ints.Get("engine.commands"),
		statHorizon:  reg.Ints.Get("engine.horizon"),
		statTickSecs: reg.Floats.Get("engine.tick_seconds"),
	}
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		go cs.loop()
	}
}

// Stop halts the scheduler loop and waits for the in-flight tick
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// TickCount returns the number of completed ticks
func (cs *ClockScheduler) TickCount() int64 {
	return cs.tickCount.Load()
}

// loop fires Tick at the fixed interval with deadline-based drift correction
func (cs *ClockScheduler) loop() {
	defer cs.wg.Done()

	deadline := time.Now().Add(cs.tickInterval)
	timer := time.NewTimer(time.Until(deadline))
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-timer.C:
			cs.Tick()
			deadline = deadline.Add(cs.tickInterval)
			if wait := time.Until(deadline); wait > 0 {
				timer.Reset(wait)
			} else {
				// Fell behind; re-anchor instead of bursting to catch up
				deadline = time.Now().Add(cs.tickInterval)
				timer.Reset(cs.tickInterval)
			}
		}
	}
}

// Tick runs one full simulation tick. Exported so tests and the step-debug
// path can drive the phases without the timer
func (cs *ClockScheduler) Tick() {
	cs.world.Lock()
	defer cs.world.Unlock()

	start := time.Now()
	defer func() {
		cs.statTickSecs.Set(time.Since(start).Seconds())
	}()

	tick := cs.tickCount.Add(1)
	cs.statTicks.Store(tick)

	// Phase 1: apply external edits at the boundary
	manualAdvances := 0
	for _, ev := range cs.queue.Consume() {
		cs.statCommands.Add(1)
		manualAdvances += cs.apply(ev)
	}

	// Phase 2: invalidation before any recomputation
	if cs.world.Dirty() {
		cs.world.Invalidate()
	}

	// Phase 3: rebuild the horizon before playback consumes from it
	cs.world.Precompute()

	// Phase 4: playback cursor
	if cs.playback.ShouldAdvance() {
		cs.world.Advance()
	}
	for i := 0; i < manualAdvances; i++ {
		cs.world.Advance()
	}

	cs.statHorizon.Store(int64(cs.world.Sim.TrajectoryPos))
}

// apply dispatches one queued command, returning the number of manual cursor
// advances it requests. Invalid body references are warned and ignored inside
// the world methods and never corrupt other bodies' state
func (cs *ClockScheduler) apply(ev event.Event) int {
	switch ev.Type {
	case event.TypeTogglePlayback:
		cs.playback.Toggle()
	case event.TypeStep:
		cs.playback.RequestStep()
	case event.TypeAdvanceOnce:
		return 1
	case event.TypeSetMass:
		if p, ok := ev.Payload.(event.BodyScalar); ok {
			cs.world.SetMass(p.Index, p.Value)
		}
	case event.TypeSetPosition:
		if p, ok := ev.Payload.(event.BodyVec); ok {
			cs.world.SetPosition(p.Index, p.Value)
		}
	case event.TypeSetVelocity:
		if p, ok := ev.Payload.(event.BodyVec); ok {
			cs.world.SetVelocity(p.Index, p.Value)
		}
	case event.TypeSetGravity:
		if p, ok := ev.Payload.(event.Scalar); ok {
			cs.world.SetGravity(p.Value)
		}
	case event.TypeSpawnBody:
		if p, ok := ev.Payload.(event.Spawn); ok {
			cs.world.Spawn(p)
		}
	case event.TypeRemoveBody:
		if p, ok := ev.Payload.(event.BodyIndex); ok {
			cs.world.Remove(p.Index)
		}
	case event.TypeSetName:
		if p, ok := ev.Payload.(event.BodyName); ok {
			cs.world.SetName(p.Index, p.Name)
		}
	case event.TypeToggleTrajectory:
		if p, ok := ev.Payload.(event.BodyIndex); ok {
			cs.world.ToggleTrajectory(p.Index)
		}
	}
	return 0
}
