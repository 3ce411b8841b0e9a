package core

import (
	"github.com/lixenwraith/orbitarium/parameter"
	"github.com/lixenwraith/orbitarium/vmath"
)

// Snapshot is one body's state at a single discrete time index. Immutable value.
type Snapshot struct {
	Pos vmath.Vec2
	Vel vmath.Vec2
}

// Trajectory is a bounded deque of snapshots representing a body's precomputed
// future. Index 0 is always the body's current state; entries are
// monotonically time-ordered with no gaps. The engine appends future states at
// the tail; playback consumes one state from the head per tick.
//
// Backed by a fixed ring so a full invalidate/precompute cycle allocates nothing.
type Trajectory struct {
	buf   []Snapshot
	head  int
	count int
}

// NewTrajectory creates a trajectory holding only the given current state
func NewTrajectory(current Snapshot) *Trajectory {
	t := &Trajectory{
		buf: make([]Snapshot, parameter.TrajectoryLen),
	}
	t.buf[0] = current
	t.count = 1
	return t
}

// Len returns the number of stored snapshots
func (t *Trajectory) Len() int {
	return t.count
}

// Cap returns the fixed horizon capacity
func (t *Trajectory) Cap() int {
	return len(t.buf)
}

// At returns the snapshot at index i (0 = now). Caller keeps i < Len
func (t *Trajectory) At(i int) Snapshot {
	return t.buf[(t.head+i)%len(t.buf)]
}

// Front returns the current-state snapshot, false if the trajectory is empty
func (t *Trajectory) Front() (Snapshot, bool) {
	if t.count == 0 {
		return Snapshot{}, false
	}
	return t.buf[t.head], true
}

// SetFront overwrites the current-state snapshot in place
// Used by interactive position/velocity edits, which always invalidate after
func (t *Trajectory) SetFront(s Snapshot) {
	if t.count == 0 {
		return
	}
	t.buf[t.head] = s
}

// PopFront removes and returns the head snapshot, false if empty
func (t *Trajectory) PopFront() (Snapshot, bool) {
	if t.count == 0 {
		return Snapshot{}, false
	}
	s := t.buf[t.head]
	t.head = (t.head + 1) % len(t.buf)
	t.count--
	return s, true
}

// PushBack appends a future snapshot at the tail
// Returns false without writing when the horizon is already full
func (t *Trajectory) PushBack(s Snapshot) bool {
	if t.count == len(t.buf) {
		return false
	}
	t.buf[(t.head+t.count)%len(t.buf)] = s
	t.count++
	return true
}

// Reset discards every entry except the current head, leaving length 1
// A reset on an empty trajectory stays empty
func (t *Trajectory) Reset() {
	if t.count == 0 {
		return
	}
	t.buf[0] = t.buf[t.head]
	t.head = 0
	t.count = 1
}
