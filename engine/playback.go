package engine

import "sync/atomic"

// PlaybackState is the playback controller state
type PlaybackState int32

const (
	// StatePaused never advances the cursor
	StatePaused PlaybackState = iota
	// StatePlaying advances once per tick
	StatePlaying
	// StateStep advances exactly once, then returns to Paused
	StateStep
)

// String returns the display name for a playback state
func (s PlaybackState) String() string {
	switch s {
	case StatePaused:
		return "paused"
	case StatePlaying:
		return "playing"
	case StateStep:
		return "step"
	default:
		return "unknown"
	}
}

// Playback is the state machine driving the simulation cursor. Transitions
// happen only inside the scheduler tick; the state cell is atomic so the
// render loop can read it for the status line without the world lock.
type Playback struct {
	state atomic.Int32
}

// NewPlayback creates a controller in the initial Paused state
func NewPlayback() *Playback {
	return &Playback{}
}

// State returns the current playback state
func (p *Playback) State() PlaybackState {
	return PlaybackState(p.state.Load())
}

// Toggle handles the play/pause command: Paused becomes Playing, Playing
// becomes Paused, Step resumes continuous play
func (p *Playback) Toggle() {
	switch p.State() {
	case StatePlaying:
		p.state.Store(int32(StatePaused))
	case StatePaused, StateStep:
		p.state.Store(int32(StatePlaying))
	}
}

// RequestStep enters the Step state from any state
func (p *Playback) RequestStep() {
	p.state.Store(int32(StateStep))
}

// ShouldAdvance reports whether this tick consumes a step, and performs the
// Step -> Paused auto-transition after its single tick fires
func (p *Playback) ShouldAdvance() bool {
	switch p.State() {
	case StatePlaying:
		return true
	case StateStep:
		p.state.Store(int32(StatePaused))
		return true
	default:
		return false
	}
}
