// Package audio plays short procedural feedback tones for playback commands.
// Tones are generated, not loaded, so the binary ships no sound assets.
// Audio is strictly optional: a failed speaker init leaves a disabled player
// and the simulator runs silent.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Cue identifies one feedback tone
type Cue int

const (
	// CuePlay fires when playback starts
	CuePlay Cue = iota
	// CuePause fires when playback pauses
	CuePause
	// CueStep fires on a single-step or manual advance
	CueStep
)

const sampleRate = beep.SampleRate(44100)

// cueTones maps cues to pitch and length
var cueTones = map[Cue]struct {
	freq     float64
	duration time.Duration
}{
	CuePlay:  {660, 60 * time.Millisecond},
	CuePause: {440, 60 * time.Millisecond},
	CueStep:  {880, 35 * time.Millisecond},
}

// Player owns the speaker. Zero value is a disabled player
type Player struct {
	enabled bool
}

// NewPlayer initializes the speaker. On error the returned player is disabled
// but still safe to use
func NewPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Player{}, err
	}
	return &Player{enabled: true}, nil
}

// Enabled reports whether the speaker initialized
func (p *Player) Enabled() bool {
	return p.enabled
}

// Play fires a cue tone. No-op when disabled or for unknown cues
func (p *Player) Play(cue Cue) {
	if !p.enabled {
		return
	}
	tone, ok := cueTones[cue]
	if !ok {
		return
	}
	sine, err := generators.SineTone(sampleRate, tone.freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(tone.duration), sine))
}
