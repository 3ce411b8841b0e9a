package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbitarium/audio"
	"github.com/lixenwraith/orbitarium/engine"
	"github.com/lixenwraith/orbitarium/event"
	"github.com/lixenwraith/orbitarium/parameter"
	"github.com/lixenwraith/orbitarium/render"
	"github.com/lixenwraith/orbitarium/scenario"
	"github.com/lixenwraith/orbitarium/status"
)

var (
	scenarioFlag = flag.String("scenario", "", "Path to a scenario TOML file (built-in system when empty)")
	debugFlag    = flag.String("debug", "", "Write warning log to this file")
	muteFlag     = flag.Bool("mute", false, "Disable audio cues")
	monoFlag     = flag.Bool("mono", false, "Monochrome rendering, ignore body colors")
)

func main() {
	flag.Parse()

	scn, err := loadScenario(*scenarioFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load scenario: %v\n", err)
		os.Exit(1)
	}

	var logger *log.Logger
	if *debugFlag != "" {
		f, err := os.Create(*debugFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open debug log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = log.New(f, "orbitarium ", log.LstdFlags|log.Lmicroseconds)
	}

	reg := status.NewRegistry()
	world := engine.NewWorld(reg, logger)
	world.ResetScenario(spawnDefs(scn), scn.GravitationalConst)

	playback := engine.NewPlayback()
	queue := event.NewQueue()
	sched := engine.NewClockScheduler(world, playback, queue, parameter.TickInterval, reg)

	var cues *audio.Player
	if *muteFlag {
		cues = &audio.Player{}
	} else {
		if cues, err = audio.NewPlayer(); err != nil && logger != nil {
			logger.Printf("audio unavailable: %v (continuing silent)", err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before the stack trace hits stderr
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "ORBITARIUM CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	sched.Start()
	defer sched.Stop()

	view := render.NewView(screen, scn.DisplayName)
	view.Mono = *monoFlag
	run(screen, world, playback, queue, cues, view, scn)
}

func loadScenario(path string) (*scenario.Scenario, error) {
	if path == "" {
		return scenario.Default(), nil
	}
	return scenario.Load(path)
}

func spawnDefs(scn *scenario.Scenario) []event.Spawn {
	defs := make([]event.Spawn, len(scn.Bodies))
	for i := range scn.Bodies {
		defs[i] = scn.Bodies[i].Spawn()
	}
	return defs
}

// run owns the render/input loop. Physics runs on the scheduler goroutine;
// this loop only pushes commands and draws frames between ticks
func run(screen tcell.Screen, world *engine.World, playback *engine.Playback, queue *event.Queue, cues *audio.Player, view *render.View, scn *scenario.Scenario) {
	inputCh := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(inputCh)
				return
			}
			inputCh <- ev
		}
	}()

	frame := time.NewTicker(parameter.FrameInterval)
	defer frame.Stop()

	spawned := 0
	for {
		select {
		case <-frame.C:
			world.RunSafe(func() {
				view.Draw(world, playback)
			})

		case ev, ok := <-inputCh:
			if !ok {
				return
			}
			switch tev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if !handleKey(tev, world, playback, queue, cues, view, scn, &spawned) {
					return
				}
			}
		}
	}
}

// handleKey translates one key press into queue commands or view changes.
// Returns false to quit
func handleKey(ev *tcell.EventKey, world *engine.World, playback *engine.Playback, queue *event.Queue, cues *audio.Player, view *render.View, scn *scenario.Scenario, spawned *int) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRight:
		// Manual single advance, legal in any playback state
		queue.Push(event.Event{Type: event.TypeAdvanceOnce})
		cues.Play(audio.CueStep)
		return true
	case tcell.KeyTab:
		world.RunSafe(func() {
			view.CycleSelected(world)
		})
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case ' ':
		if playback.State() == engine.StatePlaying {
			cues.Play(audio.CuePause)
		} else {
			cues.Play(audio.CuePlay)
		}
		queue.Push(event.Event{Type: event.TypeTogglePlayback})
	case 's':
		queue.Push(event.Event{Type: event.TypeStep})
		cues.Play(audio.CueStep)
	case 'f':
		view.ToggleFollow()
	case 'v':
		queue.Push(event.Event{Type: event.TypeToggleTrajectory, Payload: event.BodyIndex{Index: view.Selected}})
	case 'm':
		scaleMass(world, queue, view.Selected, 0.9)
	case 'M':
		scaleMass(world, queue, view.Selected, 1.1)
	case 'g':
		scaleGravity(world, queue, 0.9)
	case 'G':
		scaleGravity(world, queue, 1.1)
	case 'h':
		view.Camera.Pan(-4, 0)
	case 'l':
		view.Camera.Pan(4, 0)
	case 'k':
		view.Camera.Pan(0, 2)
	case 'j':
		view.Camera.Pan(0, -2)
	case '+', '=':
		view.Camera.Zoom(0.8)
	case '-':
		view.Camera.Zoom(1.25)
	case 'b':
		*spawned++
		queue.Push(event.Event{Type: event.TypeSpawnBody, Payload: event.Spawn{
			Name:   fmt.Sprintf("body-%d", *spawned),
			Mass:   1,
			Radius: 1,
			Color:  "#aaaaaa",
			Pos:    view.Camera.Center,
		}})
	case 'x':
		queue.Push(event.Event{Type: event.TypeRemoveBody, Payload: event.BodyIndex{Index: view.Selected}})
	case 'r':
		// Reload the scenario in place. The lock lands the edit between ticks
		world.RunSafe(func() {
			world.ResetScenario(spawnDefs(scn), scn.GravitationalConst)
		})
		view.Selected = 0
		view.Follow = -1
	}
	return true
}

// scaleMass reads the selected body under the update lock and queues the edit
func scaleMass(world *engine.World, queue *event.Queue, index int, factor float64) {
	var mass float64
	world.RunSafe(func() {
		if b, ok := world.Body(index); ok {
			mass = b.Mass * factor
		}
	})
	if mass > 0 {
		queue.Push(event.Event{Type: event.TypeSetMass, Payload: event.BodyScalar{Index: index, Value: mass}})
	}
}

func scaleGravity(world *engine.World, queue *event.Queue, factor float64) {
	var g float64
	world.RunSafe(func() {
		g = world.Sim.GravitationalConst * factor
	})
	queue.Push(event.Event{Type: event.TypeSetGravity, Payload: event.Scalar{Value: g}})
}
