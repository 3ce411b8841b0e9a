package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbitarium/engine"
	"github.com/lixenwraith/orbitarium/vmath"
)

// maxPathSamples caps how many trajectory points are plotted per body so a
// full 12000-step horizon stays cheap to draw at display rate
const maxPathSamples = 1500

// View draws the simulation to a tcell screen: trajectory paths first, body
// glyphs on top, then the status and inspector lines. Draw must run under the
// world update lock (the caller wraps it in World.RunSafe).
type View struct {
	screen tcell.Screen

	Camera   Camera
	Follow   int  // body index whose frame the view tracks, -1 for none
	Selected int  // body index shown in the inspector line
	Mono     bool // ignore body colors, draw in the terminal default

	DisplayName string

	// Scratch reused between frames
	points []vmath.Vec2
}

// NewView creates a view with an origin-centered camera and no follow target
func NewView(screen tcell.Screen, displayName string) *View {
	return &View{
		screen:      screen,
		Camera:      NewCamera(1),
		Follow:      -1,
		Selected:    0,
		DisplayName: displayName,
	}
}

// Draw renders one frame. Caller holds the world update lock
func (v *View) Draw(w *engine.World, playback *engine.Playback) {
	v.screen.Clear()
	width, height := v.screen.Size()
	bodies := w.Bodies()

	var followed *engine.Body
	if v.Follow >= 0 && v.Follow < len(bodies) {
		followed = bodies[v.Follow]
		// Track the followed body so its relative paths stay anchored on screen
		v.Camera.Center = followed.Pos
	}

	for _, b := range bodies {
		if !b.TrajectoryVisible {
			continue
		}
		v.drawPath(b, followed, width, height)
	}
	for i, b := range bodies {
		v.drawBody(i, b, width, height)
	}

	v.drawStatus(w, playback, width, height)
	v.screen.Show()
}

// drawPath plots a sampled trajectory polyline, dimmer toward the horizon tail
func (v *View) drawPath(b, followed *engine.Body, width, height int) {
	v.points = v.points[:0]
	if followed != nil {
		v.points = RelativePath(b.Traj, followed.Traj, v.points)
	} else {
		v.points = RelativePath(b.Traj, nil, v.points)
	}

	n := len(v.points)
	if n == 0 {
		return
	}
	stride := n / maxPathSamples
	if stride < 1 {
		stride = 1
	}

	bright := v.bodyStyle(b)
	dim := bright.Dim(true)

	for i := 0; i < n; i += stride {
		x, y := v.Camera.WorldToScreen(v.points[i], width, height)
		if x < 0 || x >= width || y < 0 || y >= height-2 {
			continue
		}
		style := bright
		if i > n/3 {
			style = dim
		}
		v.screen.SetContent(x, y, '·', nil, style)
	}
}

// drawBody places the body glyph at its current world position
func (v *View) drawBody(index int, b *engine.Body, width, height int) {
	x, y := v.Camera.WorldToScreen(b.Pos, width, height)
	if x < 0 || x >= width || y < 0 || y >= height-2 {
		return
	}

	glyph := 'o'
	if b.Radius >= 2 {
		glyph = 'O'
	}
	style := v.bodyStyle(b)
	if index == v.Selected {
		style = style.Bold(true).Underline(true)
	}
	v.screen.SetContent(x, y, glyph, nil, style)
}

// drawStatus renders the status line and the selected-body inspector line
func (v *View) drawStatus(w *engine.World, playback *engine.Playback, width, height int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkBlue)

	follow := "-"
	if b, ok := w.Body(v.Follow); ok {
		follow = b.Name
	}
	status := fmt.Sprintf(" %s | %s | G=%.3g | horizon %d/%d | bodies %d | follow %s ",
		v.DisplayName, playback.State(), w.Sim.GravitationalConst,
		w.Sim.TrajectoryPos, cap1(w), w.Count(), follow)
	v.putLine(0, height-2, status, style, width)

	inspect := " no body selected "
	if b, ok := w.Body(v.Selected); ok {
		inspect = fmt.Sprintf(" [%d] %s  m=%.3g r=%.3g  pos=(%.2f, %.2f)  vel=(%.2f, %.2f) ",
			v.Selected, b.Name, b.Mass, b.Radius, b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y)
	}
	v.putLine(0, height-1, inspect, tcell.StyleDefault, width)
}

func (v *View) bodyStyle(b *engine.Body) tcell.Style {
	if v.Mono || b.Color == "" {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.GetColor(b.Color))
}

func (v *View) putLine(x, y int, text string, style tcell.Style, width int) {
	for i, r := range text {
		if x+i >= width {
			break
		}
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func cap1(w *engine.World) int {
	if w.Count() == 0 {
		return 0
	}
	return w.Bodies()[0].Traj.Cap()
}

// CycleSelected moves the inspector to the next body, wrapping
func (v *View) CycleSelected(w *engine.World) {
	if w.Count() == 0 {
		v.Selected = 0
		return
	}
	v.Selected = (v.Selected + 1) % w.Count()
}

// ToggleFollow follows the selected body, or releases when already following it
func (v *View) ToggleFollow() {
	if v.Follow == v.Selected {
		v.Follow = -1
		return
	}
	v.Follow = v.Selected
}
