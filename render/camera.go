package render

import "github.com/lixenwraith/orbitarium/vmath"

// cellAspect compensates for terminal cells being roughly twice as tall as
// wide, so circles stay circular on screen
const cellAspect = 2.0

// Camera maps world coordinates to terminal cells. Scale is world units per
// cell column; rows cover cellAspect times more world distance.
type Camera struct {
	Center vmath.Vec2
	Scale  float64
}

// NewCamera creates a camera centered on the origin
func NewCamera(scale float64) Camera {
	if scale <= 0 {
		scale = 1
	}
	return Camera{Scale: scale}
}

// WorldToScreen projects a world position to cell coordinates for a screen of
// the given size. Screen y grows downward
func (c *Camera) WorldToScreen(p vmath.Vec2, width, height int) (int, int) {
	d := p.Sub(c.Center)
	x := float64(width)/2 + d.X/c.Scale
	y := float64(height)/2 - d.Y/(c.Scale*cellAspect)
	return int(x + 0.5), int(y + 0.5)
}

// Pan shifts the view center by the given number of cells
func (c *Camera) Pan(dxCells, dyCells float64) {
	c.Center.X += dxCells * c.Scale
	c.Center.Y += dyCells * c.Scale * cellAspect
}

// Zoom multiplies the scale; factor > 1 zooms out, < 1 zooms in
func (c *Camera) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	c.Scale *= factor
}
