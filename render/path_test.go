package render

import (
	"testing"

	"github.com/lixenwraith/orbitarium/core"
	"github.com/lixenwraith/orbitarium/vmath"
)

func traj(positions ...vmath.Vec2) *core.Trajectory {
	t := core.NewTrajectory(core.Snapshot{Pos: positions[0]})
	for _, p := range positions[1:] {
		t.PushBack(core.Snapshot{Pos: p})
	}
	return t
}

func TestRelativePathWithoutFollow(t *testing.T) {
	tr := traj(vmath.Vec2{X: 1}, vmath.Vec2{X: 2}, vmath.Vec2{X: 3})
	got := RelativePath(tr, nil, nil)
	if len(got) != 3 {
		t.Fatalf("len = %d", len(got))
	}
	for i, want := range []float64{1, 2, 3} {
		if got[i].X != want {
			t.Errorf("point %d = %v, want x=%v", i, got[i], want)
		}
	}
}

// A body relative to its own trajectory must collapse to a single stationary point
func TestRelativePathFollowedBodyIsStationary(t *testing.T) {
	tr := traj(vmath.Vec2{X: 5, Y: 1}, vmath.Vec2{X: 7, Y: 2}, vmath.Vec2{X: 11, Y: 4})
	got := RelativePath(tr, tr, nil)
	if len(got) != 3 {
		t.Fatalf("len = %d", len(got))
	}
	for i, p := range got {
		if p != (vmath.Vec2{X: 5, Y: 1}) {
			t.Errorf("point %d = %v, want anchor (5, 1)", i, p)
		}
	}
}

func TestRelativePathSubtractsMatchingIndices(t *testing.T) {
	// Both bodies drift +1 x per step: in the followed frame the other body
	// keeps its initial offset
	a := traj(vmath.Vec2{X: 0}, vmath.Vec2{X: 1}, vmath.Vec2{X: 2})
	f := traj(vmath.Vec2{X: 10}, vmath.Vec2{X: 11}, vmath.Vec2{X: 12})

	got := RelativePath(a, f, nil)
	for i, p := range got {
		if p.X != 0 {
			t.Errorf("point %d = %v, want stationary at x=0 in followed frame", i, p)
		}
	}
}

func TestRelativePathAppendsToDst(t *testing.T) {
	tr := traj(vmath.Vec2{X: 1})
	dst := make([]vmath.Vec2, 0, 8)
	got := RelativePath(tr, nil, dst)
	if len(got) != 1 || cap(got) != 8 {
		t.Errorf("dst reuse broken: len=%d cap=%d", len(got), cap(got))
	}
}

func TestRelativePathNilTrajectory(t *testing.T) {
	if got := RelativePath(nil, nil, nil); got != nil {
		t.Errorf("nil trajectory must produce no points, got %v", got)
	}
}
