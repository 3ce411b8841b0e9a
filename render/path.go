package render

import (
	"github.com/lixenwraith/orbitarium/core"
	"github.com/lixenwraith/orbitarium/vmath"
)

// RelativePath appends traj's positions to dst, optionally re-expressed
// relative to a followed body: sample i is shifted by -(f_i - f_0), where f is
// the followed trajectory. Matching indices are matching time, so the
// followed body itself renders stationary while every other path shows motion
// in its reference frame. Pure presentation transform, stored state is never
// rebased.
func RelativePath(traj, followed *core.Trajectory, dst []vmath.Vec2) []vmath.Vec2 {
	if traj == nil || traj.Len() == 0 {
		return dst
	}

	var origin vmath.Vec2
	followLen := 0
	if followed != nil && followed.Len() > 0 {
		front, _ := followed.Front()
		origin = front.Pos
		followLen = followed.Len()
	}

	for i := 0; i < traj.Len(); i++ {
		p := traj.At(i).Pos
		if i < followLen {
			p = p.Sub(followed.At(i).Pos.Sub(origin))
		}
		dst = append(dst, p)
	}
	return dst
}
