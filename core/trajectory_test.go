package core

import (
	"testing"

	"github.com/lixenwraith/orbitarium/parameter"
	"github.com/lixenwraith/orbitarium/vmath"
)

func snap(x float64) Snapshot {
	return Snapshot{Pos: vmath.Vec2{X: x}}
}

func TestNewTrajectorySingleElement(t *testing.T) {
	tr := NewTrajectory(snap(1))
	if tr.Len() != 1 {
		t.Fatalf("expected length 1, got %d", tr.Len())
	}
	front, ok := tr.Front()
	if !ok || front.Pos.X != 1 {
		t.Errorf("front = %v ok = %v", front, ok)
	}
	if tr.Cap() != parameter.TrajectoryLen {
		t.Errorf("cap = %d, want %d", tr.Cap(), parameter.TrajectoryLen)
	}
}

func TestPushBackPopFrontOrder(t *testing.T) {
	tr := NewTrajectory(snap(0))
	for i := 1; i < 5; i++ {
		if !tr.PushBack(snap(float64(i))) {
			t.Fatalf("push %d failed", i)
		}
	}
	if tr.Len() != 5 {
		t.Fatalf("len = %d, want 5", tr.Len())
	}
	for i := 0; i < 5; i++ {
		s, ok := tr.PopFront()
		if !ok || s.Pos.X != float64(i) {
			t.Errorf("pop %d: got %v ok=%v", i, s.Pos.X, ok)
		}
	}
	if _, ok := tr.PopFront(); ok {
		t.Error("pop on empty trajectory must fail")
	}
}

func TestPushBackRejectsWhenFull(t *testing.T) {
	tr := NewTrajectory(snap(0))
	for i := 1; i < parameter.TrajectoryLen; i++ {
		if !tr.PushBack(snap(float64(i))) {
			t.Fatalf("push %d failed before capacity", i)
		}
	}
	if tr.PushBack(snap(-1)) {
		t.Error("push beyond horizon capacity must fail")
	}
	if tr.Len() != parameter.TrajectoryLen {
		t.Errorf("len = %d, want %d", tr.Len(), parameter.TrajectoryLen)
	}
}

func TestRingWrapAround(t *testing.T) {
	// Consume then refill so head is offset, verifying modular indexing
	tr := NewTrajectory(snap(0))
	for i := 1; i < parameter.TrajectoryLen; i++ {
		tr.PushBack(snap(float64(i)))
	}
	for i := 0; i < 100; i++ {
		tr.PopFront()
	}
	for i := 0; i < 100; i++ {
		tr.PushBack(snap(float64(parameter.TrajectoryLen + i)))
	}
	if tr.Len() != parameter.TrajectoryLen {
		t.Fatalf("len = %d after refill", tr.Len())
	}
	if got := tr.At(0).Pos.X; got != 100 {
		t.Errorf("At(0) = %v, want 100", got)
	}
	if got := tr.At(tr.Len() - 1).Pos.X; got != float64(parameter.TrajectoryLen+99) {
		t.Errorf("At(last) = %v", got)
	}
}

func TestResetKeepsCurrentHead(t *testing.T) {
	tr := NewTrajectory(snap(0))
	for i := 1; i < 50; i++ {
		tr.PushBack(snap(float64(i)))
	}
	tr.PopFront()
	tr.PopFront() // head now at value 2

	tr.Reset()
	if tr.Len() != 1 {
		t.Fatalf("len after reset = %d, want 1", tr.Len())
	}
	front, _ := tr.Front()
	if front.Pos.X != 2 {
		t.Errorf("reset kept %v, want head value 2", front.Pos.X)
	}

	// Reset is idempotent
	tr.Reset()
	if tr.Len() != 1 {
		t.Errorf("second reset changed length to %d", tr.Len())
	}
}

func TestSetFront(t *testing.T) {
	tr := NewTrajectory(snap(0))
	tr.SetFront(snap(42))
	front, _ := tr.Front()
	if front.Pos.X != 42 {
		t.Errorf("SetFront not applied, front = %v", front.Pos.X)
	}
}
