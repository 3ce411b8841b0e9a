package status

import (
	"sync"
	"testing"
)

func TestMetricPointerStability(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("engine.ticks")
	b := r.Ints.Get("engine.ticks")
	if a != b {
		t.Error("repeated Get must return the same pointer")
	}
	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("metric value = %d, want 3", b.Load())
	}
}

func TestAtomicFloat(t *testing.T) {
	r := NewRegistry()
	f := r.Floats.Get("sim.gravity")
	f.Set(6.674e-11)
	if got := f.Get(); got != 6.674e-11 {
		t.Errorf("float metric = %v", got)
	}
}

func TestKeysSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("b")
	r.Ints.Get("a")
	r.Ints.Get("c")
	keys := r.Ints.Keys()
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("keys = %v", keys)
	}
	if r.Ints.Count() != 3 {
		t.Errorf("count = %d", r.Ints.Count())
	}
}

func TestConcurrentGet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Ints.Get("shared").Add(1)
		}()
	}
	wg.Wait()
	if got := r.Ints.Get("shared").Load(); got != 16 {
		t.Errorf("shared counter = %d, want 16", got)
	}
}
