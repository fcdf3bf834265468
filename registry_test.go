package trellis

import (
	"strings"
	"testing"
	"time"
)

// fnRenderable adapts a func to Renderable.
type fnRenderable func(dst Surface)

func (f fnRenderable) Render(dst Surface) { f(dst) }

// fnUpdateable adapts a func to Updateable.
type fnUpdateable func(dt time.Duration)

func (f fnUpdateable) Update(dt time.Duration) { f(dt) }

func recorder(log *[]string, name string) fnRenderable {
	return func(Surface) { *log = append(*log, name) }
}

func TestRenderOrderIndependentOfConstruction(t *testing.T) {
	s := NewScene()
	var log []string
	s.AddRenderable(recorder(&log, "two"), 2, true)
	s.AddRenderable(recorder(&log, "one"), 1, true)
	s.AddRenderable(recorder(&log, "two-b"), 2, true)
	s.AddRenderable(recorder(&log, "neg"), -5, true)

	s.RenderAll(&recordingSurface{})

	if got := strings.Join(log, ","); got != "neg,one,two,two-b" {
		t.Errorf("render order = %s", got)
	}
}

func TestDisabledRenderableNeverDraws(t *testing.T) {
	s := NewScene()
	var log []string
	h := s.AddRenderable(recorder(&log, "hidden"), 0, false)
	s.RenderAll(&recordingSurface{})
	if len(log) != 0 {
		t.Fatalf("disabled renderable drew: %v", log)
	}

	h.SetEnabled(true)
	s.RenderAll(&recordingSurface{})
	if len(log) != 1 {
		t.Errorf("enabled renderable should draw once, log = %v", log)
	}
}

func TestRenderHandleEnableHooks(t *testing.T) {
	s := NewScene()
	h := s.AddRenderable(fnRenderable(func(Surface) {}), 0, true)
	var enables, disables int
	h.OnEnable = func() { enables++ }
	h.OnDisable = func() { disables++ }

	h.SetEnabled(true) // unchanged
	h.SetEnabled(false)
	h.SetEnabled(false)
	h.SetEnabled(true)

	if enables != 1 || disables != 1 {
		t.Errorf("enables=%d disables=%d, want 1 each", enables, disables)
	}
}

func TestRenderSetOrder(t *testing.T) {
	s := NewScene()
	var log []string
	a := s.AddRenderable(recorder(&log, "a"), 0, true)
	s.AddRenderable(recorder(&log, "b"), 1, true)

	a.SetOrder(2)
	s.RenderAll(&recordingSurface{})
	if got := strings.Join(log, ","); got != "b,a" {
		t.Errorf("order after SetOrder = %s", got)
	}
	if a.Order() != 2 {
		t.Errorf("Order = %d", a.Order())
	}
}

func TestRenderSetOrderDuringPass(t *testing.T) {
	tests := []struct {
		name        string
		to          int
		first, next string
	}{
		{"later bucket", 3, "a,b,c", "a,c,b"},
		{"visited bucket", 0, "a,b,c", "b,a,c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScene()
			var log []string
			var hb *RenderHandle
			moved := false
			s.AddRenderable(fnRenderable(func(Surface) {
				log = append(log, "a")
				if !moved {
					moved = true
					hb.SetOrder(tt.to)
				}
			}), 1, true)
			hb = s.AddRenderable(recorder(&log, "b"), 2, true)
			s.AddRenderable(recorder(&log, "c"), 3, true)

			s.RenderAll(&recordingSurface{})
			if got := strings.Join(log, ","); got != tt.first {
				t.Errorf("first pass = %s, want %s", got, tt.first)
			}
			if hb.Order() != tt.to {
				t.Errorf("Order = %d, want %d", hb.Order(), tt.to)
			}

			log = nil
			s.RenderAll(&recordingSurface{})
			if got := strings.Join(log, ","); got != tt.next {
				t.Errorf("second pass = %s, want %s", got, tt.next)
			}
			if n := s.renderables.len(); n != 3 {
				t.Errorf("registry len = %d, want 3", n)
			}
		})
	}
}

func TestRenderSetOrderThenReleaseDuringPass(t *testing.T) {
	s := NewScene()
	var log []string
	var hb *RenderHandle
	s.AddRenderable(fnRenderable(func(Surface) {
		log = append(log, "a")
		if hb != nil {
			hb.SetOrder(5)
			hb.Release()
			hb = nil
		}
	}), 0, true)
	hb = s.AddRenderable(recorder(&log, "b"), 1, true)

	s.RenderAll(&recordingSurface{})
	log = nil
	s.RenderAll(&recordingSurface{})
	if got := strings.Join(log, ","); got != "a" {
		t.Errorf("second pass = %s, want a", got)
	}
	if n := s.renderables.len(); n != 1 {
		t.Errorf("registry len = %d, want 1", n)
	}
}

func TestRenderReleaseDuringPass(t *testing.T) {
	s := NewScene()
	var log []string
	var second *RenderHandle
	var self *RenderHandle
	self = s.AddRenderable(fnRenderable(func(Surface) {
		log = append(log, "self")
		self.Release()
		second.Release()
	}), 0, true)
	second = s.AddRenderable(recorder(&log, "second"), 0, true)
	s.AddRenderable(recorder(&log, "third"), 1, true)

	s.RenderAll(&recordingSurface{})
	if got := strings.Join(log, ","); got != "self,third" {
		t.Errorf("first pass = %s", got)
	}

	log = nil
	s.RenderAll(&recordingSurface{})
	if got := strings.Join(log, ","); got != "third" {
		t.Errorf("second pass = %s", got)
	}
	if n := s.renderables.len(); n != 1 {
		t.Errorf("registry len = %d, want 1", n)
	}
}

func TestRenderAddDuringPassIsDeferred(t *testing.T) {
	s := NewScene()
	var log []string
	added := false
	s.AddRenderable(fnRenderable(func(Surface) {
		log = append(log, "adder")
		if !added {
			added = true
			s.AddRenderable(recorder(&log, "late"), -1, true)
		}
	}), 0, true)

	s.RenderAll(&recordingSurface{})
	if got := strings.Join(log, ","); got != "adder" {
		t.Errorf("first pass = %s", got)
	}
	log = nil
	s.RenderAll(&recordingSurface{})
	if got := strings.Join(log, ","); got != "late,adder" {
		t.Errorf("second pass = %s", got)
	}
}

func TestRenderReleaseIdempotent(t *testing.T) {
	s := NewScene()
	h := s.AddRenderable(fnRenderable(func(Surface) {}), 3, true)
	h.Release()
	h.Release()
	if n := s.renderables.len(); n != 0 {
		t.Errorf("len = %d, want 0", n)
	}
	if len(s.renderables.orders) != 0 {
		t.Errorf("empty bucket kept: %v", s.renderables.orders)
	}
}

func TestUpdateAllInInsertionOrder(t *testing.T) {
	s := NewScene()
	var log []string
	var dts []time.Duration
	add := func(name string) *UpdateHandle {
		return s.AddUpdateable(fnUpdateable(func(dt time.Duration) {
			log = append(log, name)
			dts = append(dts, dt)
		}))
	}
	add("a")
	b := add("b")
	add("c")
	b.SetEnabled(false)

	s.UpdateAll(16 * time.Millisecond)

	if got := strings.Join(log, ","); got != "a,c" {
		t.Errorf("update order = %s", got)
	}
	for _, dt := range dts {
		if dt != 16*time.Millisecond {
			t.Errorf("dt = %v", dt)
		}
	}
}

func TestUpdateSelfReleaseDuringPass(t *testing.T) {
	s := NewScene()
	var count int
	var h *UpdateHandle
	h = s.AddUpdateable(fnUpdateable(func(time.Duration) {
		count++
		h.Release()
	}))
	var after int
	s.AddUpdateable(fnUpdateable(func(time.Duration) { after++ }))

	s.UpdateAll(time.Millisecond)
	s.UpdateAll(time.Millisecond)

	if count != 1 {
		t.Errorf("self-releasing updateable ran %d times, want 1", count)
	}
	if after != 2 {
		t.Errorf("following updateable ran %d times, want 2", after)
	}
	if len(s.updateables.entries) != 1 {
		t.Errorf("entries = %d, want 1", len(s.updateables.entries))
	}
}

func TestUpdateAddDuringPassIsDeferred(t *testing.T) {
	s := NewScene()
	var lateRuns int
	added := false
	s.AddUpdateable(fnUpdateable(func(time.Duration) {
		if !added {
			added = true
			s.AddUpdateable(fnUpdateable(func(time.Duration) { lateRuns++ }))
		}
	}))

	s.UpdateAll(time.Millisecond)
	if lateRuns != 0 {
		t.Fatalf("updateable added mid-pass ran in the same pass")
	}
	s.UpdateAll(time.Millisecond)
	if lateRuns != 1 {
		t.Errorf("lateRuns = %d, want 1", lateRuns)
	}
}

func TestUpdateLenDuringPass(t *testing.T) {
	s := NewScene()
	var self *UpdateHandle
	lens := map[string]int{}
	self = s.AddUpdateable(fnUpdateable(func(time.Duration) {
		self.Release()
		lens["after release"] = s.updateables.len()
		s.AddUpdateable(fnUpdateable(func(time.Duration) {}))
		lens["after add"] = s.updateables.len()
	}))
	s.AddUpdateable(fnUpdateable(func(time.Duration) {}))

	s.UpdateAll(time.Millisecond)

	if lens["after release"] != 1 || lens["after add"] != 2 {
		t.Errorf("live counts during pass = %v, want 1 then 2", lens)
	}
	if n := s.updateables.len(); n != 2 {
		t.Errorf("len after pass = %d, want 2", n)
	}
}
