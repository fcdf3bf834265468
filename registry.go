package trellis

import (
	"slices"
	"time"
)

// Renderable draws itself onto a Surface during the render pass. It reads
// the absolute rectangles cached by the last SetParentShape.
type Renderable interface {
	Render(dst Surface)
}

// Updateable advances by dt during the update pass.
type Updateable interface {
	Update(dt time.Duration)
}

// Registries tolerate mutation from inside their own pass. A handle released
// during a pass is skipped for the rest of it and its storage is compacted
// when the pass ends. Registrations and order changes made during a pass take
// effect from the next pass.

// --- Render registry ---

// RenderHandle is a renderable's membership in a Scene's render registry.
type RenderHandle struct {
	r        Renderable
	reg      *renderRegistry
	slot     *renderSlot
	order    int
	enabled  bool
	released bool

	// OnEnable and OnDisable run when SetEnabled changes the flag.
	OnEnable  func()
	OnDisable func()
}

type renderSlot struct {
	h      *RenderHandle
	order  int // bucket the slot lives in
	live   bool
	placed bool
}

type renderRegistry struct {
	buckets  map[int][]*renderSlot
	orders   []int // sorted bucket keys
	walking  int
	pending  []*renderSlot
	reorders []*RenderHandle
	dirty    bool
}

func newRenderRegistry() *renderRegistry {
	return &renderRegistry{buckets: make(map[int][]*renderSlot)}
}

func (reg *renderRegistry) insert(h *RenderHandle) {
	slot := &renderSlot{h: h, order: h.order, live: true}
	h.slot = slot
	if reg.walking > 0 {
		reg.pending = append(reg.pending, slot)
		return
	}
	reg.place(slot)
}

func (reg *renderRegistry) place(slot *renderSlot) {
	order := slot.order
	slot.placed = true
	if _, ok := reg.buckets[order]; !ok {
		i, _ := slices.BinarySearch(reg.orders, order)
		reg.orders = slices.Insert(reg.orders, i, order)
	}
	reg.buckets[order] = append(reg.buckets[order], slot)
}

func (reg *renderRegistry) remove(h *RenderHandle) {
	slot := h.slot
	if slot == nil {
		return
	}
	slot.live = false
	h.slot = nil
	if reg.walking > 0 {
		reg.dirty = true
		return
	}
	reg.compactBucket(slot.order)
}

// reorder moves h to the end of the bucket for h.order. During a pass the
// current slot keeps drawing and the move happens when the pass ends.
func (reg *renderRegistry) reorder(h *RenderHandle) {
	if h.slot == nil {
		return
	}
	if !h.slot.placed {
		h.slot.order = h.order
		return
	}
	if reg.walking > 0 {
		reg.reorders = append(reg.reorders, h)
		return
	}
	reg.remove(h)
	reg.insert(h)
}

func (reg *renderRegistry) compactBucket(order int) {
	b, ok := reg.buckets[order]
	if !ok {
		return
	}
	b = slices.DeleteFunc(b, func(s *renderSlot) bool { return !s.live })
	if len(b) == 0 {
		delete(reg.buckets, order)
		if i, found := slices.BinarySearch(reg.orders, order); found {
			reg.orders = slices.Delete(reg.orders, i, i+1)
		}
		return
	}
	reg.buckets[order] = b
}

// walk visits enabled entries in ascending order key, insertion order within
// a key.
func (reg *renderRegistry) walk(fn func(h *RenderHandle)) {
	reg.walking++
	for _, order := range reg.orders {
		bucket := reg.buckets[order]
		for _, slot := range bucket {
			if !slot.live || !slot.h.enabled {
				continue
			}
			fn(slot.h)
		}
	}
	reg.walking--
	if reg.walking == 0 {
		reg.flush()
	}
}

func (reg *renderRegistry) flush() {
	reorders := reg.reorders
	reg.reorders = nil
	for _, h := range reorders {
		if h.released || h.slot == nil || !h.slot.placed {
			continue
		}
		h.slot.live = false
		reg.dirty = true
		h.slot = &renderSlot{h: h, order: h.order, live: true}
		reg.pending = append(reg.pending, h.slot)
	}
	if reg.dirty {
		reg.dirty = false
		for _, order := range slices.Clone(reg.orders) {
			reg.compactBucket(order)
		}
	}
	pending := reg.pending
	reg.pending = nil
	for _, slot := range pending {
		if slot.live {
			reg.place(slot)
		}
	}
}

func (reg *renderRegistry) len() int {
	n := 0
	for _, b := range reg.buckets {
		for _, s := range b {
			if s.live {
				n++
			}
		}
	}
	return n + len(reg.pending)
}

// AddRenderable registers r at the given order key. Lower keys draw first;
// entries sharing a key draw in registration order.
func (s *Scene) AddRenderable(r Renderable, order int, enabled bool) *RenderHandle {
	h := &RenderHandle{r: r, reg: s.renderables, order: order, enabled: enabled}
	s.renderables.insert(h)
	return h
}

// RenderAll draws every enabled renderable onto dst.
func (s *Scene) RenderAll(dst Surface) {
	s.renderables.walk(func(h *RenderHandle) {
		h.r.Render(dst)
	})
}

// Order returns the render order key.
func (h *RenderHandle) Order() int {
	return h.order
}

// SetOrder moves the renderable to another order key. It draws after the
// entries already registered under that key. Called during the render pass,
// the entry finishes the pass at its old position.
func (h *RenderHandle) SetOrder(order int) {
	h.order = order
	if h.released {
		return
	}
	h.reg.reorder(h)
}

// Enabled reports whether the renderable is drawn.
func (h *RenderHandle) Enabled() bool {
	return h.enabled
}

// SetEnabled turns drawing on or off, running OnEnable or OnDisable on a
// change.
func (h *RenderHandle) SetEnabled(enabled bool) {
	if h.enabled == enabled {
		return
	}
	h.enabled = enabled
	if enabled && h.OnEnable != nil {
		h.OnEnable()
	} else if !enabled && h.OnDisable != nil {
		h.OnDisable()
	}
}

// Release removes the renderable from the registry. Safe to call more than
// once and from inside the render pass.
func (h *RenderHandle) Release() {
	if h.released {
		return
	}
	h.released = true
	h.reg.remove(h)
}

// --- Update registry ---

// UpdateHandle is an updateable's membership in a Scene's update registry.
type UpdateHandle struct {
	u        Updateable
	reg      *updateRegistry
	enabled  bool
	released bool

	// OnEnable and OnDisable run when SetEnabled changes the flag.
	OnEnable  func()
	OnDisable func()
}

type updateRegistry struct {
	entries []*UpdateHandle
	walking int
	pending []*UpdateHandle
	dirty   bool
}

func (reg *updateRegistry) insert(h *UpdateHandle) {
	if reg.walking > 0 {
		reg.pending = append(reg.pending, h)
		return
	}
	reg.entries = append(reg.entries, h)
}

func (reg *updateRegistry) remove(h *UpdateHandle) {
	if reg.walking > 0 {
		reg.dirty = true
		return
	}
	reg.entries = slices.DeleteFunc(reg.entries, func(e *UpdateHandle) bool { return e == h })
}

func (reg *updateRegistry) walk(fn func(h *UpdateHandle)) {
	reg.walking++
	for _, h := range reg.entries {
		if h.released || !h.enabled {
			continue
		}
		fn(h)
	}
	reg.walking--
	if reg.walking > 0 {
		return
	}
	if reg.dirty {
		reg.dirty = false
		reg.entries = slices.DeleteFunc(reg.entries, func(e *UpdateHandle) bool { return e.released })
	}
	for _, h := range reg.pending {
		if !h.released {
			reg.entries = append(reg.entries, h)
		}
	}
	reg.pending = nil
}

// len counts live entries, including ones registered during the current
// pass.
func (reg *updateRegistry) len() int {
	n := 0
	for _, h := range reg.entries {
		if !h.released {
			n++
		}
	}
	for _, h := range reg.pending {
		if !h.released {
			n++
		}
	}
	return n
}

// AddUpdateable registers u for the update pass, enabled.
func (s *Scene) AddUpdateable(u Updateable) *UpdateHandle {
	h := &UpdateHandle{u: u, reg: s.updateables, enabled: true}
	s.updateables.insert(h)
	return h
}

// UpdateAll advances every enabled updateable by dt.
func (s *Scene) UpdateAll(dt time.Duration) {
	s.updateables.walk(func(h *UpdateHandle) {
		h.u.Update(dt)
	})
}

// Enabled reports whether the updateable receives ticks.
func (h *UpdateHandle) Enabled() bool {
	return h.enabled
}

// SetEnabled turns ticking on or off, running OnEnable or OnDisable on a
// change.
func (h *UpdateHandle) SetEnabled(enabled bool) {
	if h.enabled == enabled {
		return
	}
	h.enabled = enabled
	if enabled && h.OnEnable != nil {
		h.OnEnable()
	} else if !enabled && h.OnDisable != nil {
		h.OnDisable()
	}
}

// Release removes the updateable from the registry. Safe to call more than
// once and from inside the update pass.
func (h *UpdateHandle) Release() {
	if h.released {
		return
	}
	h.released = true
	h.reg.remove(h)
}
