package trellis

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the container tree, the render
// and update registries, the input source and the optional event sink.
// Every widget is constructed against a Scene.
type Scene struct {
	// ClearColor is used to fill the screen before the render pass. The zero
	// value leaves the screen untouched.
	ClearColor Color

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	root  *Group
	size  Vec2
	sink  EventSink
	debug bool

	renderables *renderRegistry
	updateables *updateRegistry

	// Input state
	handlers    handlerRegistry
	cursor      Vec2
	cursorKnown bool
	pointers    pointerSource // nil unless driven by Run
	lastMouse   Vec2
	mouseKnown  bool
	lastTouch   Vec2
	touchID     ebiten.TouchID
	touchActive bool
	touchBuf    []ebiten.TouchID

	// Scripted input and capture
	injectQueue     []pointerSample
	injectDown      bool
	testRunner      *TestRunner
	screenshotQueue []string

	closed bool
}

// NewScene creates a new scene with a root group that fills the window.
func NewScene() *Scene {
	s := &Scene{
		ScreenshotDir: "screenshots",
		root:          NewGroup(Fill),
		renderables:   newRenderRegistry(),
		updateables:   &updateRegistry{},
	}
	s.root.Name = "root"
	return s
}

// Root returns the scene's root group.
func (s *Scene) Root() *Group {
	return s.root
}

// Size returns the window size last passed to Resize.
func (s *Scene) Size() Vec2 {
	return s.size
}

// Cursor returns the last known pointer position.
func (s *Scene) Cursor() Vec2 {
	return s.cursor
}

// Resize records the new window size, notifies EventResize subscribers and
// propagates the window rectangle down from the root. It must run before the
// next render pass reads cached rectangles.
func (s *Scene) Resize(width, height int) {
	s.size = Vec2{float64(width), float64(height)}
	s.Dispatch(Event{Type: EventResize, Width: width, Height: height})
	s.Layout()
}

// Layout propagates the current window rectangle from the root.
func (s *Scene) Layout() {
	s.root.SetParentShape(Rect{0, 0, s.size.X, s.size.Y})
}

// Update processes one frame of input, then runs the update pass.
func (s *Scene) Update(dt time.Duration) {
	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()

	if s.debug {
		stats.inputTime = time.Since(t0)
		t0 = time.Now()
	}

	s.UpdateAll(dt)

	if s.debug {
		stats.updateTime = time.Since(t0)
		stats.updateables = s.updateables.len()
		s.debugLog("update", stats)
	}
}

// Render runs the render pass onto dst, followed by the debug overlay when
// debug mode is on.
func (s *Scene) Render(dst Surface) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.RenderAll(dst)

	if s.debug {
		s.renderDebug(dst)
		s.debugLog("render", debugStats{
			renderTime:  time.Since(t0),
			renderables: s.renderables.len(),
		})
	}
}

// Draw clears screen to ClearColor, renders the scene onto it and flushes
// queued screenshots.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.RGBA())
	}
	s.Render(NewImageSurface(screen))
	s.flushScreenshots(screen)
}

// Close tears down the whole tree, releasing every widget's registrations
// and subscriptions. The scene must not be used afterwards.
func (s *Scene) Close() {
	if s.closed {
		return
	}
	s.closed = true
	DeleteTree(s.root)
}

// SetEventSink sets the optional receiver of widget events.
func (s *Scene) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, tree depth and
// child count warnings and per-frame timing stats are printed to stderr, and
// Render draws container guides: the parent rectangle (red), the resolved
// shape (azure) and the anchor box (orange, with white corner markers).
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// DebugMode reports whether debug mode is on.
func (s *Scene) DebugMode() bool {
	return s.debug
}

// globalDebug mirrors the most recently set Scene debug flag so that tree
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool
