// Package trellis is a retained-mode GUI layout and widget library for
// [Ebitengine].
//
// # Quick start
//
// [Run] creates a window and game loop for a [Scene]:
//
//	scene := trellis.NewScene()
//	// ... add containers to scene.Root() ...
//	trellis.Run(scene, trellis.RunConfig{
//		Title: "Controls", Width: 300, Height: 300,
//	})
//
// To drive the scene from your own [ebiten.Game], call [Scene.Resize] from
// Layout when the size changes, [Scene.Update] from Update and [Scene.Draw]
// from Draw.
//
// # Relative geometry
//
// Every container has a [RelativeRect] shape: a [RelativePosition] and a
// [RelativeSize], each an anchor (a fraction of the parent rectangle) plus a
// pixel offset. A shape resolves against its parent's absolute rectangle:
//
//	// 35px inset from the top-left, full width minus 70px, 20px tall.
//	shape := trellis.RectOf(
//		trellis.Vec2{}, trellis.Vec2{X: 35, Y: 35},
//		trellis.Vec2{X: 1}, trellis.Vec2{X: -70, Y: 20},
//	)
//
// # Containers
//
// A [Container] owns its children. [Group] keeps an ordered list of children;
// [Slot] holds at most one. Custom containers embed [Node], [Group] or [Slot]
// and bind themselves with Init:
//
//	type Panel struct{ trellis.Group }
//
//	p := &Panel{}
//	p.Init(p, shape)
//
// AddChild detaches the child from its previous parent. SetParentShape
// resolves a container's rectangle and propagates it to its children; the
// scene calls it on the root whenever the window changes size. Contract
// violations such as out-of-range indices, removing a child from the wrong
// parent, or disposing a node twice panic.
//
// [DeleteTree] tears a subtree down bottom-up: every node is detached and
// disposed, which releases the render and update registrations and input
// subscriptions it holds.
//
// # Widgets
//
// [FilledRect], [BorderedRect] and [BorderedFilledRect] paint their resolved
// rectangle. [Limiter] enforces a minimum size. [Slider] maps a value range
// onto a draggable handle and [Toggle] animates a handle between two
// positions. Both keep their handle as the single child of a Slot.
//
// # Registries
//
// Each scene keeps a render registry ordered by integer order (lower first,
// then insertion order) and an update registry in insertion order. Entries
// can be disabled or released at any time, including from inside a pass.
//
// # Animation and ECS
//
// [TweenShape] animates a container's shape with [gween]. Widget events can
// be forwarded to a [Donburi] world with the ecs subpackage.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package trellis
