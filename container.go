package trellis

import "fmt"

// NotFound is returned by ChildPosition when the child is not held by the
// container.
const NotFound = -1

// Container is implemented by every element of the layout tree. Concrete
// types get the tree protocol by embedding Node (leaf), Group (ordered
// children) or Slot (at most one child) and calling the matching Init.
//
// SetParentShape is called whenever the parent's absolute rectangle changes.
// Implementations resolve their own rectangle from it and pass the result on
// to their children. Types with cached absolute state override it.
type Container interface {
	node() *Node
	SetParentShape(parent Rect)
}

// childStore is the per-variant storage behind a Node. insert may decline;
// removeAt and at may assume a valid index because Node checks it first.
type childStore interface {
	count() int
	at(index int) Container
	indexOf(child Container) int
	insert(child Container) bool
	removeAt(index int)
	clear() []Container
}

// Node carries the parent back-reference, the relative shape and the child
// storage shared by all containers. It has no children of its own unless a
// store is attached by Group or Slot.
type Node struct {
	// Name is used in debug output and panic messages. Optional.
	Name string

	// Shape places this node inside its parent's resolved rectangle.
	Shape RelativeRect

	self   Container
	parent Container
	store  childStore

	parentRect Rect
	rect       Rect

	releasers []func()
	disposed  bool
}

// Init binds n to the value that embeds it. It must be called once, before
// the node is used, with self being the outer type (for example the
// *FilledRect that embeds this Node).
func (n *Node) Init(self Container, shape RelativeRect) {
	n.init(self, shape, nil)
}

func (n *Node) init(self Container, shape RelativeRect, store childStore) {
	if self == nil {
		panic("trellis: Init with nil self")
	}
	if self.node() != n {
		panic("trellis: Init self does not embed this node")
	}
	n.self = self
	n.Shape = shape
	n.store = store
}

func (n *Node) node() *Node { return n }

func (n *Node) mustInit() {
	if n.self == nil {
		panic("trellis: node used before Init")
	}
}

func (n *Node) label() string {
	if n.Name != "" {
		return n.Name
	}
	return fmt.Sprintf("%T", n.self)
}

// Parent returns the container holding n, or nil for a root.
func (n *Node) Parent() Container {
	return n.parent
}

// Rect returns the absolute rectangle resolved by the last SetParentShape.
func (n *Node) Rect() Rect {
	return n.rect
}

// ParentRect returns the parent rectangle received by the last
// SetParentShape.
func (n *Node) ParentRect() Rect {
	return n.parentRect
}

// --- Tree protocol ---

// NumChildren returns the number of children. Leaf nodes always report 0.
func (n *Node) NumChildren() int {
	if n.store == nil {
		return 0
	}
	return n.store.count()
}

// GetChild returns the child at index. Panics if index is out of range or
// the child's back-reference and reverse lookup disagree with this node.
func (n *Node) GetChild(index int) Container {
	if index < 0 || index >= n.NumChildren() {
		panic("trellis: child index out of range")
	}
	child := n.store.at(index)
	if child == nil || child == n.self {
		panic("trellis: corrupt child storage")
	}
	if n.store.indexOf(child) != index {
		panic("trellis: child position does not match index")
	}
	if child.node().parent != n.self {
		panic("trellis: child's parent is not this node")
	}
	return child
}

// ChildPosition returns the index of child, or NotFound.
func (n *Node) ChildPosition(child Container) int {
	if n.store == nil || child == nil {
		return NotFound
	}
	return n.store.indexOf(child)
}

// AddChild attaches child to n. It reports false, leaving the tree unchanged,
// for a nil child. A child already attached to n is a successful no-op. A
// child owned by another container is detached from it first; if n then
// declines the child (a full Slot, or a leaf) it stays parentless and
// AddChild reports false.
//
// Panics if child is n or one of its ancestors.
func (n *Node) AddChild(child Container) bool {
	if child == nil {
		return false
	}
	n.mustInit()
	cn := child.node()
	cn.mustInit()
	if n.disposed || cn.disposed {
		panic(fmt.Sprintf("trellis: AddChild with disposed node %q", cn.label()))
	}

	if cn.parent == n.self {
		if n.ChildPosition(child) == NotFound {
			panic("trellis: child claims this parent but is not stored")
		}
		return true
	}
	if isAncestor(cn, n) {
		panic("trellis: adding child would create a cycle")
	}

	if cn.parent != nil {
		cn.parent.node().RemoveChild(child)
	}
	if n.ChildPosition(child) != NotFound {
		panic("trellis: parentless child already stored")
	}

	if n.store == nil || !n.store.insert(child) {
		cn.parent = nil
		return false
	}
	if n.ChildPosition(child) == NotFound {
		panic("trellis: insert accepted child but did not store it")
	}
	cn.parent = n.self

	if globalDebug {
		debugCheckTreeDepth(cn)
		debugCheckChildCount(n)
	}
	return true
}

// RemoveChild detaches child from n without disposing it.
// Panics if child does not belong to n.
func (n *Node) RemoveChild(child Container) {
	if child == nil {
		panic("trellis: cannot remove nil child")
	}
	cn := child.node()
	if cn.parent != n.self {
		panic("trellis: child's parent is not this node")
	}
	index := n.ChildPosition(child)
	if index == NotFound {
		panic("trellis: child claims this parent but is not stored")
	}
	n.store.removeAt(index)
	cn.parent = nil
	if n.ChildPosition(child) != NotFound {
		panic("trellis: child still stored after removal")
	}
}

// RemoveChildAt detaches and returns the child at index. Later children
// shift down by one.
func (n *Node) RemoveChildAt(index int) Container {
	child := n.GetChild(index)
	n.store.removeAt(index)
	child.node().parent = nil
	if n.ChildPosition(child) != NotFound {
		panic("trellis: child still stored after removal")
	}
	return child
}

// ClearChildren detaches every child. Children are not disposed.
func (n *Node) ClearChildren() {
	if n.store != nil {
		for _, child := range n.store.clear() {
			child.node().parent = nil
		}
	}
	if n.NumChildren() != 0 {
		panic("trellis: children remain after ClearChildren")
	}
}

// RemoveFromParent detaches n from its parent. No-op for a root.
func (n *Node) RemoveFromParent() {
	if n.parent == nil {
		return
	}
	n.parent.node().RemoveChild(n.self)
}

// --- Shape propagation ---

// SetParentShape resolves Shape against parent and propagates the result to
// every child.
func (n *Node) SetParentShape(parent Rect) {
	n.Propagate(n.Resolve(parent))
}

// Resolve records parent, evaluates Shape against it and returns the
// absolute rectangle. Overrides of SetParentShape start with this.
func (n *Node) Resolve(parent Rect) Rect {
	n.parentRect = parent
	n.rect = n.Shape.Get(parent)
	return n.rect
}

// Propagate calls SetParentShape on every child with r as their parent.
func (n *Node) Propagate(r Rect) {
	for i := 0; i < n.NumChildren(); i++ {
		n.GetChild(i).SetParentShape(r)
	}
}

// Reshape re-runs SetParentShape with the last parent rectangle, after Shape
// was changed in place.
func (n *Node) Reshape() {
	n.mustInit()
	n.self.SetParentShape(n.parentRect)
}

// --- Lifetime ---

// Hold registers release to run exactly once when the node is disposed.
// Widgets use it for registry entries and input subscriptions.
func (n *Node) Hold(release func()) {
	n.releasers = append(n.releasers, release)
}

// Dispose releases everything the node holds. The node must already be
// orphaned and childless; use DeleteTree to tear down a populated subtree.
func (n *Node) Dispose() {
	if n.disposed {
		panic(fmt.Sprintf("trellis: node %q disposed twice", n.label()))
	}
	if n.parent != nil {
		panic(fmt.Sprintf("trellis: dispose of node %q that still has a parent", n.label()))
	}
	if n.NumChildren() != 0 {
		panic(fmt.Sprintf("trellis: dispose of node %q that still has children", n.label()))
	}
	n.disposed = true
	for i := len(n.releasers) - 1; i >= 0; i-- {
		n.releasers[i]()
	}
	n.releasers = nil
}

// IsDisposed reports whether Dispose has run.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// DeleteTree detaches root from its parent and disposes the whole subtree
// bottom-up: for every node the last child is detached, its own subtree is
// deleted, and the node is disposed once it is childless.
func DeleteTree(root Container) {
	if root == nil {
		return
	}
	root.node().RemoveFromParent()
	deleteSubtree(root)
}

func deleteSubtree(c Container) {
	n := c.node()
	for num := n.NumChildren(); num > 0; {
		num--
		child := n.GetChild(num)
		n.RemoveChildAt(num)
		if n.NumChildren() != num {
			panic("trellis: child count did not shrink during DeleteTree")
		}
		deleteSubtree(child)
	}
	n.Dispose()
}

// Walk visits c and its descendants depth-first, parents before children.
func Walk(c Container, fn func(c Container, depth int)) {
	walk(c, 0, fn)
}

func walk(c Container, depth int, fn func(Container, int)) {
	fn(c, depth)
	n := c.node()
	for i := 0; i < n.NumChildren(); i++ {
		walk(n.GetChild(i), depth+1, fn)
	}
}

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; {
		if p == candidate {
			return true
		}
		if p.parent == nil {
			return false
		}
		p = p.parent.node()
	}
	return false
}

// --- Storage variants ---

// childList keeps children in insertion order.
type childList struct {
	children []Container
}

func (l *childList) count() int { return len(l.children) }

func (l *childList) at(index int) Container { return l.children[index] }

func (l *childList) indexOf(child Container) int {
	for i, c := range l.children {
		if c == child {
			return i
		}
	}
	return NotFound
}

func (l *childList) insert(child Container) bool {
	l.children = append(l.children, child)
	return true
}

// removeAt uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (l *childList) removeAt(index int) {
	if index < 0 || index >= len(l.children) {
		panic("trellis: child index out of range")
	}
	copy(l.children[index:], l.children[index+1:])
	l.children[len(l.children)-1] = nil
	l.children = l.children[:len(l.children)-1]
}

func (l *childList) clear() []Container {
	removed := l.children
	l.children = nil
	return removed
}

// childSlot holds zero or one child.
type childSlot struct {
	child Container
}

func (s *childSlot) count() int {
	if s.child == nil {
		return 0
	}
	return 1
}

func (s *childSlot) at(index int) Container {
	if index != 0 || s.child == nil {
		panic("trellis: child index out of range")
	}
	return s.child
}

func (s *childSlot) indexOf(child Container) int {
	if s.child != nil && child == s.child {
		return 0
	}
	return NotFound
}

func (s *childSlot) insert(child Container) bool {
	if s.child != nil {
		return false
	}
	s.child = child
	return true
}

func (s *childSlot) removeAt(index int) {
	if index != 0 || s.child == nil {
		panic("trellis: child index out of range")
	}
	s.child = nil
}

func (s *childSlot) clear() []Container {
	if s.child == nil {
		return nil
	}
	removed := []Container{s.child}
	s.child = nil
	return removed
}

// --- Concrete containers ---

// Group is a container of any number of children kept in insertion order.
// Removing a child shifts the later ones down, so indices must not be cached
// across mutations.
type Group struct {
	Node
	list childList
}

// NewGroup creates an ordered container with the given shape.
func NewGroup(shape RelativeRect) *Group {
	g := &Group{}
	g.Init(g, shape)
	return g
}

// Init binds the group to self, the value embedding it.
func (g *Group) Init(self Container, shape RelativeRect) {
	g.Node.init(self, shape, &g.list)
}

// Children returns the child list. The returned slice MUST NOT be mutated.
func (g *Group) Children() []Container {
	return g.list.children
}

// Slot is a container holding at most one child. Adding to a full slot
// fails. Interactive widgets embed it so their handle is a single,
// well-defined node.
type Slot struct {
	Node
	slot childSlot
}

// Init binds the slot to self, the value embedding it.
func (s *Slot) Init(self Container, shape RelativeRect) {
	s.Node.init(self, shape, &s.slot)
}

// Handle returns the held child, or nil.
func (s *Slot) Handle() Container {
	return s.slot.child
}
