package uikit

// ============================================================================
// Node Tree
// ============================================================================
//
// Nodes form the UI tree the dispatch and layout subsystems operate on.
// Ownership is strictly hierarchical: a parent owns its children, the parent
// pointer is non-owning. The tree is mutated by the host between frames,
// never by the dispatch or layout code, which treat node references as weak
// and re-check liveness before every dereference.

// Node is a rectangular element in the UI tree.
type Node struct {
	name string

	// position is where the pivot point sits in parent space. The top-left
	// corner is derived from pivot and size.
	position Vec2
	size     Vec2
	pivot    Vec2

	active        bool
	destroyed     bool
	raycastTarget bool

	parent   *Node
	children []*Node

	// components hold attached behaviors: event handler implementations,
	// layout constraints, layout groups. Capability checks are interface
	// assertions over this list.
	components []any
}

// NewNode creates an active node with a centered pivot.
func NewNode(name string) *Node {
	return &Node{
		name:          name,
		active:        true,
		raycastTarget: true,
		pivot:         Vec2{0.5, 0.5},
	}
}

// Name returns the node's debug name.
func (n *Node) Name() string { return n.name }

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// Children returns the node's children in declared order. The returned slice
// is the node's own; callers must not mutate it.
func (n *Node) Children() []*Node { return n.children }

// AddChild appends c to n's children, detaching it from any previous parent.
func (n *Node) AddChild(c *Node) *Node {
	if c == nil || c == n {
		return n
	}
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	c.parent = n
	n.children = append(n.children, c)
	return n
}

// RemoveChild detaches c from n. No-op if c is not a child of n.
func (n *Node) RemoveChild(c *Node) {
	for i, child := range n.children {
		if child == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			return
		}
	}
}

// SetActive enables or disables the node. A disabled node and its subtree
// receive no events and are skipped by layout.
func (n *Node) SetActive(active bool) { n.active = active }

// Active reports the node's own active flag, ignoring ancestors.
func (n *Node) Active() bool { return n.active }

// ActiveInTree reports whether the node and all of its ancestors are active
// and not destroyed.
func (n *Node) ActiveInTree() bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.destroyed || !cur.active {
			return false
		}
	}
	return n != nil
}

// Destroy marks the node and its whole subtree destroyed and detaches the
// node from its parent. References held elsewhere (pointer records, hit
// results) observe the destroyed flag and treat the node as absent.
func (n *Node) Destroy() {
	if n == nil || n.destroyed {
		return
	}
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
	n.markDestroyed()
}

func (n *Node) markDestroyed() {
	n.destroyed = true
	for _, c := range n.children {
		c.markDestroyed()
	}
}

// Alive reports whether the node exists and has not been destroyed.
func (n *Node) Alive() bool { return n != nil && !n.destroyed }

// SetRaycastTarget controls whether hit tests may return this node.
func (n *Node) SetRaycastTarget(v bool) { n.raycastTarget = v }

// RaycastTarget reports whether hit tests may return this node.
func (n *Node) RaycastTarget() bool { return n.raycastTarget }

// ============================================================================
// Rect Access
// ============================================================================

// SetPivot sets the pivot in normalized [0,1] coordinates. The pivot is the
// point of the rect that Position refers to.
func (n *Node) SetPivot(p Vec2) { n.pivot = p }

// Pivot returns the normalized pivot.
func (n *Node) Pivot() Vec2 { return n.pivot }

// SetPosition places the pivot point in parent space.
func (n *Node) SetPosition(p Vec2) { n.position = p }

// Position returns the pivot point in parent space.
func (n *Node) Position() Vec2 { return n.position }

// SetSize sets the rect extent. Negative extents clamp to zero. The pivot
// point stays fixed, so resizing shifts edges around the pivot.
func (n *Node) SetSize(s Vec2) {
	if s.X < 0 {
		s.X = 0
	}
	if s.Y < 0 {
		s.Y = 0
	}
	n.size = s
}

// Size returns the rect extent.
func (n *Node) Size() Vec2 { return n.size }

// Rect returns the node's rect in parent space, top-left anchored.
func (n *Node) Rect() Rect {
	return Rect{
		X:      n.position.X - n.pivot.X*n.size.X,
		Y:      n.position.Y - n.pivot.Y*n.size.Y,
		Width:  n.size.X,
		Height: n.size.Y,
	}
}

// WorldRect returns the node's rect in root (screen) space by accumulating
// ancestor offsets.
func (n *Node) WorldRect() Rect {
	r := n.Rect()
	for cur := n.parent; cur != nil; cur = cur.parent {
		pr := cur.Rect()
		r.X += pr.X
		r.Y += pr.Y
	}
	return r
}

// SetInset positions the node so its leading edge on the given axis sits at
// inset from the parent's leading edge. Size is untouched; only the pivot
// point moves.
func (n *Node) SetInset(axis int, inset float32) {
	n.position.SetAxis(axis, inset+n.pivot.Axis(axis)*n.size.Axis(axis))
}

// SetInsetAndSize sets both the leading-edge inset and the extent along the
// given axis. Negative sizes clamp to zero.
func (n *Node) SetInsetAndSize(axis int, inset, size float32) {
	if size < 0 {
		size = 0
	}
	n.size.SetAxis(axis, size)
	n.SetInset(axis, inset)
}

// ============================================================================
// Components
// ============================================================================

// AddComponent attaches a behavior to the node. Components are visited in
// attachment order by capability queries.
func (n *Node) AddComponent(c any) *Node {
	if c != nil {
		n.components = append(n.components, c)
	}
	return n
}

// Components returns the attached components. Callers must not mutate the
// returned slice.
func (n *Node) Components() []any { return n.components }

// ============================================================================
// Geometry Provider
// ============================================================================

// Geometry exposes the scene-graph queries the dispatch and layout code
// need. The node tree itself satisfies it through TreeGeometry; a host with
// its own scene graph can substitute an adapter.
type Geometry interface {
	GetRect(n *Node) Rect
	GetParent(n *Node) *Node
	GetChildren(n *Node) []*Node
	IsActiveAndEnabled(n *Node) bool
	IsDestroyed(n *Node) bool
}

// TreeGeometry is the default Geometry over the built-in node tree.
type TreeGeometry struct{}

func (TreeGeometry) GetRect(n *Node) Rect         { return n.WorldRect() }
func (TreeGeometry) GetParent(n *Node) *Node      { return n.Parent() }
func (TreeGeometry) GetChildren(n *Node) []*Node  { return n.Children() }
func (TreeGeometry) IsActiveAndEnabled(n *Node) bool {
	return n != nil && n.ActiveInTree()
}
func (TreeGeometry) IsDestroyed(n *Node) bool { return n == nil || n.destroyed }
