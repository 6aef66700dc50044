package layout

import "github.com/agiangrant/uikit"

// ============================================================================
// Rebuild Driver
// ============================================================================
//
// Layout runs at most once per node per tick. MarkDirty records the layout
// root owning a changed node; Flush rebuilds every queued root. A mark
// arriving while a flush is in progress is deferred to the next flush
// rather than recursing.

// Rebuilder queues dirty layout roots for per-tick rebuilds.
type Rebuilder struct {
	queue    []*uikit.Node
	deferred []*uikit.Node
	flushing bool
}

// NewRebuilder creates an empty rebuild queue.
func NewRebuilder() *Rebuilder {
	return &Rebuilder{}
}

// MarkDirty queues the layout root that owns n. No-op when n sits under no
// layout controller.
func (r *Rebuilder) MarkDirty(n *uikit.Node) {
	root := LayoutRoot(n)
	if root == nil {
		return
	}
	if r.flushing {
		r.deferred = appendUnique(r.deferred, root)
		return
	}
	r.queue = appendUnique(r.queue, root)
}

// Pending reports how many roots await the next flush.
func (r *Rebuilder) Pending() int { return len(r.queue) }

// Flush rebuilds every queued root, then promotes marks deferred during the
// flush into the next tick's queue.
func (r *Rebuilder) Flush() {
	if r.flushing {
		return
	}
	r.flushing = true
	for _, root := range r.queue {
		if root.Alive() && root.ActiveInTree() {
			Rebuild(root)
		}
	}
	r.queue = r.queue[:0]
	r.flushing = false

	r.queue = append(r.queue, r.deferred...)
	r.deferred = r.deferred[:0]
}

// LayoutRoot walks from n to the outermost ancestor forming an unbroken
// chain of layout controllers. Returns nil when the chain's top carries no
// controller at all.
func LayoutRoot(n *uikit.Node) *uikit.Node {
	if n == nil || !n.Alive() {
		return nil
	}
	root := n
	for p := root.Parent(); p != nil && hasController(p); p = p.Parent() {
		root = p
	}
	if !hasController(root) {
		return nil
	}
	return root
}

func hasController(n *uikit.Node) bool {
	for _, c := range n.Components() {
		if _, ok := c.(Controller); ok {
			return true
		}
	}
	return false
}

func appendUnique(s []*uikit.Node, n *uikit.Node) []*uikit.Node {
	for _, q := range s {
		if q == n {
			return s
		}
	}
	return append(s, n)
}

// ============================================================================
// Two-Pass Rebuild
// ============================================================================

// Rebuild lays out one root: the horizontal axis resolves completely before
// vertical starts, because vertical constraints may depend on resolved
// widths. Gather is bottom-up, apply is top-down.
func Rebuild(root *uikit.Node) {
	calculate(root, uikit.Horizontal)
	apply(root, uikit.Horizontal)
	calculate(root, uikit.Vertical)
	apply(root, uikit.Vertical)
}

// calculate runs the gather pass: children first, so a group's totals see
// its subtree's already-gathered constraints.
func calculate(n *uikit.Node, axis int) {
	for _, c := range n.Children() {
		if c.Alive() && c.Active() {
			calculate(c, axis)
		}
	}
	for _, comp := range n.Components() {
		e, ok := comp.(Element)
		if !ok {
			continue
		}
		if axis == uikit.Horizontal {
			e.CalculateLayoutHorizontal()
		} else {
			e.CalculateLayoutVertical()
		}
	}
}

// apply runs the apply pass: parents first, so a child group sees its final
// size before positioning its own children.
func apply(n *uikit.Node, axis int) {
	for _, comp := range n.Components() {
		c, ok := comp.(Controller)
		if !ok {
			continue
		}
		if axis == uikit.Horizontal {
			c.SetLayoutHorizontal()
		} else {
			c.SetLayoutVertical()
		}
	}
	for _, c := range n.Children() {
		if c.Alive() && c.Active() {
			apply(c, axis)
		}
	}
}
