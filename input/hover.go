package input

import "github.com/agiangrant/uikit"

// ============================================================================
// Hover Transition Engine
// ============================================================================
//
// HandleEnterAndExit reconciles the previously entered node against the
// newly hit one and issues the minimal enter/exit/move sequence. The bubble
// policy (Settings.HoverToParent) decides whether hover propagates up the
// full ancestor chain or stops at the first ancestor that declares its own
// handler.
//
// Ordering invariant: the exit walk for the old chain completes before the
// first enter of the new chain is issued.

// HandleEnterAndExit updates p's hover state for a new target, which may be
// nil. Destroyed references are treated as absent.
func (m *Module) HandleEnterAndExit(p *PointerData, newTarget *uikit.Node) {
	newTarget = liveNode(newTarget)
	entered := liveNode(p.Entered)

	// Nothing to move to, or the node we tracked is gone: everything still
	// hovered exits fully.
	if newTarget == nil || entered == nil {
		exiting := acquireNodeSlice(len(p.hovered))
		copy(exiting, p.hovered)
		for _, h := range exiting {
			p.FullyExited = true
			Execute(h, func(hd PointerMoveHandler) { hd.OnPointerMove(p) })
			Execute(h, func(hd PointerExitHandler) { hd.OnPointerExit(p) })
		}
		releaseNodeSlice(exiting)
		p.clearHovered()

		if newTarget == nil {
			p.Entered = nil
			return
		}
	}

	// Target unchanged: just forward movement to the hovered chain.
	if entered == newTarget {
		if p.IsMoving() {
			for _, h := range p.hovered {
				Execute(h, func(hd PointerMoveHandler) { hd.OnPointerMove(p) })
			}
		}
		return
	}

	root := commonRoot(entered, newTarget)
	bubble := m.settings.HoverToParent

	// Exit phase: walk up from the old entered node. With bubbling the walk
	// stops at the common root (exclusive); without it the walk stops at the
	// nearest ancestor of the new target that declares an exit handler, and
	// the common root itself still exits.
	if entered != nil {
		var exitBoundary *uikit.Node
		if !bubble {
			exitBoundary = HandlerNode[PointerExitHandler](newTarget)
		}
		t := entered
		for t != nil {
			if bubble && root != nil && root == t {
				break
			}
			if !bubble && t == exitBoundary {
				break
			}
			p.FullyExited = t != root && entered != newTarget
			Execute(t, func(hd PointerMoveHandler) { hd.OnPointerMove(p) })
			Execute(t, func(hd PointerExitHandler) { hd.OnPointerExit(p) })
			p.removeHovered(t)

			// Advance ordering matches the stop conditions above: with
			// bubbling the common-root check sees the next node, without it
			// the check sees the node just processed.
			if bubble {
				t = t.Parent()
			}
			if root != nil && root == t {
				break
			}
			if !bubble {
				t = t.Parent()
			}
		}
	}

	// The enter phase reads the pre-update entered reference through its
	// reentered check, so swap after the exits are done.
	oldEntered := entered
	p.Entered = newTarget

	t := newTarget
	for t != nil {
		p.Reentered = t == root && t != oldEntered
		if bubble && p.Reentered {
			// The parent never stopped hovering; nothing to announce.
			break
		}
		if p.isHovered(t) {
			// Still holding hover state from before the transition; a second
			// enter without an intervening exit is never issued.
			break
		}
		Execute(t, func(hd PointerEnterHandler) { hd.OnPointerEnter(p) })
		Execute(t, func(hd PointerMoveHandler) { hd.OnPointerMove(p) })
		p.addHovered(t)
		if !bubble && declares[PointerEnterHandler](t) {
			break
		}
		if bubble && root != nil && root == t {
			break
		}
		t = t.Parent()
	}
}

// commonRoot returns the nearest common ancestor of a and b, or nil when
// they share none (or either is nil).
func commonRoot(a, b *uikit.Node) *uikit.Node {
	if a == nil || b == nil {
		return nil
	}
	for t1 := a; t1 != nil; t1 = t1.Parent() {
		for t2 := b; t2 != nil; t2 = t2.Parent() {
			if t1 == t2 {
				return t1
			}
		}
	}
	return nil
}
