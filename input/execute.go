package input

import "github.com/agiangrant/uikit"

// ============================================================================
// Capability Interfaces
// ============================================================================
//
// A node declares a capability by carrying a component that implements the
// matching interface. Capability resolution is an interface assertion over
// the node's component list, so the list is the single source of truth.

// PointerEnterHandler receives enter notifications.
type PointerEnterHandler interface {
	OnPointerEnter(p *PointerData)
}

// PointerExitHandler receives exit notifications.
type PointerExitHandler interface {
	OnPointerExit(p *PointerData)
}

// PointerMoveHandler receives move notifications while hovered.
type PointerMoveHandler interface {
	OnPointerMove(p *PointerData)
}

// PointerDownHandler receives press notifications.
type PointerDownHandler interface {
	OnPointerDown(p *PointerData)
}

// PointerUpHandler receives release notifications.
type PointerUpHandler interface {
	OnPointerUp(p *PointerData)
}

// PointerClickHandler receives click notifications.
type PointerClickHandler interface {
	OnPointerClick(p *PointerData)
}

// ScrollHandler receives scroll-wheel notifications.
type ScrollHandler interface {
	OnScroll(p *PointerData)
}

// InitializePotentialDragHandler is notified at press time, before any
// movement, so the target can opt out of the drag distance threshold by
// clearing p.UseDragThreshold.
type InitializePotentialDragHandler interface {
	OnInitializePotentialDrag(p *PointerData)
}

// BeginDragHandler receives the drag-start notification.
type BeginDragHandler interface {
	OnBeginDrag(p *PointerData)
}

// DragHandler receives per-frame drag notifications. Declaring it also makes
// a node a drag target.
type DragHandler interface {
	OnDrag(p *PointerData)
}

// EndDragHandler receives the drag-end notification.
type EndDragHandler interface {
	OnEndDrag(p *PointerData)
}

// DropHandler receives the drop notification on the node under the pointer
// when a drag releases.
type DropHandler interface {
	OnDrop(p *PointerData)
}

// SelectHandler is notified when its node becomes the selection.
type SelectHandler interface {
	OnSelect(e *BaseEvent)
}

// DeselectHandler is notified when its node loses the selection.
type DeselectHandler interface {
	OnDeselect(e *BaseEvent)
}

// UpdateSelectedHandler is notified every frame while its node is selected.
type UpdateSelectedHandler interface {
	OnUpdateSelected(e *BaseEvent)
}

// MoveHandler receives discretized axis navigation moves.
type MoveHandler interface {
	OnMove(e *AxisEvent)
}

// SubmitHandler receives submit actions while selected.
type SubmitHandler interface {
	OnSubmit(e *BaseEvent)
}

// CancelHandler receives cancel actions while selected.
type CancelHandler interface {
	OnCancel(e *BaseEvent)
}

// ============================================================================
// Execution
// ============================================================================

// Execute invokes every component of n implementing T and reports whether
// any handler ran. Inactive or destroyed nodes receive nothing.
func Execute[T any](n *uikit.Node, visit func(T)) bool {
	if !n.Alive() || !n.ActiveInTree() {
		return false
	}
	handled := false
	for _, c := range n.Components() {
		h, ok := c.(T)
		if !ok {
			continue
		}
		visit(h)
		handled = true
	}
	return handled
}

// ExecuteHierarchy walks from n toward the root and executes on the first
// node that declares T. Returns the node that handled the event, or nil.
func ExecuteHierarchy[T any](n *uikit.Node, visit func(T)) *uikit.Node {
	for cur := n; cur != nil; cur = cur.Parent() {
		if Execute[T](cur, visit) {
			return cur
		}
	}
	return nil
}

// HandlerNode returns the nearest self-or-ancestor of n declaring T that is
// active in the tree, without executing anything.
func HandlerNode[T any](n *uikit.Node) *uikit.Node {
	for cur := n; cur != nil; cur = cur.Parent() {
		if !cur.Alive() || !cur.ActiveInTree() {
			continue
		}
		if declares[T](cur) {
			return cur
		}
	}
	return nil
}

// declares reports whether n itself carries a component implementing T.
func declares[T any](n *uikit.Node) bool {
	if n == nil {
		return false
	}
	for _, c := range n.Components() {
		if _, ok := c.(T); ok {
			return true
		}
	}
	return false
}

// liveNode collapses destroyed references to nil so downstream logic can
// treat stale nodes as absent.
func liveNode(n *uikit.Node) *uikit.Node {
	if n.Alive() {
		return n
	}
	return nil
}
