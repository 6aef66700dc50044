package input

import "github.com/agiangrant/uikit"

// ClickWindow is the double-click window in seconds. Presses on the same
// target closer together than this accumulate the click count.
const ClickWindow = 0.3

// ============================================================================
// Press / Click / Drag State Machine
// ============================================================================
//
// Per pointer: Idle -> Pressed -> (Dragging | ClickPending) -> Idle. Both
// edges may arrive in the same frame for a sub-frame press+release, which
// yields a synthetic down-then-up within one tick.

// processPress consumes the press and release edges for one pointer. The
// touch flag selects release semantics: a touch that lifts exits its hover
// chain outright, a mouse button re-reconciles hover instead.
func (m *Module) processPress(p *PointerData, pressed, released, touch bool) {
	hit := liveNode(p.CurrentRaycast.Node)

	if pressed {
		p.EligibleForClick = true
		p.Delta = uikit.Vec2{}
		p.Dragging = false
		p.UseDragThreshold = true
		p.PressPosition = p.Position
		p.PressRaycast = p.CurrentRaycast

		m.deselectIfSelectionChanged(hit)

		// A press outside the double-click window starts a fresh count.
		if m.now-p.ClickTime > ClickWindow {
			p.ClickCount = 0
		}

		// The press target is the nearest ancestor handling presses; a
		// click-only control still counts as the press target so it can
		// accumulate click counts.
		newPressed := ExecuteHierarchy(hit, func(h PointerDownHandler) { h.OnPointerDown(p) })
		newClick := HandlerNode[PointerClickHandler](hit)
		if newPressed == nil {
			newPressed = newClick
		}

		if newPressed == p.lastPress && m.now-p.ClickTime < ClickWindow {
			p.ClickCount++
		} else {
			p.ClickCount = 1
		}
		p.ClickTime = m.now

		p.setPress(newPressed)
		p.RawPress = hit
		p.Click = newClick

		// Resolve the drag target up front and let it veto the distance
		// threshold before any movement happens.
		p.Drag = HandlerNode[DragHandler](hit)
		if p.Drag != nil {
			Execute(p.Drag, func(h InitializePotentialDragHandler) { h.OnInitializePotentialDrag(p) })
		}
	}

	if released {
		m.processRelease(p, hit, touch)
	}
}

// processRelease finishes a press: up, then click and drop independently,
// then state teardown and hover reconciliation.
func (m *Module) processRelease(p *PointerData, hit *uikit.Node, touch bool) {
	Execute(liveNode(p.Press), func(h PointerUpHandler) { h.OnPointerUp(p) })

	// Click fires only when the target under the pointer at release resolves
	// to the same click target captured at press time.
	releaseClick := HandlerNode[PointerClickHandler](hit)
	if p.Click != nil && p.Click == releaseClick && p.EligibleForClick {
		Execute(p.Click, func(h PointerClickHandler) { h.OnPointerClick(p) })
	}

	// Drop walks up from the release hit so an ancestor without its own
	// drag state can still accept the payload; then the drag itself ends.
	if p.Drag != nil && p.Dragging {
		ExecuteHierarchy(hit, func(h DropHandler) { h.OnDrop(p) })
		Execute(liveNode(p.Drag), func(h EndDragHandler) { h.OnEndDrag(p) })
	}

	p.EligibleForClick = false
	p.setPress(nil)
	p.RawPress = nil
	p.Click = nil
	p.Dragging = false
	p.Drag = nil

	if touch {
		// The finger is gone; there is no pointer left to hover with.
		m.HandleEnterAndExit(p, nil)
		return
	}

	// Enter/exit was suppressed while the press was in flight elsewhere;
	// reconcile against whatever is under the pointer now.
	if hit != p.Entered {
		m.HandleEnterAndExit(p, nil)
		m.HandleEnterAndExit(p, hit)
	}
}

// ============================================================================
// Drag
// ============================================================================

// shouldStartDrag is the drag-begin policy: immediate when the target opted
// out of the threshold, otherwise squared distance from the press position
// must reach the squared threshold.
func shouldStartDrag(pressPos, pos uikit.Vec2, threshold float32, useThreshold bool) bool {
	if !useThreshold {
		return true
	}
	return pos.Sub(pressPos).SqrLen() >= threshold*threshold
}

// processDrag advances an in-flight drag for one pointer. locked suppresses
// dragging while the platform pins the cursor.
func (m *Module) processDrag(p *PointerData, locked bool) {
	if !p.IsMoving() || locked || liveNode(p.Drag) == nil {
		return
	}

	if !p.Dragging && shouldStartDrag(p.PressPosition, p.Position, m.settings.DragThreshold, p.UseDragThreshold) {
		Execute(p.Drag, func(h BeginDragHandler) { h.OnBeginDrag(p) })
		p.Dragging = true
	}

	if p.Dragging {
		// A node being dragged must not also look pressed: if the press
		// landed elsewhere, force-release it before the drag notification.
		if p.Press != p.Drag {
			Execute(liveNode(p.Press), func(h PointerUpHandler) { h.OnPointerUp(p) })
			p.EligibleForClick = false
			p.setPress(nil)
			p.RawPress = nil
		}
		Execute(p.Drag, func(h DragHandler) { h.OnDrag(p) })
	}
}

// ============================================================================
// Scroll
// ============================================================================

// processScroll forwards a non-zero scroll delta to the nearest scroll
// handler above the hovered node, bubbling until consumed.
func (m *Module) processScroll(p *PointerData) {
	if p.ScrollDelta.SqrLen() == 0 {
		return
	}
	target := HandlerNode[ScrollHandler](liveNode(p.CurrentRaycast.Node))
	ExecuteHierarchy(target, func(h ScrollHandler) { h.OnScroll(p) })
}
