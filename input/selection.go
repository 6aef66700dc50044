package input

import "github.com/agiangrant/uikit"

// ============================================================================
// Selection
// ============================================================================

// Selected returns the node currently holding the selection, or nil.
func (m *Module) Selected() *uikit.Node { return liveNode(m.selected) }

// SetSelected moves the selection, issuing deselect then select. A change
// requested from inside a select/deselect handler is ignored rather than
// recursed.
func (m *Module) SetSelected(n *uikit.Node) {
	if m.selectionGuard || n == m.selected {
		return
	}
	m.selectionGuard = true
	e := acquireBaseEvent()
	Execute(liveNode(m.selected), func(h DeselectHandler) { h.OnDeselect(e) })
	m.selected = n
	Execute(liveNode(n), func(h SelectHandler) { h.OnSelect(e) })
	releaseBaseEvent(e)
	m.selectionGuard = false
}

// deselectIfSelectionChanged clears the selection when a press lands on a
// node whose select target differs from the current selection.
func (m *Module) deselectIfSelectionChanged(hit *uikit.Node) {
	target := HandlerNode[SelectHandler](hit)
	if target != m.selected {
		m.SetSelected(nil)
	}
}

// sendUpdateEvent notifies the selected node once per frame. Reports whether
// a handler consumed the event.
func (m *Module) sendUpdateEvent() bool {
	sel := liveNode(m.selected)
	if sel == nil {
		return false
	}
	e := acquireBaseEvent()
	Execute(sel, func(h UpdateSelectedHandler) { h.OnUpdateSelected(e) })
	used := e.Used()
	releaseBaseEvent(e)
	return used
}

// ============================================================================
// Navigation
// ============================================================================

// sendMoveEvent turns the raw axis vector into a discretized move on the
// selected node, rate-limited so holding a direction first waits the repeat
// delay and then fires at the configured rate.
func (m *Module) sendMoveEvent(move uikit.Vec2) bool {
	if move.IsZero() {
		m.consecutiveMoves = 0
		return false
	}

	// Same general direction as the previous move?
	similar := move.Dot(m.lastMoveVector) > 0

	var allow bool
	if similar && m.consecutiveMoves == 1 {
		allow = m.now > m.prevActionTime+float64(m.settings.MoveRepeatDelay)
	} else {
		allow = m.now > m.prevActionTime+1.0/float64(m.settings.MoveActionsPerSecond)
	}
	if !allow {
		return false
	}

	e := acquireAxisEvent(move, m.settings.AxisDeadZone)
	used := false
	if e.Direction != MoveNone {
		Execute(m.Selected(), func(h MoveHandler) { h.OnMove(e) })
		if similar {
			m.consecutiveMoves++
		} else {
			m.consecutiveMoves = 1
		}
		m.prevActionTime = m.now
		m.lastMoveVector = move
		used = e.Used()
	}
	releaseAxisEvent(e)
	return used
}

// sendSubmitEvents forwards submit/cancel edges to the selected node.
func (m *Module) sendSubmitEvents(submit, cancel bool) {
	sel := m.Selected()
	if sel == nil {
		return
	}
	if submit {
		e := acquireBaseEvent()
		Execute(sel, func(h SubmitHandler) { h.OnSubmit(e) })
		releaseBaseEvent(e)
	}
	if cancel {
		e := acquireBaseEvent()
		Execute(sel, func(h CancelHandler) { h.OnCancel(e) })
		releaseBaseEvent(e)
	}
}
