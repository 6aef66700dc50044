package input

import "github.com/agiangrant/uikit"

// ============================================================================
// Input Module
// ============================================================================

// Frame is one tick's worth of raw device samples, supplied by the host.
// The module never polls devices itself.
type Frame struct {
	// Time is the host clock in seconds. Click windows and move repeat
	// limits compare against it.
	Time float64

	// Mouse is nil when no mouse is present.
	Mouse *MouseSample

	// Touches holds this frame's touch samples. When any are present they
	// take precedence over the mouse.
	Touches []TouchSample

	// MoveAxis is the raw navigation axis vector.
	MoveAxis uikit.Vec2

	SubmitDown bool
	CancelDown bool
}

// Module drives the whole dispatch pipeline once per frame: hit testing,
// hover reconciliation, press/release edges, dragging, scrolling and
// navigation, in that load-bearing order. It owns the pointer records and
// the current selection. Not safe for concurrent use; everything runs on the
// frame thread.
type Module struct {
	settings   uikit.Settings
	tracker    *Tracker
	raycasters []Raycaster

	selected       *uikit.Node
	selectionGuard bool

	// Navigation repeat state.
	lastMoveVector   uikit.Vec2
	consecutiveMoves int
	prevActionTime   float64

	now      float64
	hitCache []RaycastHit
}

// NewModule creates a module with the given settings.
func NewModule(settings uikit.Settings) *Module {
	return &Module{
		settings: settings,
		tracker:  NewTracker(),
	}
}

// Settings returns the module's active settings.
func (m *Module) Settings() uikit.Settings { return m.settings }

// Tracker exposes the pointer records, mainly for inspection and tests.
func (m *Module) Tracker() *Tracker { return m.tracker }

// AddRaycaster registers a hit-test backend. Backends run in registration
// order; their combined candidates are re-sorted globally.
func (m *Module) AddRaycaster(rc Raycaster) {
	m.raycasters = append(m.raycasters, rc)
}

// ProcessFrame runs one tick of dispatch.
func (m *Module) ProcessFrame(f Frame) {
	m.now = f.Time

	used := m.sendUpdateEvent()

	if !m.processTouches(f.Touches) && f.Mouse != nil {
		m.processMouse(*f.Mouse)
	}

	if !used {
		used = m.sendMoveEvent(f.MoveAxis)
	}
	if !used {
		m.sendSubmitEvents(f.SubmitDown, f.CancelDown)
	}
}

// Deactivate exits all hover state, drops every pointer record and clears
// the selection. Called when the host disables input routing.
func (m *Module) Deactivate() {
	m.tracker.Each(func(p *PointerData) {
		m.HandleEnterAndExit(p, nil)
	})
	m.tracker.Clear()
	m.SetSelected(nil)
}

// ============================================================================
// Mouse Pipeline
// ============================================================================

// processMouse runs the per-frame mouse pipeline. The left button carries
// the shared position/hit state, so it alone drives hover and scroll; right
// and middle only see press and drag processing.
func (m *Module) processMouse(s MouseSample) {
	buttons := m.acquireMouse(s)
	left := buttons[0].data

	m.processPress(left, buttons[0].pressed, buttons[0].released, false)
	m.processMove(left, s.Locked)
	m.processDrag(left, s.Locked)

	for _, b := range buttons[1:] {
		m.processPress(b.data, b.pressed, b.released, false)
		m.processDrag(b.data, s.Locked)
	}

	m.processScroll(left)
}

// processMove reconciles hover against the node currently under the
// pointer. A locked cursor hovers nothing.
func (m *Module) processMove(p *PointerData, locked bool) {
	if locked {
		m.HandleEnterAndExit(p, nil)
		return
	}
	m.HandleEnterAndExit(p, p.CurrentRaycast.Node)
}

// ============================================================================
// Touch Pipeline
// ============================================================================

// processTouches consumes this frame's touch samples. Returns false when
// there were none, letting the mouse pipeline run instead.
func (m *Module) processTouches(touches []TouchSample) bool {
	if len(touches) == 0 {
		return false
	}
	for _, t := range touches {
		p, pressed, released := m.acquireTouch(t)

		m.processPress(p, pressed, released, true)

		if !released {
			m.processMove(p, false)
			m.processDrag(p, false)
		} else {
			// The id is gone; the record goes with it.
			m.tracker.Remove(p.ID)
		}
	}
	return true
}
