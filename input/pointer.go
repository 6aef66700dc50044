package input

import "github.com/agiangrant/uikit"

// ============================================================================
// Pointer Tracker
// ============================================================================

// Tracker owns the per-id pointer records. Records are created lazily on
// first sighting of an id and removed when the id is released or the owning
// module deactivates.
type Tracker struct {
	pointers map[int]*PointerData
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{pointers: make(map[int]*PointerData)}
}

// Get returns the record for id, creating it on demand. The second return
// reports whether the record was created by this call; creation initializes
// position lazily from the first sample so there is no spurious first-frame
// delta.
func (t *Tracker) Get(id int) (*PointerData, bool) {
	if p, ok := t.pointers[id]; ok {
		return p, false
	}
	p := &PointerData{ID: id}
	t.pointers[id] = p
	return p, true
}

// Lookup returns the record for id without creating one.
func (t *Tracker) Lookup(id int) *PointerData {
	return t.pointers[id]
}

// Remove drops the record for id.
func (t *Tracker) Remove(id int) {
	delete(t.pointers, id)
}

// Clear drops every record.
func (t *Tracker) Clear() {
	for id := range t.pointers {
		delete(t.pointers, id)
	}
}

// Each visits every live record.
func (t *Tracker) Each(fn func(*PointerData)) {
	for _, p := range t.pointers {
		fn(p)
	}
}

// ============================================================================
// Frame Samples
// ============================================================================

// ButtonSample carries the per-frame edges for one mouse button. Both flags
// may be set when a press and release happened within the same frame.
type ButtonSample struct {
	Pressed  bool
	Released bool
}

// MouseSample is the per-frame mouse state supplied by the host.
type MouseSample struct {
	Position uikit.Vec2
	Scroll   uikit.Vec2
	Display  int

	// Locked is true while the platform pins the cursor to the window
	// center; position and delta are then meaningless and forced.
	Locked bool

	// Buttons is indexed by Button.
	Buttons [3]ButtonSample
}

// TouchPhase classifies a touch sample within its gesture.
type TouchPhase int

const (
	TouchBegan TouchPhase = iota
	TouchMoved
	TouchStationary
	TouchEnded
	TouchCanceled
)

// TouchSample is one finger's per-frame state supplied by the host.
type TouchSample struct {
	ID       int
	Phase    TouchPhase
	Position uikit.Vec2
	Display  int

	Pressure float32
	Tilt     uikit.Vec2
	Twist    float32
	Radius   uikit.Vec2
}

// ============================================================================
// Mouse Acquisition
// ============================================================================

// mouseButton pairs a button's record with its per-frame edges.
type mouseButton struct {
	data     *PointerData
	pressed  bool
	released bool
}

// acquireMouse updates the three mouse button records from a sample. The
// left button is processed fully, including the hit test; right and middle
// never raycast on their own and instead mirror every derived field of the
// left record, keeping only their own button identity.
func (m *Module) acquireMouse(s MouseSample) [3]mouseButton {
	left, created := m.tracker.Get(MouseLeftID)
	left.Reset()
	if created {
		left.Position = s.Position
		left.PrevPosition = s.Position
	}
	if s.Locked {
		left.Position = uikit.Vec2{X: -1, Y: -1}
		left.PrevPosition = left.Position
		left.Delta = uikit.Vec2{}
	} else {
		left.PrevPosition = left.Position
		left.Delta = s.Position.Sub(left.Position)
		left.Position = s.Position
	}
	left.ScrollDelta = s.Scroll
	left.Button = ButtonLeft
	left.Display = s.Display

	RaycastAll(m.raycasters, left, &m.hitCache)
	left.CurrentRaycast = FindFirstTarget(m.hitCache)

	right, _ := m.tracker.Get(MouseRightID)
	right.Reset()
	copyDerived(left, right)
	right.Button = ButtonRight

	middle, _ := m.tracker.Get(MouseMiddleID)
	middle.Reset()
	copyDerived(left, middle)
	middle.Button = ButtonMiddle

	return [3]mouseButton{
		{data: left, pressed: s.Buttons[ButtonLeft].Pressed, released: s.Buttons[ButtonLeft].Released},
		{data: right, pressed: s.Buttons[ButtonRight].Pressed, released: s.Buttons[ButtonRight].Released},
		{data: middle, pressed: s.Buttons[ButtonMiddle].Pressed, released: s.Buttons[ButtonMiddle].Released},
	}
}

// copyDerived mirrors the fields the secondary buttons share with the
// primary: where the pointer is, how it moved, and what it is over.
func copyDerived(from, to *PointerData) {
	to.Position = from.Position
	to.PrevPosition = from.PrevPosition
	to.Delta = from.Delta
	to.ScrollDelta = from.ScrollDelta
	to.Display = from.Display
	to.CurrentRaycast = from.CurrentRaycast
	to.Entered = from.Entered
}

// ============================================================================
// Touch Acquisition
// ============================================================================

// acquireTouch updates the record for one finger and classifies press and
// release edges from the touch phase. A canceled touch keeps its last known
// position but forces an empty hit result, denying further interaction
// without a fresh hit test.
func (m *Module) acquireTouch(s TouchSample) (p *PointerData, pressed, released bool) {
	p, created := m.tracker.Get(s.ID)
	p.Reset()

	pressed = created || s.Phase == TouchBegan
	released = s.Phase == TouchEnded || s.Phase == TouchCanceled

	if created {
		p.Position = s.Position
		p.PrevPosition = s.Position
	}
	if pressed {
		p.Delta = uikit.Vec2{}
		p.PrevPosition = s.Position
	} else {
		p.PrevPosition = p.Position
		p.Delta = s.Position.Sub(p.Position)
	}
	p.Position = s.Position
	p.Button = ButtonLeft
	p.Display = s.Display

	if s.Phase == TouchCanceled {
		p.CurrentRaycast = RaycastHit{}
	} else {
		RaycastAll(m.raycasters, p, &m.hitCache)
		p.CurrentRaycast = FindFirstTarget(m.hitCache)
	}

	p.Pressure = s.Pressure
	p.Tilt = s.Tilt
	p.Twist = s.Twist
	p.Radius = s.Radius
	return p, pressed, released
}
