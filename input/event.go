// Package input implements per-frame pointer event routing over a node tree:
// hit testing, hover enter/exit reconciliation, press/click/drag tracking,
// selection and axis navigation. All processing happens on one logical
// thread, once per frame tick.
package input

import (
	"sync"

	"github.com/agiangrant/uikit"
)

// ============================================================================
// Buttons and Pointer IDs
// ============================================================================

// Button identifies a mouse button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Reserved pointer ids for mouse buttons. Touch pointers use their
// non-negative finger id.
const (
	MouseLeftID   = -1
	MouseRightID  = -2
	MouseMiddleID = -3
)

// ============================================================================
// Pointer Data
// ============================================================================

// PointerData is the persistent per-pointer record and, at the same time,
// the payload handed to every pointer handler. One exists per logical
// pointer id; it is created lazily on first sighting and mutated once per
// frame by the dispatch pipeline.
type PointerData struct {
	ID      int
	Button  Button
	Display int

	Position     uikit.Vec2
	PrevPosition uikit.Vec2
	Delta        uikit.Vec2
	ScrollDelta  uikit.Vec2

	// PressPosition is the screen position at the time of the last press,
	// used for the drag threshold.
	PressPosition uikit.Vec2

	// Entered is the node the pointer is currently over; hovered is every
	// node that has received enter without a matching exit, in enter order
	// (leaf first, then ancestors).
	Entered *uikit.Node
	hovered []*uikit.Node

	// Press is the resolved press-handler target, RawPress the raw hit node
	// at press time, Click the click target resolved at press time, Drag
	// the resolved drag target.
	Press    *uikit.Node
	RawPress *uikit.Node
	Click    *uikit.Node
	Drag     *uikit.Node
	lastPress *uikit.Node

	CurrentRaycast RaycastHit
	PressRaycast   RaycastHit

	EligibleForClick bool
	Dragging         bool
	UseDragThreshold bool

	// FullyExited and Reentered qualify exit/enter notifications: a fully
	// exited node lost the pointer entirely, a reentered node is the common
	// ancestor the pointer moved back into.
	FullyExited bool
	Reentered   bool

	ClickTime  float64
	ClickCount int

	// Raw device sample fields, carried through opaquely.
	Pressure float32
	Tilt     uikit.Vec2
	Twist    float32
	Radius   uikit.Vec2

	used bool
}

// Reset clears only the used flag. Positional history survives so the next
// frame's delta is correct.
func (p *PointerData) Reset() { p.used = false }

// Use marks the event consumed.
func (p *PointerData) Use() { p.used = true }

// Used reports whether a handler consumed the event.
func (p *PointerData) Used() bool { return p.used }

// IsMoving reports whether the pointer moved this frame.
func (p *PointerData) IsMoving() bool { return p.Delta.SqrLen() > 0 }

// Hovered returns a copy of the nodes currently holding hover state for this
// pointer, in enter order.
func (p *PointerData) Hovered() []*uikit.Node {
	out := make([]*uikit.Node, len(p.hovered))
	copy(out, p.hovered)
	return out
}

// LastPress returns the press target of the previous press, used for click
// counting.
func (p *PointerData) LastPress() *uikit.Node { return p.lastPress }

// setPress updates the press target, remembering the outgoing one for click
// counting.
func (p *PointerData) setPress(n *uikit.Node) {
	if p.Press == n {
		return
	}
	p.lastPress = p.Press
	p.Press = n
}

func (p *PointerData) addHovered(n *uikit.Node) {
	p.hovered = append(p.hovered, n)
}

func (p *PointerData) isHovered(n *uikit.Node) bool {
	for _, h := range p.hovered {
		if h == n {
			return true
		}
	}
	return false
}

func (p *PointerData) removeHovered(n *uikit.Node) {
	for i, h := range p.hovered {
		if h == n {
			p.hovered = append(p.hovered[:i], p.hovered[i+1:]...)
			return
		}
	}
}

func (p *PointerData) clearHovered() {
	for i := range p.hovered {
		p.hovered[i] = nil
	}
	p.hovered = p.hovered[:0]
}

// ============================================================================
// Base and Axis Events
// ============================================================================

// BaseEvent is the minimal payload for select/submit/cancel style
// notifications.
type BaseEvent struct {
	used bool
}

// Reset prepares a pooled event for reuse.
func (e *BaseEvent) Reset() { e.used = false }

// Use marks the event consumed.
func (e *BaseEvent) Use() { e.used = true }

// Used reports whether a handler consumed the event.
func (e *BaseEvent) Used() bool { return e.used }

// MoveDirection is the discretized direction of an axis move.
type MoveDirection int

const (
	MoveNone MoveDirection = iota
	MoveLeft
	MoveUp
	MoveRight
	MoveDown
)

func (d MoveDirection) String() string {
	switch d {
	case MoveLeft:
		return "left"
	case MoveUp:
		return "up"
	case MoveRight:
		return "right"
	case MoveDown:
		return "down"
	}
	return "none"
}

// AxisEvent is the payload for navigation moves.
type AxisEvent struct {
	BaseEvent

	// MoveVector is the raw 2D axis input.
	MoveVector uikit.Vec2

	// Direction is MoveVector discretized against the dead zone.
	Direction MoveDirection
}

// DetermineMoveDirection discretizes an axis vector. Vectors shorter than
// the dead zone produce MoveNone; otherwise the dominant component wins.
func DetermineMoveDirection(v uikit.Vec2, deadZone float32) MoveDirection {
	if v.SqrLen() < deadZone*deadZone {
		return MoveNone
	}
	ax, ay := v.X, v.Y
	if ax < 0 {
		ax = -ax
	}
	if ay < 0 {
		ay = -ay
	}
	if ax > ay {
		if v.X > 0 {
			return MoveRight
		}
		return MoveLeft
	}
	if v.Y > 0 {
		return MoveUp
	}
	return MoveDown
}

// Event pools for the payloads created every frame. PointerData is not
// pooled: records persist for the lifetime of their pointer id.
var baseEventPool = sync.Pool{
	New: func() any { return &BaseEvent{} },
}

var axisEventPool = sync.Pool{
	New: func() any { return &AxisEvent{} },
}

func acquireBaseEvent() *BaseEvent {
	e := baseEventPool.Get().(*BaseEvent)
	e.Reset()
	return e
}

func releaseBaseEvent(e *BaseEvent) { baseEventPool.Put(e) }

func acquireAxisEvent(v uikit.Vec2, deadZone float32) *AxisEvent {
	e := axisEventPool.Get().(*AxisEvent)
	e.Reset()
	e.MoveVector = v
	e.Direction = DetermineMoveDirection(v, deadZone)
	return e
}

func releaseAxisEvent(e *AxisEvent) { axisEventPool.Put(e) }
