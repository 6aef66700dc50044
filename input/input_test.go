package input

import (
	"fmt"

	"github.com/agiangrant/uikit"
)

// Shared test fixtures. Handler components are deliberately small so a test
// controls exactly which capabilities a node declares.

func testNode(name string, x, y, w, h float32) *uikit.Node {
	n := uikit.NewNode(name)
	n.SetPivot(uikit.Vec2{})
	n.SetPosition(uikit.Vec2{X: x, Y: y})
	n.SetSize(uikit.Vec2{X: w, Y: h})
	return n
}

func newTestModule(root *uikit.Node) *Module {
	m := NewModule(uikit.DefaultSettings())
	m.AddRaycaster(&RectRaycaster{Root: root})
	return m
}

func mouseFrame(t float64, pos uikit.Vec2, press, release bool) Frame {
	s := &MouseSample{Position: pos}
	s.Buttons[ButtonLeft] = ButtonSample{Pressed: press, Released: release}
	return Frame{Time: t, Mouse: s}
}

// hoverSpy declares enter, exit and move.
type hoverSpy struct {
	name string
	log  *[]string
}

func (h *hoverSpy) OnPointerEnter(p *PointerData) { *h.log = append(*h.log, "enter "+h.name) }
func (h *hoverSpy) OnPointerExit(p *PointerData)  { *h.log = append(*h.log, "exit "+h.name) }
func (h *hoverSpy) OnPointerMove(p *PointerData)  { *h.log = append(*h.log, "move "+h.name) }

func spyOn(n *uikit.Node, log *[]string) *uikit.Node {
	n.AddComponent(&hoverSpy{name: n.Name(), log: log})
	return n
}

// clickSpy declares down, up and click; clicks record the count.
type clickSpy struct {
	name string
	log  *[]string
}

func (c *clickSpy) OnPointerDown(p *PointerData) { *c.log = append(*c.log, "down "+c.name) }
func (c *clickSpy) OnPointerUp(p *PointerData)   { *c.log = append(*c.log, "up "+c.name) }
func (c *clickSpy) OnPointerClick(p *PointerData) {
	*c.log = append(*c.log, fmt.Sprintf("click %s %d", c.name, p.ClickCount))
}

// dragSpy declares the drag family. noThreshold opts out of the distance
// threshold at initialize-potential-drag time.
type dragSpy struct {
	name        string
	log         *[]string
	noThreshold bool
}

func (d *dragSpy) OnInitializePotentialDrag(p *PointerData) {
	*d.log = append(*d.log, "initDrag "+d.name)
	if d.noThreshold {
		p.UseDragThreshold = false
	}
}
func (d *dragSpy) OnBeginDrag(p *PointerData) { *d.log = append(*d.log, "beginDrag "+d.name) }
func (d *dragSpy) OnDrag(p *PointerData)      { *d.log = append(*d.log, "drag "+d.name) }
func (d *dragSpy) OnEndDrag(p *PointerData)   { *d.log = append(*d.log, "endDrag "+d.name) }

// dropSpy declares drop only.
type dropSpy struct {
	name string
	log  *[]string
}

func (d *dropSpy) OnDrop(p *PointerData) { *d.log = append(*d.log, "drop "+d.name) }

// scrollSpy declares scroll only.
type scrollSpy struct {
	name string
	log  *[]string
}

func (s *scrollSpy) OnScroll(p *PointerData) {
	*s.log = append(*s.log, fmt.Sprintf("scroll %s %v", s.name, p.ScrollDelta.Y))
}

// selectSpy declares the selection family.
type selectSpy struct {
	name string
	log  *[]string
}

func (s *selectSpy) OnSelect(e *BaseEvent)   { *s.log = append(*s.log, "select "+s.name) }
func (s *selectSpy) OnDeselect(e *BaseEvent) { *s.log = append(*s.log, "deselect "+s.name) }
func (s *selectSpy) OnUpdateSelected(e *BaseEvent) {
	*s.log = append(*s.log, "updateSelected "+s.name)
}
func (s *selectSpy) OnSubmit(e *BaseEvent) { *s.log = append(*s.log, "submit "+s.name) }
func (s *selectSpy) OnCancel(e *BaseEvent) { *s.log = append(*s.log, "cancel "+s.name) }

// moveSpy declares axis moves.
type moveSpy struct {
	name string
	log  *[]string
}

func (s *moveSpy) OnMove(e *AxisEvent) {
	*s.log = append(*s.log, fmt.Sprintf("move %s %s", s.name, e.Direction))
}

func logEqual(got []string, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
