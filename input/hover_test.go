package input

import (
	"testing"

	"github.com/agiangrant/uikit"
)

// hoverTree builds root > parent > (leaf, sibling) with hover spies on every
// node, logging into the returned slice.
func hoverTree(log *[]string) (root, parent, leaf, sibling *uikit.Node) {
	root = spyOn(testNode("R", 0, 0, 400, 400), log)
	parent = spyOn(testNode("P", 0, 0, 200, 200), log)
	leaf = spyOn(testNode("L", 0, 0, 100, 100), log)
	sibling = spyOn(testNode("M", 100, 0, 100, 100), log)
	root.AddChild(parent)
	parent.AddChild(leaf)
	parent.AddChild(sibling)
	return
}

func TestHoverEnterWholeChain(t *testing.T) {
	var log []string
	root, parent, leaf, _ := hoverTree(&log)
	m := newTestModule(root)
	p := &PointerData{ID: MouseLeftID}

	m.HandleEnterAndExit(p, leaf)

	want := []string{"enter L", "move L", "enter P", "move P", "enter R", "move R"}
	if !logEqual(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
	if p.Entered != leaf {
		t.Errorf("Entered = %v, want leaf", p.Entered)
	}
	hov := p.Hovered()
	if len(hov) != 3 || hov[0] != leaf || hov[1] != parent || hov[2] != root {
		t.Errorf("hovered = %v, want [L P R]", hov)
	}
}

func TestHoverSiblingTransition(t *testing.T) {
	var log []string
	root, parent, leaf, sibling := hoverTree(&log)
	m := newTestModule(root)
	p := &PointerData{ID: MouseLeftID}

	m.HandleEnterAndExit(p, leaf)
	log = log[:0]

	m.HandleEnterAndExit(p, sibling)

	// The old leaf exits, the new leaf enters; the shared ancestors stay
	// hovered and see nothing.
	want := []string{"move L", "exit L", "enter M", "move M"}
	if !logEqual(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
	if !p.FullyExited {
		t.Error("leaving a node for its sibling is a full exit")
	}
	if p.isHovered(leaf) {
		t.Error("old leaf still marked hovered")
	}
	if !p.isHovered(parent) || !p.isHovered(root) {
		t.Error("shared ancestors must keep hover state")
	}
}

func TestHoverChildToParent(t *testing.T) {
	var log []string
	root, parent, leaf, _ := hoverTree(&log)
	m := newTestModule(root)
	p := &PointerData{ID: MouseLeftID}

	m.HandleEnterAndExit(p, leaf)
	log = log[:0]

	m.HandleEnterAndExit(p, parent)

	// The parent never stopped hovering, so it must not re-enter.
	want := []string{"move L", "exit L"}
	if !logEqual(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
	if !p.Reentered {
		t.Error("moving back into a still-hovered ancestor sets Reentered")
	}
	if p.Entered != parent {
		t.Errorf("Entered = %v, want parent", p.Entered)
	}
}

func TestHoverParentToChildNoDuplicateEnter(t *testing.T) {
	var log []string
	root, parent, leaf, _ := hoverTree(&log)
	m := newTestModule(root)
	p := &PointerData{ID: MouseLeftID}

	m.HandleEnterAndExit(p, parent)
	log = log[:0]

	m.HandleEnterAndExit(p, leaf)

	// Only the child is new; no exits, and no second enter for the parent.
	want := []string{"enter L", "move L"}
	if !logEqual(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
	count := 0
	for _, h := range p.Hovered() {
		if h == parent {
			count++
		}
	}
	if count != 1 {
		t.Errorf("parent appears %d times in hovered, want 1", count)
	}
}

func TestHoverFullExit(t *testing.T) {
	var log []string
	root, _, leaf, _ := hoverTree(&log)
	m := newTestModule(root)
	p := &PointerData{ID: MouseLeftID}

	m.HandleEnterAndExit(p, leaf)
	log = log[:0]

	m.HandleEnterAndExit(p, nil)

	// Everything exits, leaf first.
	want := []string{"move L", "exit L", "move P", "exit P", "move R", "exit R"}
	if !logEqual(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
	if !p.FullyExited {
		t.Error("FullyExited must be set when the pointer leaves everything")
	}
	if p.Entered != nil || len(p.Hovered()) != 0 {
		t.Error("hover state must be empty after a full exit")
	}
}

func TestHoverUnchangedTarget(t *testing.T) {
	var log []string
	root, _, leaf, _ := hoverTree(&log)
	m := newTestModule(root)
	p := &PointerData{ID: MouseLeftID}

	m.HandleEnterAndExit(p, leaf)
	log = log[:0]

	// No movement: silence.
	m.HandleEnterAndExit(p, leaf)
	if len(log) != 0 {
		t.Errorf("stationary pointer produced %v", log)
	}

	// Movement: every hovered node sees a move, nothing enters or exits.
	p.Delta = uikit.Vec2{X: 3, Y: 0}
	m.HandleEnterAndExit(p, leaf)
	want := []string{"move L", "move P", "move R"}
	if !logEqual(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
}

func TestHoverDisjointTreesExitBeforeEnter(t *testing.T) {
	var log []string
	rootA := spyOn(testNode("RA", 0, 0, 100, 100), &log)
	a := spyOn(testNode("A", 0, 0, 50, 50), &log)
	rootA.AddChild(a)
	rootB := spyOn(testNode("RB", 200, 0, 100, 100), &log)
	b := spyOn(testNode("B", 0, 0, 50, 50), &log)
	rootB.AddChild(b)

	m := newTestModule(rootA)
	p := &PointerData{ID: MouseLeftID}

	m.HandleEnterAndExit(p, a)
	log = log[:0]

	m.HandleEnterAndExit(p, b)

	// With no common ancestor the whole old chain exits before the first
	// enter of the new chain.
	want := []string{
		"move A", "exit A", "move RA", "exit RA",
		"enter B", "move B", "enter RB", "move RB",
	}
	if !logEqual(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
}

func TestHoverStaleEnteredNode(t *testing.T) {
	var log []string
	root, _, leaf, sibling := hoverTree(&log)
	m := newTestModule(root)
	p := &PointerData{ID: MouseLeftID}

	m.HandleEnterAndExit(p, leaf)
	log = log[:0]

	// The entered node dies between frames: the surviving hovered nodes exit
	// fully, the destroyed one is silently dropped, then the new chain enters.
	leaf.Destroy()
	m.HandleEnterAndExit(p, sibling)

	want := []string{
		"move P", "exit P", "move R", "exit R",
		"enter M", "move M", "enter P", "move P", "enter R", "move R",
	}
	if !logEqual(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
	if p.Entered != sibling {
		t.Errorf("Entered = %v, want sibling", p.Entered)
	}
}

func TestHoverNoBubblePolicy(t *testing.T) {
	// Only the parent declares hover handlers. Without bubbling the enter
	// walk stops at the first declaring node and sibling transitions stay
	// below it, so the parent enters exactly once.
	var log []string
	root := testNode("R", 0, 0, 400, 400)
	parent := spyOn(testNode("P", 0, 0, 200, 200), &log)
	leaf := testNode("L", 0, 0, 100, 100)
	sibling := testNode("M", 100, 0, 100, 100)
	root.AddChild(parent)
	parent.AddChild(leaf)
	parent.AddChild(sibling)

	settings := uikit.DefaultSettings()
	settings.HoverToParent = false
	m := NewModule(settings)
	m.AddRaycaster(&RectRaycaster{Root: root})
	p := &PointerData{ID: MouseLeftID}

	m.HandleEnterAndExit(p, leaf)
	want := []string{"enter P", "move P"}
	if !logEqual(log, want) {
		t.Errorf("initial log = %v, want %v", log, want)
	}
	if p.isHovered(root) {
		t.Error("enter walk must stop at the first declaring ancestor")
	}

	log = log[:0]
	m.HandleEnterAndExit(p, sibling)
	if len(log) != 0 {
		t.Errorf("sibling transition below the handler produced %v", log)
	}
	if !p.isHovered(parent) || !p.isHovered(sibling) || p.isHovered(leaf) {
		t.Errorf("hovered = %v after sibling transition", p.Hovered())
	}
}
