package input

import (
	"testing"

	"github.com/agiangrant/uikit"
)

// fakeRaycaster replays canned hits, for testing the sort in isolation.
type fakeRaycaster struct {
	hits []RaycastHit
}

func (f *fakeRaycaster) Raycast(p *PointerData, hits *[]RaycastHit) {
	*hits = append(*hits, f.hits...)
}

func TestRaycastAllOrdering(t *testing.T) {
	a := uikit.NewNode("a")
	b := uikit.NewNode("b")
	c := uikit.NewNode("c")
	d := uikit.NewNode("d")
	fake := &fakeRaycaster{hits: []RaycastHit{
		{Node: a, Distance: 1, SortOrder: 0},
		{Node: b, Distance: 0, SortOrder: 5},
		{Node: c, Distance: 0, SortOrder: 9},
		{Node: d, Distance: 0, SortOrder: 5},
	}}
	p := &PointerData{}

	var hits []RaycastHit
	for run := 0; run < 2; run++ {
		RaycastAll([]Raycaster{fake}, p, &hits)

		// Distance first, then draw order, then insertion order for the tie
		// between b and d. Identical on every run.
		want := []*uikit.Node{c, b, d, a}
		for i, w := range want {
			if hits[i].Node != w {
				t.Fatalf("run %d: hits[%d] = %v, want %v", run, i, hits[i].Node.Name(), w.Name())
			}
		}
	}
}

func TestFindFirstTargetSkipsDestroyed(t *testing.T) {
	top := uikit.NewNode("top")
	under := uikit.NewNode("under")
	hits := []RaycastHit{{Node: top}, {Node: under}}

	if got := FindFirstTarget(hits); got.Node != top {
		t.Fatalf("first target = %v, want top", got.Node)
	}
	top.Destroy()
	if got := FindFirstTarget(hits); got.Node != under {
		t.Errorf("first target after destroy = %v, want under", got.Node)
	}
	under.Destroy()
	if got := FindFirstTarget(hits); got.Node != nil {
		t.Errorf("first target with all dead = %v, want none", got.Node)
	}
}

func TestRectRaycasterDrawOrder(t *testing.T) {
	root := testNode("R", 0, 0, 400, 400)
	a := testNode("A", 0, 0, 100, 100)
	b := testNode("B", 50, 0, 100, 100)
	root.AddChild(a)
	root.AddChild(b)
	rc := &RectRaycaster{Root: root}

	// In the overlap the later sibling draws on top and wins.
	p := &PointerData{Position: uikit.Vec2{X: 75, Y: 50}}
	var hits []RaycastHit
	RaycastAll([]Raycaster{rc}, p, &hits)
	if got := FindFirstTarget(hits); got.Node != b {
		t.Errorf("overlap hit = %v, want B", got.Node)
	}

	// Outside the overlap only the earlier sibling (and the root) remain.
	p.Position = uikit.Vec2{X: 25, Y: 50}
	RaycastAll([]Raycaster{rc}, p, &hits)
	if got := FindFirstTarget(hits); got.Node != a {
		t.Errorf("hit = %v, want A", got.Node)
	}

	// A child draws above its parent.
	inner := testNode("I", 0, 0, 50, 50)
	a.AddChild(inner)
	p.Position = uikit.Vec2{X: 25, Y: 25}
	RaycastAll([]Raycaster{rc}, p, &hits)
	if got := FindFirstTarget(hits); got.Node != inner {
		t.Errorf("hit = %v, want inner child", got.Node)
	}
}

func TestRectRaycasterSkipsInactiveAndNonTargets(t *testing.T) {
	root := testNode("R", 0, 0, 400, 400)
	pane := testNode("P", 0, 0, 200, 200)
	inner := testNode("C", 0, 0, 100, 100)
	root.AddChild(pane)
	pane.AddChild(inner)
	rc := &RectRaycaster{Root: root}
	p := &PointerData{Position: uikit.Vec2{X: 50, Y: 50}}
	var hits []RaycastHit

	// A non-target node is transparent but its children still hit.
	pane.SetRaycastTarget(false)
	RaycastAll([]Raycaster{rc}, p, &hits)
	if got := FindFirstTarget(hits); got.Node != inner {
		t.Errorf("hit = %v, want inner through transparent pane", got.Node)
	}

	// Deactivating the pane removes its whole subtree.
	pane.SetActive(false)
	RaycastAll([]Raycaster{rc}, p, &hits)
	if got := FindFirstTarget(hits); got.Node != root {
		t.Errorf("hit = %v, want root only", got.Node)
	}
}

func TestRectRaycasterDisplayFilter(t *testing.T) {
	root := testNode("R", 0, 0, 400, 400)
	rc := &RectRaycaster{Root: root, Display: 0}
	p := &PointerData{Position: uikit.Vec2{X: 50, Y: 50}, Display: 1}
	var hits []RaycastHit

	RaycastAll([]Raycaster{rc}, p, &hits)
	if len(hits) != 0 {
		t.Errorf("raycaster on display 0 answered a display-1 pointer: %v", hits)
	}
}
