package input

import (
	"sort"

	"github.com/agiangrant/uikit"
)

// ============================================================================
// Hit Testing
// ============================================================================

// RaycastHit is one candidate produced by a raycaster backend.
type RaycastHit struct {
	Node *uikit.Node

	// Distance orders candidates along the ray; pure-2D backends report 0
	// and rely on SortOrder.
	Distance float32

	// SortOrder is the backend's declared rendering order; higher draws on
	// top and wins ties.
	SortOrder int

	// Index is the insertion position in the combined result list, the
	// final stable tie-break.
	Index int

	WorldPoint  uikit.Vec2
	WorldNormal uikit.Vec2
	Display     int
}

// Valid reports whether the hit still refers to a live node.
func (h RaycastHit) Valid() bool { return h.Node.Alive() }

// Raycaster converts a pointer position into hit candidates. Backends are
// pluggable: a 2D containment test and a physics query look the same here,
// as long as each produces a stable total order.
type Raycaster interface {
	Raycast(p *PointerData, hits *[]RaycastHit)
}

// RaycastAll runs every backend and sorts the combined candidates: distance
// ascending, ties by sort order (higher first), then insertion index so
// repeated calls over unchanged scene state are deterministic.
func RaycastAll(casters []Raycaster, p *PointerData, hits *[]RaycastHit) {
	*hits = (*hits)[:0]
	for _, rc := range casters {
		rc.Raycast(p, hits)
	}
	hs := *hits
	for i := range hs {
		hs[i].Index = i
	}
	sort.Slice(hs, func(i, j int) bool { return hitBefore(hs[i], hs[j]) })
}

func hitBefore(a, b RaycastHit) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}
	if a.SortOrder != b.SortOrder {
		return a.SortOrder > b.SortOrder
	}
	return a.Index < b.Index
}

// FindFirstTarget returns the first candidate whose node is still live. A
// candidate can be destroyed between the raycast and its consumption within
// the same frame; those are skipped. Returns a zero hit when none qualify.
func FindFirstTarget(hits []RaycastHit) RaycastHit {
	for _, h := range hits {
		if h.Valid() {
			return h
		}
	}
	return RaycastHit{}
}

// ============================================================================
// Rect Raycaster
// ============================================================================

// RectRaycaster is the built-in pure-2D backend: rectangle containment over
// a node tree. Nodes drawn later (later siblings, deeper descendants) sit on
// top and therefore win ties through a higher sort order.
type RectRaycaster struct {
	Root    *uikit.Node
	Geo     uikit.Geometry
	Display int
}

// Raycast appends every live, active raycast-target node whose world rect
// contains the pointer position.
func (r *RectRaycaster) Raycast(p *PointerData, hits *[]RaycastHit) {
	if r.Root == nil || p.Display != r.Display {
		return
	}
	geo := r.Geo
	if geo == nil {
		geo = uikit.TreeGeometry{}
	}
	order := 0
	r.walk(geo, r.Root, p, &order, hits)
}

func (r *RectRaycaster) walk(geo uikit.Geometry, n *uikit.Node, p *PointerData, order *int, hits *[]RaycastHit) {
	if geo.IsDestroyed(n) || !geo.IsActiveAndEnabled(n) {
		return
	}
	drawOrder := *order
	*order++
	if n.RaycastTarget() && geo.GetRect(n).Contains(p.Position) {
		*hits = append(*hits, RaycastHit{
			Node:       n,
			SortOrder:  drawOrder,
			WorldPoint: p.Position,
			Display:    p.Display,
		})
	}
	for _, c := range geo.GetChildren(n) {
		r.walk(geo, c, p, order, hits)
	}
}
