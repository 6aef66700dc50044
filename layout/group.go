package layout

import "github.com/agiangrant/uikit"

// ============================================================================
// Anchors
// ============================================================================

// Anchor is the 9-way alignment of children inside a group's content box.
type Anchor int

const (
	UpperLeft Anchor = iota
	UpperCenter
	UpperRight
	MiddleLeft
	MiddleCenter
	MiddleRight
	LowerLeft
	LowerCenter
	LowerRight
)

// Fraction returns the alignment fraction on an axis: 0 start, 0.5 center,
// 1 end.
func (a Anchor) Fraction(axis int) float32 {
	if axis == uikit.Horizontal {
		return float32(a%3) * 0.5
	}
	return float32(a/3) * 0.5
}

// ============================================================================
// Horizontal / Vertical Group
// ============================================================================

// Group lays out the children of its node sequentially along one axis and
// aligns them on the other. It implements Element so groups nest: the
// gathered totals become the group's own constraints as seen by its parent.
type Group struct {
	// Node is the node whose children this group controls. The node's own
	// size is assigned by its parent (or the host for a root group) and is
	// the available size for the apply pass.
	Node *uikit.Node

	// Vertical selects the primary axis.
	Vertical bool

	Padding   uikit.Insets
	Spacing   float32
	Alignment Anchor

	// Reverse arranges children last-to-first along the primary axis.
	Reverse bool

	// ControlChildWidth/Height decide per axis whether the group assigns
	// child sizes from their constraints, or only positions them at their
	// current size.
	ControlChildWidth  bool
	ControlChildHeight bool

	// ForceExpandWidth/Height give every child at least flexible weight 1
	// on that axis.
	ForceExpandWidth  bool
	ForceExpandHeight bool

	// Cached gather results, consumed by the apply pass and by the parent
	// group through the Element accessors.
	totalMin       [2]float32
	totalPreferred [2]float32
	totalFlexible  [2]float32
	children       []*uikit.Node
}

// NewGroup creates a group controlling both child axes.
func NewGroup(n *uikit.Node, vertical bool) *Group {
	return &Group{
		Node:               n,
		Vertical:           vertical,
		ControlChildWidth:  true,
		ControlChildHeight: true,
	}
}

func (g *Group) controlSize(axis int) bool {
	if axis == uikit.Horizontal {
		return g.ControlChildWidth
	}
	return g.ControlChildHeight
}

func (g *Group) forceExpand(axis int) bool {
	if axis == uikit.Horizontal {
		return g.ForceExpandWidth
	}
	return g.ForceExpandHeight
}

// crossAxis reports whether the given axis is the group's cross axis.
func (g *Group) crossAxis(axis int) bool {
	return g.Vertical != (axis == uikit.Vertical)
}

// ============================================================================
// Element / Controller
// ============================================================================

// CalculateLayoutHorizontal rebuilds the eligible-child cache and gathers
// horizontal totals. The cache rebuild happens here because horizontal
// always runs first.
func (g *Group) CalculateLayoutHorizontal() {
	g.collectChildren()
	g.calcAlongAxis(uikit.Horizontal)
}

// CalculateLayoutVertical gathers vertical totals over the cached children.
func (g *Group) CalculateLayoutVertical() {
	g.calcAlongAxis(uikit.Vertical)
}

func (g *Group) SetLayoutHorizontal() { g.setChildrenAlongAxis(uikit.Horizontal) }
func (g *Group) SetLayoutVertical()   { g.setChildrenAlongAxis(uikit.Vertical) }

func (g *Group) Min(axis int) float32       { return g.totalMin[axis] }
func (g *Group) Preferred(axis int) float32 { return g.totalPreferred[axis] }
func (g *Group) Flexible(axis int) float32  { return g.totalFlexible[axis] }
func (g *Group) Priority() int              { return 0 }

// collectChildren rebuilds the eligible-child list: active children that do
// not opt out through an Ignorer. A child with ignorers is still eligible if
// any of them reports false.
func (g *Group) collectChildren() {
	g.children = g.children[:0]
	if g.Node == nil {
		return
	}
	for _, child := range g.Node.Children() {
		if !child.Alive() || !child.Active() {
			continue
		}
		eligible := true
		sawIgnorer := false
		for _, c := range child.Components() {
			ig, ok := c.(Ignorer)
			if !ok {
				continue
			}
			sawIgnorer = true
			if !ig.IgnoreLayout() {
				eligible = true
				break
			}
			eligible = false
		}
		if !sawIgnorer {
			eligible = true
		}
		if eligible {
			g.children = append(g.children, child)
		}
	}
}

// childSizes reads one child's constraints for an axis. When the group does
// not control the axis, the child's current size is taken as both min and
// preferred with no flexibility.
func (g *Group) childSizes(child *uikit.Node, axis int, controlSize, forceExpand bool) (min, preferred, flexible float32) {
	if !controlSize {
		min = child.Size().Axis(axis)
		preferred = min
		flexible = 0
	} else {
		min = MinSize(child, axis)
		preferred = PreferredSize(child, axis)
		flexible = FlexibleSize(child, axis)
	}
	if forceExpand && flexible < 1 {
		flexible = 1
	}
	return min, preferred, flexible
}

// ============================================================================
// Gather Pass
// ============================================================================

// calcAlongAxis accumulates the group's totals for one axis. Along the
// primary axis children add up with spacing; along the cross axis the
// largest child wins.
func (g *Group) calcAlongAxis(axis int) {
	combinedPadding := g.Padding.Along(axis)
	controlSize := g.controlSize(axis)
	forceExpand := g.forceExpand(axis)
	cross := g.crossAxis(axis)

	totalMin := combinedPadding
	totalPreferred := combinedPadding
	totalFlexible := float32(0)

	for _, child := range g.children {
		min, preferred, flexible := g.childSizes(child, axis, controlSize, forceExpand)
		if cross {
			if min+combinedPadding > totalMin {
				totalMin = min + combinedPadding
			}
			if preferred+combinedPadding > totalPreferred {
				totalPreferred = preferred + combinedPadding
			}
			if flexible > totalFlexible {
				totalFlexible = flexible
			}
		} else {
			totalMin += min + g.Spacing
			totalPreferred += preferred + g.Spacing
			totalFlexible += flexible
		}
	}

	if !cross && len(g.children) > 0 {
		totalMin -= g.Spacing
		totalPreferred -= g.Spacing
	}
	if totalPreferred < totalMin {
		totalPreferred = totalMin
	}

	g.totalMin[axis] = totalMin
	g.totalPreferred[axis] = totalPreferred
	g.totalFlexible[axis] = totalFlexible
}

// ============================================================================
// Apply Pass
// ============================================================================

// startOffset returns the inset of the content run from the group's leading
// edge, distributing surplus space by the alignment fraction.
func (g *Group) startOffset(axis int, requiredSpaceWithoutPadding float32) float32 {
	requiredSpace := requiredSpaceWithoutPadding + g.Padding.Along(axis)
	available := g.Node.Size().Axis(axis)
	surplus := available - requiredSpace
	return g.Padding.Leading(axis) + surplus*g.Alignment.Fraction(axis)
}

// setChildrenAlongAxis assigns child insets (and, when controlled, sizes)
// for one axis from the group's resolved size.
func (g *Group) setChildrenAlongAxis(axis int) {
	if g.Node == nil {
		return
	}
	size := g.Node.Size().Axis(axis)
	controlSize := g.controlSize(axis)
	forceExpand := g.forceExpand(axis)
	align := g.Alignment.Fraction(axis)

	if g.crossAxis(axis) {
		innerSize := size - g.Padding.Along(axis)
		for _, child := range g.children {
			min, preferred, flexible := g.childSizes(child, axis, controlSize, forceExpand)

			// A flexible child may fill the whole inner size; a rigid one is
			// capped at its preferred size.
			limit := preferred
			if flexible > 0 {
				limit = size
			}
			requiredSpace := clamp(innerSize, min, limit)
			startOffset := g.startOffset(axis, requiredSpace)
			if controlSize {
				child.SetInsetAndSize(axis, startOffset, requiredSpace)
			} else {
				offsetInCell := (requiredSpace - child.Size().Axis(axis)) * align
				child.SetInset(axis, startOffset+offsetInCell)
			}
		}
		return
	}

	pos := g.Padding.Leading(axis)
	itemFlexMultiplier := float32(0)
	surplus := size - g.totalPreferred[axis]
	if surplus > 0 {
		if g.totalFlexible[axis] == 0 {
			pos = g.startOffset(axis, g.totalPreferred[axis]-g.Padding.Along(axis))
		} else {
			itemFlexMultiplier = surplus / g.totalFlexible[axis]
		}
	}

	// Below preferred, every child shrinks proportionally between its min
	// and preferred.
	minMaxLerp := float32(0)
	if g.totalMin[axis] != g.totalPreferred[axis] {
		minMaxLerp = uikit.Clamp01((size - g.totalMin[axis]) / (g.totalPreferred[axis] - g.totalMin[axis]))
	}

	for i := range g.children {
		child := g.children[i]
		if g.Reverse {
			child = g.children[len(g.children)-1-i]
		}
		min, preferred, flexible := g.childSizes(child, axis, controlSize, forceExpand)

		childSize := uikit.Lerp(min, preferred, minMaxLerp)
		childSize += flexible * itemFlexMultiplier
		if controlSize {
			child.SetInsetAndSize(axis, pos, childSize)
		} else {
			offsetInCell := (childSize - child.Size().Axis(axis)) * align
			child.SetInset(axis, pos+offsetInCell)
		}
		pos += childSize + g.Spacing
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
