// Package layout computes node sizes and positions from a declarative
// constraint model: per-axis minimum, preferred and flexible sizes gathered
// bottom-up, then applied top-down, horizontal fully before vertical so
// vertical sizing can depend on resolved widths.
package layout

import (
	"math"

	"github.com/agiangrant/uikit"
)

// ============================================================================
// Constraint Model
// ============================================================================

// Element supplies size constraints for the node it is attached to.
// Calculate* runs during the gather pass; the accessors are read afterwards.
// Negative values mean "no opinion" and are skipped by resolution.
type Element interface {
	CalculateLayoutHorizontal()
	CalculateLayoutVertical()

	Min(axis int) float32
	Preferred(axis int) float32
	Flexible(axis int) float32

	// Priority orders competing elements on one node: the highest priority
	// with a non-negative value wins.
	Priority() int
}

// Controller positions and sizes the children of its node during the apply
// pass.
type Controller interface {
	SetLayoutHorizontal()
	SetLayoutVertical()
}

// Ignorer lets a component exempt its node from parent layout.
type Ignorer interface {
	IgnoreLayout() bool
}

// ============================================================================
// Constraint Component
// ============================================================================

// Constraint is an explicit per-node constraint set. Unset values are -1.
type Constraint struct {
	MinSize       [2]float32
	PreferredSize [2]float32
	FlexibleSize  [2]float32

	LayoutPriority int
	Ignore         bool
}

// NewConstraint returns a constraint with every value unset.
func NewConstraint() *Constraint {
	return &Constraint{
		MinSize:       [2]float32{-1, -1},
		PreferredSize: [2]float32{-1, -1},
		FlexibleSize:  [2]float32{-1, -1},
	}
}

func (c *Constraint) CalculateLayoutHorizontal() {}
func (c *Constraint) CalculateLayoutVertical()   {}

func (c *Constraint) Min(axis int) float32       { return c.MinSize[axis] }
func (c *Constraint) Preferred(axis int) float32 { return c.PreferredSize[axis] }
func (c *Constraint) Flexible(axis int) float32  { return c.FlexibleSize[axis] }
func (c *Constraint) Priority() int              { return c.LayoutPriority }
func (c *Constraint) IgnoreLayout() bool         { return c.Ignore }

// ============================================================================
// Property Resolution
// ============================================================================

// MinSize resolves the minimum size of a node along an axis across all of
// its layout elements.
func MinSize(n *uikit.Node, axis int) float32 {
	return property(n, axis, Element.Min, 0)
}

// PreferredSize resolves the preferred size of a node along an axis. It is
// clamped to at least the minimum; a preferred below min never wins, it is
// lifted, not rejected.
func PreferredSize(n *uikit.Node, axis int) float32 {
	min := MinSize(n, axis)
	pref := property(n, axis, Element.Preferred, 0)
	if pref < min {
		return min
	}
	return pref
}

// FlexibleSize resolves the flexible weight of a node along an axis.
func FlexibleSize(n *uikit.Node, axis int) float32 {
	return property(n, axis, Element.Flexible, 0)
}

// property implements the resolution rule: among elements whose value is
// non-negative, the highest priority wins; equal priorities take the
// maximum value. Deterministic, never an error.
func property(n *uikit.Node, axis int, get func(Element, int) float32, def float32) float32 {
	if n == nil {
		return def
	}
	out := def
	maxPriority := math.MinInt
	for _, c := range n.Components() {
		e, ok := c.(Element)
		if !ok {
			continue
		}
		if ig, ok := c.(Ignorer); ok && ig.IgnoreLayout() {
			continue
		}
		pri := e.Priority()
		if pri < maxPriority {
			continue
		}
		v := get(e, axis)
		if v < 0 {
			continue
		}
		if pri > maxPriority {
			out = v
			maxPriority = pri
		} else if v > out {
			out = v
		}
	}
	return out
}
