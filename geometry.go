package uikit

// ============================================================================
// Scalar Geometry
// ============================================================================
//
// All geometry in the engine is single-precision, matching the renderer side.
// Comparisons against cached values use exact equality on purpose: a write is
// skipped only when the value is bit-identical, never on an epsilon.

// Vec2 is a 2D point or direction in screen units.
type Vec2 struct {
	X, Y float32
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float32 { return v.X*o.X + v.Y*o.Y }

// SqrLen returns the squared length of v. Distance checks compare squared
// values to avoid the sqrt.
func (v Vec2) SqrLen() float32 { return v.X*v.X + v.Y*v.Y }

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Axis indexes one of the two layout axes.
const (
	Horizontal = 0
	Vertical   = 1
)

// Axis returns the component for the given axis (0 = X, 1 = Y).
func (v Vec2) Axis(axis int) float32 {
	if axis == Horizontal {
		return v.X
	}
	return v.Y
}

// SetAxis sets the component for the given axis.
func (v *Vec2) SetAxis(axis int, value float32) {
	if axis == Horizontal {
		v.X = value
	} else {
		v.Y = value
	}
}

// Rect is an axis-aligned rectangle. X, Y is the top-left corner.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// Contains checks if a point is within the rect. The right and bottom edges
// are exclusive so adjacent rects do not both claim the shared edge.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Size returns the rect extent along the given axis.
func (r Rect) Size(axis int) float32 {
	if axis == Horizontal {
		return r.Width
	}
	return r.Height
}

// LocalPoint converts a screen point to coordinates relative to the rect's
// top-left corner.
func (r Rect) LocalPoint(p Vec2) Vec2 {
	return Vec2{p.X - r.X, p.Y - r.Y}
}

// Insets is padding around a content box, in screen units.
type Insets struct {
	Left, Right, Top, Bottom float32
}

// Along returns the combined padding along the given axis.
func (i Insets) Along(axis int) float32 {
	if axis == Horizontal {
		return i.Left + i.Right
	}
	return i.Top + i.Bottom
}

// Leading returns the padding at the start edge of the given axis.
func (i Insets) Leading(axis int) float32 {
	if axis == Horizontal {
		return i.Left
	}
	return i.Top
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Lerp linearly interpolates from a to b by t, with t clamped to [0, 1].
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*Clamp01(t)
}
