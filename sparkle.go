package sparkle

import "math"

// Vec2 is a 2D vector used for positions, offsets, and velocities.
type Vec2 struct {
	X, Y float64
}

// Velocity is the motion vector of a particle in pixels per frame (60 Hz),
// before the configured move speed is applied.
type Velocity struct {
	Horizontal, Vertical float64
}

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// Clamp restricts v to [Min, Max].
func (r Range) Clamp(v float64) float64 {
	return math.Max(r.Min, math.Min(r.Max, v))
}

// ShapeKind selects how a particle is rendered.
type ShapeKind uint8

const (
	ShapeCircle   ShapeKind = iota // filled arc
	ShapeSquare                    // axis-aligned square ("edge")
	ShapeTriangle                  // three-sided polygon
	ShapePolygon                   // regular polygon with Shape.Polygon.Sides
	ShapeStar                      // star with Shape.Star.Sides points
	ShapeImage                     // scaled bitmap from Shape.Image
	ShapeChar                      // text glyph from Shape.Character
)

var shapeNames = [...]string{"circle", "square", "triangle", "polygon", "star", "image", "char"}

// String returns the lower-case shape name.
func (k ShapeKind) String() string {
	if int(k) < len(shapeNames) {
		return shapeNames[k]
	}
	return "unknown"
}

// ParseShapeKind maps a shape name to its kind. "edge" and "character" are
// accepted as aliases.
func ParseShapeKind(name string) (ShapeKind, bool) {
	switch name {
	case "edge":
		return ShapeSquare, true
	case "character":
		return ShapeChar, true
	}
	for i, n := range shapeNames {
		if n == name {
			return ShapeKind(i), true
		}
	}
	return ShapeCircle, false
}

// InteractMode is a bitmask of pointer interaction behaviors. Modes can be
// combined with bitwise OR (e.g. ModeGrab | ModeBubble).
type InteractMode uint8

// ModeNone disables pointer interaction.
const ModeNone InteractMode = 0

const (
	ModeGrab    InteractMode = 1 << iota // connecting line to the pointer
	ModeBubble                           // opacity/size pulse near the pointer
	ModeRepulse                          // push away from the pointer
)

// Has reports whether all bits of o are set in m.
func (m InteractMode) Has(o InteractMode) bool {
	return o != ModeNone && m&o == o
}

// ParseInteractMode maps "none", "grab", "bubble", or "repulse" to a mode.
func ParseInteractMode(name string) (InteractMode, bool) {
	switch name {
	case "none", "":
		return ModeNone, true
	case "grab":
		return ModeGrab, true
	case "bubble":
		return ModeBubble, true
	case "repulse":
		return ModeRepulse, true
	}
	return ModeNone, false
}

// ClickAction is what a pointer click does to the population.
type ClickAction uint8

const (
	ClickNone   ClickAction = iota // ignore clicks
	ClickPush                      // add Modes.Push.Quantity particles at the pointer
	ClickRemove                    // remove the oldest Modes.Remove.Quantity particles
)

// ParseClickAction maps "none", "push", or "remove" to an action.
func ParseClickAction(name string) (ClickAction, bool) {
	switch name {
	case "none", "":
		return ClickNone, true
	case "push":
		return ClickPush, true
	case "remove":
		return ClickRemove, true
	}
	return ClickNone, false
}

// OutMode is the boundary policy applied when a particle reaches a canvas edge.
type OutMode uint8

const (
	OutWrap    OutMode = iota // reappear on the opposite edge
	OutBounce                 // reflect velocity and clamp to the edge
	OutDestroy                // remove once fully outside the canvas
)

// ParseOutMode maps "wrap"/"out", "bounce", or "destroy" to a policy.
func ParseOutMode(name string) (OutMode, bool) {
	switch name {
	case "wrap", "out":
		return OutWrap, true
	case "bounce":
		return OutBounce, true
	case "destroy":
		return OutDestroy, true
	}
	return OutWrap, false
}

// Direction is the baseline movement direction of newly constructed particles.
type Direction uint8

const (
	DirectionNone Direction = iota // no baseline; drift only
	DirectionTop
	DirectionTopRight
	DirectionRight
	DirectionBottomRight
	DirectionBottom
	DirectionBottomLeft
	DirectionLeft
	DirectionTopLeft
	DirectionAngle // use Move.Angle (degrees, clockwise from +X)
)

var directionNames = [...]string{
	"none", "top", "top-right", "right", "bottom-right",
	"bottom", "bottom-left", "left", "top-left", "angle",
}

// String returns the direction name.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "unknown"
}

// ParseDirection maps a name such as "top-right" to a Direction.
func ParseDirection(name string) (Direction, bool) {
	for i, n := range directionNames {
		if n == name {
			return Direction(i), true
		}
	}
	return DirectionNone, false
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// dist returns the euclidean distance between two points.
func dist(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
