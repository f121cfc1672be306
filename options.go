package sparkle

// Options is the immutable configuration snapshot a Container is built from.
// The engine never mutates it.
type Options struct {
	Particles     ParticleOptions
	Interactivity Interactivity
}

// ParticleOptions configures population, appearance, and motion.
type ParticleOptions struct {
	// Number is the target population at startup (before density scaling).
	Number  int
	Density Density
	Color   ColorValue
	Shape   Shape
	Opacity Opacity
	Size    Size
	Links   Links
	Move    Move
}

// Density scales the target population with canvas area.
type Density struct {
	Enable bool
	// Area is the canvas area (in thousands of square pixels) that holds
	// Number particles.
	Area float64
}

// Anim configures the oscillation of size or opacity.
type Anim struct {
	Enable bool
	// Speed is the per-frame step in hundredths.
	Speed float64
	// Sync gives every particle the same step instead of a random fraction.
	Sync bool
	// Min is the lower bound of the oscillation.
	Min float64
	// Max is the upper bound. Zero uses the particle's base value.
	Max float64
	// Decay shrinks the value from the upper bound to Min once and holds it
	// there instead of oscillating.
	Decay bool
}

// Opacity configures particle alpha.
type Opacity struct {
	Value  float64
	Random bool
	Anim   Anim
}

// Size configures particle radius.
type Size struct {
	Value  float64
	Random bool
	Anim   Anim
}

// Stroke is an optional outline drawn around vector shapes.
type Stroke struct {
	Width float64
	Color ColorValue
}

// Polygon configures ShapePolygon.
type Polygon struct {
	Sides int
}

// Star configures ShapeStar.
type Star struct {
	Sides int
	// Inset divides the outer radius to get the inner radius.
	Inset float64
}

// ImageOptions describes the bitmap used for ShapeImage. The engine never loads
// it; Src is handed to the Surface as an identifier.
type ImageOptions struct {
	Src          string
	Width        float64
	Height       float64
	ReplaceColor bool
}

// Character describes the glyph used for ShapeChar.
type Character struct {
	Value CharacterValue
}

// Shape configures particle rendering.
type Shape struct {
	Type      ShapeValue
	Stroke    Stroke
	Polygon   Polygon
	Star      Star
	Image     ImageOptions
	Character Character
}

// ShapeValue is a single shape kind or a list to choose from per particle.
type ShapeValue struct {
	kinds []ShapeKind
}

// ShapeOf returns a ShapeValue with one kind.
func ShapeOf(kind ShapeKind) ShapeValue {
	return ShapeValue{kinds: []ShapeKind{kind}}
}

// ShapeList returns a ShapeValue choosing uniformly among kinds.
func ShapeList(kinds ...ShapeKind) ShapeValue {
	return ShapeValue{kinds: append([]ShapeKind(nil), kinds...)}
}

// resolve picks the concrete kind. An unset value resolves to a circle.
func (v ShapeValue) resolve(rng Rand) ShapeKind {
	switch len(v.kinds) {
	case 0:
		return ShapeCircle
	case 1:
		return v.kinds[0]
	}
	return v.kinds[rng.IntN(len(v.kinds))]
}

// CharacterValue is a single string or a list of strings to choose from.
type CharacterValue struct {
	values []string
}

// CharacterOf returns a CharacterValue with a single literal.
func CharacterOf(s string) CharacterValue {
	return CharacterValue{values: []string{s}}
}

// CharacterList returns a CharacterValue choosing uniformly among values.
func CharacterList(values ...string) CharacterValue {
	return CharacterValue{values: append([]string(nil), values...)}
}

func (v CharacterValue) resolve(rng Rand) string {
	switch len(v.values) {
	case 0:
		return ""
	case 1:
		return v.values[0]
	}
	return v.values[rng.IntN(len(v.values))]
}

// Links configures lines drawn between nearby particles.
type Links struct {
	Enable   bool
	Distance float64
	Color    ColorValue
	Opacity  float64
	Width    float64
}

// Move configures particle motion.
type Move struct {
	Enable    bool
	Speed     float64
	Direction Direction
	// Angle is used when Direction is DirectionAngle, in degrees.
	Angle    float64
	Straight bool
	Random   bool
	// Bounce enables overlap avoidance at construction and reverses the
	// velocities of overlapping particles while moving.
	Bounce  bool
	OutMode OutMode
}

// Interactivity configures pointer-driven behavior.
type Interactivity struct {
	Events Events
	Modes  Modes
}

// Events selects which interactions the pointer triggers.
type Events struct {
	OnHover HoverEvent
	OnClick ClickEvent
}

// HoverEvent configures interactions active while the pointer is present.
type HoverEvent struct {
	Enable   bool
	Mode     InteractMode
	Parallax Parallax
}

// Parallax offsets particles away from the pointer proportionally to radius.
type Parallax struct {
	Enable bool
	Force  float64
	Smooth float64
}

// ClickEvent configures what a pointer click does.
type ClickEvent struct {
	Enable bool
	Action ClickAction
}

// Modes holds the parameters of each interaction.
type Modes struct {
	Grab    Grab
	Bubble  Bubble
	Repulse Repulse
	Push    Quantity
	Remove  Quantity
}

// Grab draws a line from each nearby particle to the pointer.
type Grab struct {
	Distance    float64
	LineOpacity float64
	// Color of grab lines. Unset falls back to Links.Color.
	Color ColorValue
	Width float64
}

// Bubble interpolates opacity and size toward targets near the pointer.
type Bubble struct {
	Distance float64
	// Size is the target radius at the pointer. Zero leaves size untouched.
	Size float64
	// Opacity is the target opacity at the pointer. Negative leaves opacity
	// untouched.
	Opacity float64
	// Duration is the time in seconds to return to the baseline after the
	// pointer leaves.
	Duration float64
}

// Repulse pushes particles away from the pointer.
type Repulse struct {
	Distance float64
	// Strength is the velocity delta at the pointer, in pixels per frame.
	Strength float64
	// MaxSpeed caps the velocity delta.
	MaxSpeed float64
	// Duration is the time in seconds for the delta to decay after the
	// particle leaves the radius.
	Duration float64
}

// Quantity is a particle count used by click actions.
type Quantity struct {
	Quantity int
}

// DefaultOptions returns the stock configuration: white circles linked by
// lines, drifting with wrap-around edges, repulsed on hover and pushed on click.
func DefaultOptions() Options {
	return Options{
		Particles: ParticleOptions{
			Number:  80,
			Density: Density{Enable: true, Area: 800},
			Color:   ColorLiteral("#ffffff"),
			Shape: Shape{
				Type:    ShapeOf(ShapeCircle),
				Stroke:  Stroke{Width: 0, Color: ColorLiteral("#000000")},
				Polygon: Polygon{Sides: 5},
				Star:    Star{Sides: 5, Inset: 2},
				Image:   ImageOptions{Width: 100, Height: 100},
			},
			Opacity: Opacity{Value: 0.5, Anim: Anim{Speed: 1, Min: 0.1}},
			Size:    Size{Value: 3, Random: true, Anim: Anim{Speed: 40, Min: 0.1}},
			Links: Links{
				Enable:   true,
				Distance: 150,
				Color:    ColorLiteral("#ffffff"),
				Opacity:  0.4,
				Width:    1,
			},
			Move: Move{
				Enable:  true,
				Speed:   2,
				OutMode: OutWrap,
			},
		},
		Interactivity: Interactivity{
			Events: Events{
				OnHover: HoverEvent{
					Enable:   true,
					Mode:     ModeRepulse,
					Parallax: Parallax{Force: 60, Smooth: 10},
				},
				OnClick: ClickEvent{Enable: true, Action: ClickPush},
			},
			Modes: Modes{
				Grab:    Grab{Distance: 140, LineOpacity: 1, Width: 1},
				Bubble:  Bubble{Distance: 200, Size: 20, Opacity: 0.8, Duration: 0.4},
				Repulse: Repulse{Distance: 100, Strength: 12, MaxSpeed: 8, Duration: 0.4},
				Push:    Quantity{Quantity: 4},
				Remove:  Quantity{Quantity: 2},
			},
		},
	}
}
