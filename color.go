package sparkle

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a color in 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// HSL is a color in hue (degrees), saturation and lightness (percent, 0-100).
type HSL struct {
	H, S, L float64
}

// Color is a resolved particle color. At most one of RGB and HSL is set; both
// are nil when the configured value could not be resolved.
type Color struct {
	RGB *RGB
	HSL *HSL
}

// IsZero reports whether no color representation is populated.
func (c Color) IsZero() bool {
	return c.RGB == nil && c.HSL == nil
}

// NRGBA converts c to a straight-alpha color with the given opacity in [0, 1].
// ok is false when c is empty.
func (c Color) NRGBA(alpha float64) (out color.NRGBA, ok bool) {
	a := uint8(math.Round(Range{0, 1}.Clamp(alpha) * 255))
	switch {
	case c.RGB != nil:
		return color.NRGBA{R: c.RGB.R, G: c.RGB.G, B: c.RGB.B, A: a}, true
	case c.HSL != nil:
		r, g, b := colorful.Hsl(c.HSL.H, c.HSL.S/100, c.HSL.L/100).Clamped().RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: a}, true
	}
	return color.NRGBA{}, false
}

type colorValueKind uint8

const (
	colorUnset colorValueKind = iota
	colorLiteral
	colorList
	colorFields
)

// ColorValue is a configured color: a literal string ("#ff0000", "rgb(...)",
// "hsl(...)", or "random"), a list of literals to pick from, or a set of named
// channel fields. Build one with ColorLiteral, ColorList, ColorRGB, ColorHSL,
// or ColorFields.
type ColorValue struct {
	kind    colorValueKind
	literal string
	list    []string
	fields  map[string]float64
}

// ColorLiteral returns a single literal color value.
func ColorLiteral(s string) ColorValue {
	return ColorValue{kind: colorLiteral, literal: s}
}

// ColorRandom returns the literal "random", which resolves to a uniformly
// random RGB triple per particle.
func ColorRandom() ColorValue {
	return ColorLiteral("random")
}

// ColorList returns a value that resolves to one uniformly chosen entry.
func ColorList(values ...string) ColorValue {
	return ColorValue{kind: colorList, list: append([]string(nil), values...)}
}

// ColorFields returns a structured value. It resolves to RGB when "r", "g" and
// "b" are all present, otherwise to HSL when "h", "s" and "l" are all present,
// otherwise to an empty Color.
func ColorFields(fields map[string]float64) ColorValue {
	cp := make(map[string]float64, len(fields))
	for k, v := range fields {
		cp[k] = v
	}
	return ColorValue{kind: colorFields, fields: cp}
}

// ColorRGB is shorthand for ColorFields with r, g and b set.
func ColorRGB(r, g, b uint8) ColorValue {
	return ColorFields(map[string]float64{"r": float64(r), "g": float64(g), "b": float64(b)})
}

// ColorHSL is shorthand for ColorFields with h, s and l set.
func ColorHSL(h, s, l float64) ColorValue {
	return ColorFields(map[string]float64{"h": h, "s": s, "l": l})
}

// IsSet reports whether the value was configured at all.
func (v ColorValue) IsSet() bool {
	return v.kind != colorUnset
}

// ResolveColor turns a configured value into a concrete Color. Unresolvable
// input yields an empty Color rather than an error.
func ResolveColor(v ColorValue, rng Rand) Color {
	switch v.kind {
	case colorLiteral:
		return resolveLiteral(v.literal, rng)
	case colorList:
		if len(v.list) == 0 {
			return Color{}
		}
		return resolveLiteral(v.list[rng.IntN(len(v.list))], rng)
	case colorFields:
		return resolveFields(v.fields)
	}
	return Color{}
}

func resolveLiteral(s string, rng Rand) Color {
	s = strings.TrimSpace(s)
	if s == "random" {
		return Color{RGB: &RGB{
			R: uint8(rng.IntN(256)),
			G: uint8(rng.IntN(256)),
			B: uint8(rng.IntN(256)),
		}}
	}
	lower := strings.ToLower(strings.ReplaceAll(s, " ", ""))
	switch {
	case strings.HasPrefix(lower, "rgb("):
		var r, g, b int
		if _, err := fmt.Sscanf(lower, "rgb(%d,%d,%d)", &r, &g, &b); err != nil {
			return Color{}
		}
		return Color{RGB: &RGB{R: clampByte(float64(r)), G: clampByte(float64(g)), B: clampByte(float64(b))}}
	case strings.HasPrefix(lower, "hsl("):
		var h, sat, l float64
		if _, err := fmt.Sscanf(lower, "hsl(%f,%f%%,%f%%)", &h, &sat, &l); err != nil {
			return Color{}
		}
		return Color{HSL: &HSL{H: h, S: sat, L: l}}
	}
	rgb, ok := ParseHex(s)
	if !ok {
		return Color{}
	}
	return Color{RGB: &rgb}
}

func resolveFields(f map[string]float64) Color {
	r, okR := f["r"]
	g, okG := f["g"]
	b, okB := f["b"]
	if okR && okG && okB {
		return Color{RGB: &RGB{R: clampByte(r), G: clampByte(g), B: clampByte(b)}}
	}
	h, okH := f["h"]
	s, okS := f["s"]
	l, okL := f["l"]
	if okH && okS && okL {
		return Color{HSL: &HSL{H: h, S: s, L: l}}
	}
	return Color{}
}

// ParseHex decodes "#rrggbb" or "#rgb" (the leading '#' is optional).
func ParseHex(s string) (RGB, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 3 && len(s) != 6 {
		return RGB{}, false
	}
	c, err := colorful.Hex("#" + s)
	if err != nil {
		return RGB{}, false
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, true
}

func clampByte(v float64) uint8 {
	return uint8(math.Round(Range{0, 255}.Clamp(v)))
}
