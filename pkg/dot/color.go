package dot

import "fmt"

// colorKind discriminates the representation of a Color.
type colorKind int

const (
	colorNamed colorKind = iota
	colorRGB
	colorRGBA
	colorHSV
)

// Color is a DOT color value: an X11/SVG color name, an RGB(A) triple, or
// an HSV triple. The zero value is the named color "" and should not be
// used; construct colors with [Named], [RGB], [RGBA], or [HSV].
//
// Color is comparable: two colors are equal iff they have the same
// representation and components. Named("red") and RGB(255, 0, 0) are
// distinct values even though they draw identically.
type Color struct {
	kind    colorKind
	name    string
	r, g, b uint8
	a       uint8
	h, s, v float64
}

// Named returns a color identified by a Graphviz color name (e.g. "red",
// "lightgrey", "transparent"). The name is not validated; Graphviz resolves
// it against the active color scheme.
func Named(name string) Color {
	return Color{kind: colorNamed, name: name}
}

// RGB returns an opaque color from 8-bit red/green/blue components.
func RGB(r, g, b uint8) Color {
	return Color{kind: colorRGB, r: r, g: g, b: b}
}

// RGBA returns a color from 8-bit red/green/blue/alpha components.
func RGBA(r, g, b, a uint8) Color {
	return Color{kind: colorRGBA, r: r, g: g, b: b, a: a}
}

// HSV returns a color from hue/saturation/value components, each in [0, 1].
func HSV(h, s, v float64) Color {
	return Color{kind: colorHSV, h: h, s: s, v: v}
}

// String returns the DOT textual form of the color:
// the bare name, "#rrggbb", "#rrggbbaa", or "h,s,v".
func (c Color) String() string {
	switch c.kind {
	case colorRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	case colorRGBA:
		return fmt.Sprintf("#%02x%02x%02x%02x", c.r, c.g, c.b, c.a)
	case colorHSV:
		return fmt.Sprintf("%.3f,%.3f,%.3f", c.h, c.s, c.v)
	default:
		return c.name
	}
}

// Wire implements [Value]. A single color serializes as its String form.
func (c Color) Wire() string { return c.String() }

// ColorList is a sequence of colors serialized in DOT color-list form,
// with ":" separating the entries. Graphviz uses color lists for gradient
// fills and striped/wedged styles.
type ColorList []Color

// Wire implements [Value].
func (l ColorList) Wire() string {
	var out string
	for i, c := range l {
		if i > 0 {
			out += ":"
		}
		out += c.String()
	}
	return out
}
