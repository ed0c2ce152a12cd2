package dot

import (
	"slices"
	"strings"
)

// styleKind discriminates the case of a Style value.
type styleKind int

const (
	styleSolid styleKind = iota
	styleDashed
	styleDotted
	styleBold
	styleInvisible
	styleRounded
	styleFilled
	styleStriped
	styleWedged
	styleCompound
)

// Style is a DOT style value. Plain cases (solid, dashed, ...) carry no
// data; the color-bearing cases carry a single fill color ([Filled]), a
// list of stripe or wedge colors ([Striped], [Wedged]), or a list of nested
// styles ([Compound]).
//
// Style is the single source of truth for an element's fill colors: the
// attribute containers derive their fillcolor slot from [Style.Colors]
// whenever the style slot changes.
type Style struct {
	kind   styleKind
	fill   Color
	colors []Color
	styles []Style
}

// Solid returns the solid line style.
func Solid() Style { return Style{kind: styleSolid} }

// Dashed returns the dashed line style.
func Dashed() Style { return Style{kind: styleDashed} }

// Dotted returns the dotted line style.
func Dotted() Style { return Style{kind: styleDotted} }

// Bold returns the bold line style.
func Bold() Style { return Style{kind: styleBold} }

// Invisible returns the invis style; the element is laid out but not drawn.
func Invisible() Style { return Style{kind: styleInvisible} }

// Rounded returns the rounded-corner style for boxes and clusters.
func Rounded() Style { return Style{kind: styleRounded} }

// Filled returns the filled style with a single fill color.
func Filled(c Color) Style { return Style{kind: styleFilled, fill: c} }

// Striped returns the striped style; the element is filled with vertical
// stripes in the given colors.
func Striped(colors ...Color) Style {
	return Style{kind: styleStriped, colors: slices.Clone(colors)}
}

// Wedged returns the wedged style; the element is filled with wedges in the
// given colors.
func Wedged(colors ...Color) Style {
	return Style{kind: styleWedged, colors: slices.Clone(colors)}
}

// Compound combines several styles into one (e.g. rounded + filled).
func Compound(styles ...Style) Style {
	return Style{kind: styleCompound, styles: slices.Clone(styles)}
}

// Colors returns the flattened fill colors the style resolves to:
// one element for Filled, the color lists of Striped and Wedged, the
// concatenated resolution of every nested style for Compound, and nil for
// the plain cases.
func (s Style) Colors() []Color {
	switch s.kind {
	case styleFilled:
		return []Color{s.fill}
	case styleStriped, styleWedged:
		return slices.Clone(s.colors)
	case styleCompound:
		var out []Color
		for _, sub := range s.styles {
			out = append(out, sub.Colors()...)
		}
		return out
	default:
		return nil
	}
}

// token returns the DOT keyword for a non-compound style case.
func (s Style) token() string {
	switch s.kind {
	case styleDashed:
		return "dashed"
	case styleDotted:
		return "dotted"
	case styleBold:
		return "bold"
	case styleInvisible:
		return "invis"
	case styleRounded:
		return "rounded"
	case styleFilled:
		return "filled"
	case styleStriped:
		return "striped"
	case styleWedged:
		return "wedged"
	default:
		return "solid"
	}
}

// Wire implements [Value]. Compound styles join their nested tokens with a
// comma ("rounded,filled"); the colors of color-bearing cases are not part
// of the style text, they serialize through the fillcolor slot.
func (s Style) Wire() string {
	if s.kind != styleCompound {
		return s.token()
	}
	tokens := make([]string, len(s.styles))
	for i, sub := range s.styles {
		tokens[i] = sub.Wire()
	}
	return strings.Join(tokens, ",")
}

// Equal reports whether two styles are structurally identical: same case
// and, for the color- and style-bearing cases, equal payloads in order.
func (s Style) Equal(o Style) bool {
	if s.kind != o.kind {
		return false
	}
	switch s.kind {
	case styleFilled:
		return s.fill == o.fill
	case styleStriped, styleWedged:
		return slices.Equal(s.colors, o.colors)
	case styleCompound:
		return slices.EqualFunc(s.styles, o.styles, Style.Equal)
	default:
		return true
	}
}
