package dot

import "strconv"

// =============================================================================
// Wire Values
// =============================================================================

// Value is a type-erased attribute value ready for serialization. The set
// of implementations is closed: [Text], [Number], [Boolean], [Token],
// [Color], [ColorList], [Style], and [Size]. Each kind carries its own
// to-wire conversion so serialization never inspects runtime types.
type Value interface {
	// Wire returns the attribute's textual wire form, unquoted.
	Wire() string
}

// Text is a free-form string value (labels, font names, URLs).
type Text string

// Wire implements [Value].
func (t Text) Wire() string { return string(t) }

// Number is a numeric value (font sizes, weights, separations).
type Number float64

// Wire implements [Value].
func (n Number) Wire() string { return strconv.FormatFloat(float64(n), 'g', -1, 64) }

// Boolean is a true/false value.
type Boolean bool

// Wire implements [Value].
func (b Boolean) Wire() string {
	if b {
		return "true"
	}
	return "false"
}

// Token is an enumerated keyword value (shapes, arrow types, rank
// directions). Tokens serialize as their raw string.
type Token string

// Wire implements [Value].
func (t Token) Wire() string { return string(t) }

// Attribute is one serialized (wire name, value) pair.
type Attribute struct {
	Name  string
	Value Value
}

// =============================================================================
// Slot Table
// =============================================================================

// slot binds a wire name to one optional attribute cell. Each element kind
// declares a fixed, ordered slot table; serialization walks the table and
// emits only the slots whose cell is currently set. Declared order is the
// serialization order, regardless of assignment order.
type slot struct {
	name    string
	present bool
	value   Value
}

// collect returns the set slots of a table as attributes, preserving the
// table's declared order.
func collect(slots []slot) []Attribute {
	var out []Attribute
	for _, s := range slots {
		if s.present {
			out = append(out, Attribute{Name: s.name, Value: s.value})
		}
	}
	return out
}

func textSlot(name string, p *string) slot {
	if p == nil {
		return slot{name: name}
	}
	return slot{name: name, present: true, value: Text(*p)}
}

func numberSlot(name string, p *float64) slot {
	if p == nil {
		return slot{name: name}
	}
	return slot{name: name, present: true, value: Number(*p)}
}

func boolSlot(name string, p *bool) slot {
	if p == nil {
		return slot{name: name}
	}
	return slot{name: name, present: true, value: Boolean(*p)}
}

func tokenSlot[T ~string](name string, p *T) slot {
	if p == nil {
		return slot{name: name}
	}
	return slot{name: name, present: true, value: Token(*p)}
}

func colorSlot(name string, p *Color) slot {
	if p == nil {
		return slot{name: name}
	}
	return slot{name: name, present: true, value: *p}
}

func sizeSlot(name string, p *Size) slot {
	if p == nil {
		return slot{name: name}
	}
	return slot{name: name, present: true, value: *p}
}

func styleSlot(name string, p *Style) slot {
	if p == nil {
		return slot{name: name}
	}
	return slot{name: name, present: true, value: *p}
}

// colorListSlot serializes a derived color list: absent when empty, a
// single color when the list has one entry, a DOT color list otherwise.
func colorListSlot(name string, colors []Color) slot {
	switch len(colors) {
	case 0:
		return slot{name: name}
	case 1:
		return slot{name: name, present: true, value: colors[0]}
	default:
		return slot{name: name, present: true, value: ColorList(colors)}
	}
}

// attributesEqual compares two serialized attribute lists pairwise.
func attributesEqual(a, b []Attribute) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || a[i].Value.Wire() != b[i].Value.Wire() {
			return false
		}
	}
	return true
}

// =============================================================================
// Style / Fill-Color Coupling
// =============================================================================

// styledAttrs holds the style slot together with its derived fill-color
// storage. The fill-color cell has no independent existence: it is
// recomputed from the style on every style write, and the public fill-color
// accessors are a projection over it. This keeps the two slots from ever
// disagreeing; style is always the source of truth.
type styledAttrs struct {
	style      *Style
	fillColors []Color // derived from style; backs the fillcolor slot
}

func (a *styledAttrs) setStyle(s Style) {
	a.style = &s
	a.fillColors = s.Colors()
}

func (a *styledAttrs) clearStyle() {
	a.style = nil
	a.fillColors = nil
}

func (a *styledAttrs) getStyle() (Style, bool) {
	if a.style == nil {
		return Style{}, false
	}
	return *a.style, true
}

// fillColor reads as a concrete color only when the style resolves to
// exactly one color. Zero or several resolved colors collapse to absent;
// callers that need the full list go through the style itself.
func (a *styledAttrs) fillColor() (Color, bool) {
	if len(a.fillColors) != 1 {
		return Color{}, false
	}
	return a.fillColors[0], true
}

// setFillColor desugars to rewriting the style slot to Filled(c).
func (a *styledAttrs) setFillColor(c Color) { a.setStyle(Filled(c)) }

// clearFillColor clears the whole style slot, not just the projection.
func (a *styledAttrs) clearFillColor() { a.clearStyle() }
