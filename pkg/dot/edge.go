package dot

// Edge is a connection between two nodes, referenced by identifier. The
// endpoints are fixed at construction; everything else is optional
// attribute storage with the same shape as the other element kinds.
//
// The zero value is not usable - use [NewEdge].
type Edge struct {
	from string
	to   string

	label     *string
	fontName  *string
	fontSize  *float64
	fontColor *Color
	color     *Color
	styledAttrs
	arrowHead  *Arrow
	arrowTail  *Arrow
	direction  *Direction
	weight     *float64
	constraint *bool
	penWidth   *float64
	url        *string
}

// NewEdge creates an edge between two node identifiers with no attributes.
// Neither endpoint is validated against the containing tree.
func NewEdge(from, to string) *Edge {
	return &Edge{from: from, to: to}
}

// From returns the source node identifier.
func (e *Edge) From() string { return e.from }

// To returns the target node identifier.
func (e *Edge) To() string { return e.to }

func (e *Edge) slots() []slot {
	return []slot{
		textSlot("label", e.label),
		textSlot("fontname", e.fontName),
		numberSlot("fontsize", e.fontSize),
		colorSlot("fontcolor", e.fontColor),
		colorSlot("color", e.color),
		styleSlot("style", e.style),
		colorListSlot("fillcolor", e.fillColors),
		tokenSlot("arrowhead", e.arrowHead),
		tokenSlot("arrowtail", e.arrowTail),
		tokenSlot("dir", e.direction),
		numberSlot("weight", e.weight),
		boolSlot("constraint", e.constraint),
		numberSlot("penwidth", e.penWidth),
		textSlot("URL", e.url),
	}
}

// Attributes returns the edge's set attributes as ordered (wire name,
// value) pairs, in declared slot order.
func (e *Edge) Attributes() []Attribute { return collect(e.slots()) }

// Label returns the edge label, if set.
func (e *Edge) Label() (string, bool) { return getPtr(e.label) }

// SetLabel sets the edge label.
func (e *Edge) SetLabel(v string) { e.label = &v }

// ClearLabel unsets the label.
func (e *Edge) ClearLabel() { e.label = nil }

// FontName returns the label font, if set.
func (e *Edge) FontName() (string, bool) { return getPtr(e.fontName) }

// SetFontName sets the label font.
func (e *Edge) SetFontName(v string) { e.fontName = &v }

// ClearFontName unsets the label font.
func (e *Edge) ClearFontName() { e.fontName = nil }

// FontSize returns the label font size in points, if set.
func (e *Edge) FontSize() (float64, bool) { return getPtr(e.fontSize) }

// SetFontSize sets the label font size in points.
func (e *Edge) SetFontSize(v float64) { e.fontSize = &v }

// ClearFontSize unsets the font size.
func (e *Edge) ClearFontSize() { e.fontSize = nil }

// FontColor returns the label color, if set.
func (e *Edge) FontColor() (Color, bool) { return getPtr(e.fontColor) }

// SetFontColor sets the label color.
func (e *Edge) SetFontColor(v Color) { e.fontColor = &v }

// ClearFontColor unsets the label color.
func (e *Edge) ClearFontColor() { e.fontColor = nil }

// Color returns the line color, if set.
func (e *Edge) Color() (Color, bool) { return getPtr(e.color) }

// SetColor sets the line color.
func (e *Edge) SetColor(v Color) { e.color = &v }

// ClearColor unsets the line color.
func (e *Edge) ClearColor() { e.color = nil }

// Style returns the edge style, if set.
func (e *Edge) Style() (Style, bool) { return e.getStyle() }

// SetStyle sets the edge style and recomputes the derived fillcolor slot.
func (e *Edge) SetStyle(v Style) { e.setStyle(v) }

// ClearStyle unsets the style and its derived fillcolor slot.
func (e *Edge) ClearStyle() { e.clearStyle() }

// FillColor returns the fill color the style resolves to, only when it
// resolves to exactly one color.
func (e *Edge) FillColor() (Color, bool) { return e.fillColor() }

// SetFillColor rewrites the style slot to [Filled] wrapping v.
func (e *Edge) SetFillColor(v Color) { e.setFillColor(v) }

// ClearFillColor clears the whole style slot.
func (e *Edge) ClearFillColor() { e.clearFillColor() }

// ArrowHead returns the head arrow shape, if set.
func (e *Edge) ArrowHead() (Arrow, bool) { return getPtr(e.arrowHead) }

// SetArrowHead sets the head arrow shape.
func (e *Edge) SetArrowHead(v Arrow) { e.arrowHead = &v }

// ClearArrowHead unsets the head arrow shape.
func (e *Edge) ClearArrowHead() { e.arrowHead = nil }

// ArrowTail returns the tail arrow shape, if set.
func (e *Edge) ArrowTail() (Arrow, bool) { return getPtr(e.arrowTail) }

// SetArrowTail sets the tail arrow shape.
func (e *Edge) SetArrowTail(v Arrow) { e.arrowTail = &v }

// ClearArrowTail unsets the tail arrow shape.
func (e *Edge) ClearArrowTail() { e.arrowTail = nil }

// Direction returns the arrowhead direction, if set.
func (e *Edge) Direction() (Direction, bool) { return getPtr(e.direction) }

// SetDirection sets the arrowhead direction.
func (e *Edge) SetDirection(v Direction) { e.direction = &v }

// ClearDirection unsets the arrowhead direction.
func (e *Edge) ClearDirection() { e.direction = nil }

// Weight returns the edge weight, if set.
func (e *Edge) Weight() (float64, bool) { return getPtr(e.weight) }

// SetWeight sets the edge weight.
func (e *Edge) SetWeight(v float64) { e.weight = &v }

// ClearWeight unsets the weight.
func (e *Edge) ClearWeight() { e.weight = nil }

// Constraint returns whether the edge participates in ranking, if set.
func (e *Edge) Constraint() (bool, bool) { return getPtr(e.constraint) }

// SetConstraint sets whether the edge participates in ranking.
func (e *Edge) SetConstraint(v bool) { e.constraint = &v }

// ClearConstraint unsets the constraint flag.
func (e *Edge) ClearConstraint() { e.constraint = nil }

// PenWidth returns the line pen width in points, if set.
func (e *Edge) PenWidth() (float64, bool) { return getPtr(e.penWidth) }

// SetPenWidth sets the line pen width in points.
func (e *Edge) SetPenWidth(v float64) { e.penWidth = &v }

// ClearPenWidth unsets the pen width.
func (e *Edge) ClearPenWidth() { e.penWidth = nil }

// URL returns the edge's hyperlink, if set.
func (e *Edge) URL() (string, bool) { return getPtr(e.url) }

// SetURL sets the edge's hyperlink.
func (e *Edge) SetURL(v string) { e.url = &v }

// ClearURL unsets the hyperlink.
func (e *Edge) ClearURL() { e.url = nil }

// Equal reports structural equality: same endpoints and identical
// serialized attributes.
func (e *Edge) Equal(o *Edge) bool {
	if e == nil || o == nil {
		return e == o
	}
	return e.from == o.from && e.to == o.to && attributesEqual(e.Attributes(), o.Attributes())
}

// Hash returns a content hash of the edge. Equal edges hash identically.
func (e *Edge) Hash() string { return canonHash(e) }

// Clone returns an independent copy of the edge.
func (e *Edge) Clone() *Edge {
	out := *e
	out.label = clonePtr(e.label)
	out.fontName = clonePtr(e.fontName)
	out.fontSize = clonePtr(e.fontSize)
	out.fontColor = clonePtr(e.fontColor)
	out.color = clonePtr(e.color)
	out.styledAttrs = e.styledAttrs.clone()
	out.arrowHead = clonePtr(e.arrowHead)
	out.arrowTail = clonePtr(e.arrowTail)
	out.direction = clonePtr(e.direction)
	out.weight = clonePtr(e.weight)
	out.constraint = clonePtr(e.constraint)
	out.penWidth = clonePtr(e.penWidth)
	out.url = clonePtr(e.url)
	return &out
}

func (e *Edge) canon(w *canonWriter) {
	w.begin("edge", e.from+"\x1f"+e.to, true)
	w.attrs(e.Attributes())
	w.end()
}
