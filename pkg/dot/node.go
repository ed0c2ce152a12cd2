package dot

// Node is a leaf element of the containment tree. A node carries an
// identifier and the same optional attribute storage as the other element
// kinds. Nodes do not own children; edges reference them by identifier.
//
// The zero value is not usable - use [NewNode].
type Node struct {
	id string

	label     *string
	fontName  *string
	fontSize  *float64
	fontColor *Color
	shape     *Shape
	color     *Color
	styledAttrs
	width    *float64
	height   *float64
	penWidth *float64
	url      *string
	tooltip  *string
}

// NewNode creates a node with the given identifier and no attributes.
func NewNode(id string) *Node {
	return &Node{id: id}
}

// ID returns the node's identifier.
func (n *Node) ID() string { return n.id }

// slots returns the node's declared slot table. The order here is the
// serialization order.
func (n *Node) slots() []slot {
	return []slot{
		textSlot("label", n.label),
		textSlot("fontname", n.fontName),
		numberSlot("fontsize", n.fontSize),
		colorSlot("fontcolor", n.fontColor),
		tokenSlot("shape", n.shape),
		colorSlot("color", n.color),
		styleSlot("style", n.style),
		colorListSlot("fillcolor", n.fillColors),
		numberSlot("width", n.width),
		numberSlot("height", n.height),
		numberSlot("penwidth", n.penWidth),
		textSlot("URL", n.url),
		textSlot("tooltip", n.tooltip),
	}
}

// Attributes returns the node's set attributes as ordered (wire name,
// value) pairs. Unset attributes are omitted; the order is the declared
// slot order regardless of assignment order.
func (n *Node) Attributes() []Attribute { return collect(n.slots()) }

// Label returns the node's display label, if set.
func (n *Node) Label() (string, bool) { return getPtr(n.label) }

// SetLabel sets the node's display label.
func (n *Node) SetLabel(v string) { n.label = &v }

// ClearLabel unsets the label.
func (n *Node) ClearLabel() { n.label = nil }

// FontName returns the label font, if set.
func (n *Node) FontName() (string, bool) { return getPtr(n.fontName) }

// SetFontName sets the label font.
func (n *Node) SetFontName(v string) { n.fontName = &v }

// ClearFontName unsets the label font.
func (n *Node) ClearFontName() { n.fontName = nil }

// FontSize returns the label font size in points, if set.
func (n *Node) FontSize() (float64, bool) { return getPtr(n.fontSize) }

// SetFontSize sets the label font size in points.
func (n *Node) SetFontSize(v float64) { n.fontSize = &v }

// ClearFontSize unsets the font size.
func (n *Node) ClearFontSize() { n.fontSize = nil }

// FontColor returns the label color, if set.
func (n *Node) FontColor() (Color, bool) { return getPtr(n.fontColor) }

// SetFontColor sets the label color.
func (n *Node) SetFontColor(v Color) { n.fontColor = &v }

// ClearFontColor unsets the label color.
func (n *Node) ClearFontColor() { n.fontColor = nil }

// Shape returns the node shape, if set.
func (n *Node) Shape() (Shape, bool) { return getPtr(n.shape) }

// SetShape sets the node shape.
func (n *Node) SetShape(v Shape) { n.shape = &v }

// ClearShape unsets the shape.
func (n *Node) ClearShape() { n.shape = nil }

// Color returns the outline color, if set.
func (n *Node) Color() (Color, bool) { return getPtr(n.color) }

// SetColor sets the outline color.
func (n *Node) SetColor(v Color) { n.color = &v }

// ClearColor unsets the outline color.
func (n *Node) ClearColor() { n.color = nil }

// Style returns the node's style, if set.
func (n *Node) Style() (Style, bool) { return n.getStyle() }

// SetStyle sets the node's style and recomputes the derived fillcolor slot
// from [Style.Colors].
func (n *Node) SetStyle(v Style) { n.setStyle(v) }

// ClearStyle unsets the style and its derived fillcolor slot.
func (n *Node) ClearStyle() { n.clearStyle() }

// FillColor returns the fill color the style resolves to, but only when it
// resolves to exactly one color; zero or several colors read as absent.
func (n *Node) FillColor() (Color, bool) { return n.fillColor() }

// SetFillColor rewrites the style slot to [Filled] wrapping v.
func (n *Node) SetFillColor(v Color) { n.setFillColor(v) }

// ClearFillColor clears the whole style slot.
func (n *Node) ClearFillColor() { n.clearFillColor() }

// Width returns the node width in inches, if set.
func (n *Node) Width() (float64, bool) { return getPtr(n.width) }

// SetWidth sets the node width in inches.
func (n *Node) SetWidth(v float64) { n.width = &v }

// ClearWidth unsets the width.
func (n *Node) ClearWidth() { n.width = nil }

// Height returns the node height in inches, if set.
func (n *Node) Height() (float64, bool) { return getPtr(n.height) }

// SetHeight sets the node height in inches.
func (n *Node) SetHeight(v float64) { n.height = &v }

// ClearHeight unsets the height.
func (n *Node) ClearHeight() { n.height = nil }

// PenWidth returns the outline pen width in points, if set.
func (n *Node) PenWidth() (float64, bool) { return getPtr(n.penWidth) }

// SetPenWidth sets the outline pen width in points.
func (n *Node) SetPenWidth(v float64) { n.penWidth = &v }

// ClearPenWidth unsets the pen width.
func (n *Node) ClearPenWidth() { n.penWidth = nil }

// URL returns the node's hyperlink, if set.
func (n *Node) URL() (string, bool) { return getPtr(n.url) }

// SetURL sets the node's hyperlink.
func (n *Node) SetURL(v string) { n.url = &v }

// ClearURL unsets the hyperlink.
func (n *Node) ClearURL() { n.url = nil }

// Tooltip returns the node's tooltip, if set.
func (n *Node) Tooltip() (string, bool) { return getPtr(n.tooltip) }

// SetTooltip sets the node's tooltip.
func (n *Node) SetTooltip(v string) { n.tooltip = &v }

// ClearTooltip unsets the tooltip.
func (n *Node) ClearTooltip() { n.tooltip = nil }

// Equal reports structural equality: same identifier and identical
// serialized attributes.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	return n.id == o.id && attributesEqual(n.Attributes(), o.Attributes())
}

// Hash returns a content hash of the node. Equal nodes hash identically.
func (n *Node) Hash() string { return canonHash(n) }

// Clone returns an independent copy of the node.
func (n *Node) Clone() *Node {
	out := *n
	out.label = clonePtr(n.label)
	out.fontName = clonePtr(n.fontName)
	out.fontSize = clonePtr(n.fontSize)
	out.fontColor = clonePtr(n.fontColor)
	out.shape = clonePtr(n.shape)
	out.color = clonePtr(n.color)
	out.styledAttrs = n.styledAttrs.clone()
	out.width = clonePtr(n.width)
	out.height = clonePtr(n.height)
	out.penWidth = clonePtr(n.penWidth)
	out.url = clonePtr(n.url)
	out.tooltip = clonePtr(n.tooltip)
	return &out
}

func (n *Node) canon(w *canonWriter) {
	w.begin("node", n.id, true)
	w.attrs(n.Attributes())
	w.end()
}
