package dot

import "slices"

// =============================================================================
// Containment
// =============================================================================

// container holds the ordered child sequences shared by Graph and Subgraph.
// Appends preserve insertion order; nothing is validated, deduplicated, or
// reordered at this layer.
type container struct {
	subgraphs []*Subgraph
	nodes     []*Node
	edges     []*Edge
}

func (c *container) addSubgraphs(subgraphs []*Subgraph) {
	c.subgraphs = append(c.subgraphs, subgraphs...)
}

func (c *container) addNodes(nodes []*Node) {
	c.nodes = append(c.nodes, nodes...)
}

func (c *container) addEdges(edges []*Edge) {
	c.edges = append(c.edges, edges...)
}

// isEmpty reports whether the container, together with the owner's own
// attributes, carries any drawing information. Nodes count only when they
// have at least one attribute set: a bare node draws nothing of its own,
// while a bare edge still implies a connection. This asymmetry is relied on
// by the encoder to omit empty containers.
func (c *container) isEmpty(ownAttrs []Attribute) bool {
	if len(ownAttrs) > 0 || len(c.subgraphs) > 0 || len(c.edges) > 0 {
		return false
	}
	for _, n := range c.nodes {
		if len(n.Attributes()) > 0 {
			return false
		}
	}
	return true
}

func (c *container) equal(o *container) bool {
	return slices.EqualFunc(c.subgraphs, o.subgraphs, (*Subgraph).Equal) &&
		slices.EqualFunc(c.nodes, o.nodes, (*Node).Equal) &&
		slices.EqualFunc(c.edges, o.edges, (*Edge).Equal)
}

func (c *container) clone() container {
	out := container{
		subgraphs: make([]*Subgraph, len(c.subgraphs)),
		nodes:     make([]*Node, len(c.nodes)),
		edges:     make([]*Edge, len(c.edges)),
	}
	for i, s := range c.subgraphs {
		out.subgraphs[i] = s.Clone()
	}
	for i, n := range c.nodes {
		out.nodes[i] = n.Clone()
	}
	for i, e := range c.edges {
		out.edges[i] = e.Clone()
	}
	return out
}

func (c *container) canon(w *canonWriter) {
	for _, s := range c.subgraphs {
		s.canon(w)
	}
	for _, n := range c.nodes {
		n.canon(w)
	}
	for _, e := range c.edges {
		e.canon(w)
	}
}

// =============================================================================
// Subgraph
// =============================================================================

// Subgraph is a nested container element. It owns ordered sequences of
// child subgraphs, nodes, and edges, plus its own optional attributes.
// A subgraph whose identifier starts with "cluster" is drawn by Graphviz as
// a bounded cluster.
//
// The zero value is not usable - use [NewSubgraph].
type Subgraph struct {
	id string

	label     *string
	fontName  *string
	fontSize  *float64
	fontColor *Color
	color     *Color
	styledAttrs
	rank     *Rank
	ordering *Ordering

	container
}

// NewSubgraph creates a subgraph with the given identifier and no children.
// An empty identifier makes the subgraph anonymous.
func NewSubgraph(id string) *Subgraph {
	return &Subgraph{id: id}
}

// ID returns the subgraph's identifier; ok is false for anonymous
// subgraphs.
func (s *Subgraph) ID() (string, bool) {
	return s.id, s.id != ""
}

func (s *Subgraph) slots() []slot {
	return []slot{
		textSlot("label", s.label),
		textSlot("fontname", s.fontName),
		numberSlot("fontsize", s.fontSize),
		colorSlot("fontcolor", s.fontColor),
		colorSlot("color", s.color),
		styleSlot("style", s.style),
		colorListSlot("fillcolor", s.fillColors),
		tokenSlot("rank", s.rank),
		tokenSlot("ordering", s.ordering),
	}
}

// Attributes returns the subgraph's set attributes as ordered (wire name,
// value) pairs, in declared slot order regardless of assignment order.
func (s *Subgraph) Attributes() []Attribute { return collect(s.slots()) }

// AddSubgraph appends a child subgraph, preserving insertion order.
func (s *Subgraph) AddSubgraph(sub *Subgraph) { s.addSubgraphs([]*Subgraph{sub}) }

// AddSubgraphs appends child subgraphs in argument order, equivalent to
// calling AddSubgraph once per element.
func (s *Subgraph) AddSubgraphs(subs ...*Subgraph) { s.addSubgraphs(subs) }

// AddNode appends a node, preserving insertion order.
func (s *Subgraph) AddNode(n *Node) { s.addNodes([]*Node{n}) }

// AddNodes appends nodes in argument order.
func (s *Subgraph) AddNodes(nodes ...*Node) { s.addNodes(nodes) }

// AddEdge appends an edge, preserving insertion order.
func (s *Subgraph) AddEdge(e *Edge) { s.addEdges([]*Edge{e}) }

// AddEdges appends edges in argument order.
func (s *Subgraph) AddEdges(edges ...*Edge) { s.addEdges(edges) }

// Subgraphs returns the child subgraphs in insertion order. The returned
// slice is shared with the element; treat it as read-only.
func (s *Subgraph) Subgraphs() []*Subgraph { return s.subgraphs }

// Nodes returns the owned nodes in insertion order. The returned slice is
// shared with the element; treat it as read-only.
func (s *Subgraph) Nodes() []*Node { return s.nodes }

// Edges returns the owned edges in insertion order. The returned slice is
// shared with the element; treat it as read-only.
func (s *Subgraph) Edges() []*Edge { return s.edges }

// IsEmpty reports whether the subgraph carries no drawing information:
// no child subgraphs, no edges, no attributes of its own, and no node with
// at least one attribute set. Nodes with identifiers but no attributes do
// not make a subgraph non-empty; edges always do.
func (s *Subgraph) IsEmpty() bool { return s.isEmpty(s.Attributes()) }

// Label returns the subgraph label, if set.
func (s *Subgraph) Label() (string, bool) { return getPtr(s.label) }

// SetLabel sets the subgraph label.
func (s *Subgraph) SetLabel(v string) { s.label = &v }

// ClearLabel unsets the label.
func (s *Subgraph) ClearLabel() { s.label = nil }

// FontName returns the label font, if set.
func (s *Subgraph) FontName() (string, bool) { return getPtr(s.fontName) }

// SetFontName sets the label font.
func (s *Subgraph) SetFontName(v string) { s.fontName = &v }

// ClearFontName unsets the label font.
func (s *Subgraph) ClearFontName() { s.fontName = nil }

// FontSize returns the label font size in points, if set.
func (s *Subgraph) FontSize() (float64, bool) { return getPtr(s.fontSize) }

// SetFontSize sets the label font size in points.
func (s *Subgraph) SetFontSize(v float64) { s.fontSize = &v }

// ClearFontSize unsets the font size.
func (s *Subgraph) ClearFontSize() { s.fontSize = nil }

// FontColor returns the label color, if set.
func (s *Subgraph) FontColor() (Color, bool) { return getPtr(s.fontColor) }

// SetFontColor sets the label color.
func (s *Subgraph) SetFontColor(v Color) { s.fontColor = &v }

// ClearFontColor unsets the label color.
func (s *Subgraph) ClearFontColor() { s.fontColor = nil }

// Color returns the border color, if set.
func (s *Subgraph) Color() (Color, bool) { return getPtr(s.color) }

// SetColor sets the border color.
func (s *Subgraph) SetColor(v Color) { s.color = &v }

// ClearColor unsets the border color.
func (s *Subgraph) ClearColor() { s.color = nil }

// Style returns the subgraph style, if set.
func (s *Subgraph) Style() (Style, bool) { return s.getStyle() }

// SetStyle sets the subgraph style and recomputes the derived fillcolor
// slot from [Style.Colors].
func (s *Subgraph) SetStyle(v Style) { s.setStyle(v) }

// ClearStyle unsets the style and its derived fillcolor slot.
func (s *Subgraph) ClearStyle() { s.clearStyle() }

// FillColor returns the fill color the style resolves to, only when it
// resolves to exactly one color; zero or several colors read as absent.
func (s *Subgraph) FillColor() (Color, bool) { return s.fillColor() }

// SetFillColor rewrites the style slot to [Filled] wrapping v.
func (s *Subgraph) SetFillColor(v Color) { s.setFillColor(v) }

// ClearFillColor clears the whole style slot.
func (s *Subgraph) ClearFillColor() { s.clearFillColor() }

// Rank returns the rank constraint, if set.
func (s *Subgraph) Rank() (Rank, bool) { return getPtr(s.rank) }

// SetRank sets the rank constraint for the subgraph's nodes.
func (s *Subgraph) SetRank(v Rank) { s.rank = &v }

// ClearRank unsets the rank constraint.
func (s *Subgraph) ClearRank() { s.rank = nil }

// Ordering returns the edge ordering constraint, if set.
func (s *Subgraph) Ordering() (Ordering, bool) { return getPtr(s.ordering) }

// SetOrdering sets the edge ordering constraint.
func (s *Subgraph) SetOrdering(v Ordering) { s.ordering = &v }

// ClearOrdering unsets the edge ordering constraint.
func (s *Subgraph) ClearOrdering() { s.ordering = nil }

// Equal reports structural equality: same identifier, identical serialized
// attributes, and pairwise-equal child sequences in order. Differing child
// order makes subgraphs unequal.
func (s *Subgraph) Equal(o *Subgraph) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.id == o.id &&
		attributesEqual(s.Attributes(), o.Attributes()) &&
		s.container.equal(&o.container)
}

// Hash returns a content hash of the subtree. Equal subgraphs hash
// identically.
func (s *Subgraph) Hash() string { return canonHash(s) }

// Clone returns a deep copy of the subgraph and its whole subtree.
func (s *Subgraph) Clone() *Subgraph {
	out := *s
	out.label = clonePtr(s.label)
	out.fontName = clonePtr(s.fontName)
	out.fontSize = clonePtr(s.fontSize)
	out.fontColor = clonePtr(s.fontColor)
	out.color = clonePtr(s.color)
	out.styledAttrs = s.styledAttrs.clone()
	out.rank = clonePtr(s.rank)
	out.ordering = clonePtr(s.ordering)
	out.container = s.container.clone()
	return &out
}

func (s *Subgraph) canon(w *canonWriter) {
	w.begin("subgraph", s.id, s.id != "")
	w.attrs(s.Attributes())
	s.container.canon(w)
	w.end()
}
