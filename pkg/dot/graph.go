package dot

// Kind selects between directed and undirected documents.
type Kind int

const (
	// Directed produces a digraph; edges use the "->" operator.
	Directed Kind = iota
	// Undirected produces a graph; edges use the "--" operator.
	Undirected
)

// Graph is the document root. It has the same containment shape as
// [Subgraph] plus the graph-level attribute set and the directed/strict
// flags the encoder needs for the document header.
//
// The zero value is not usable - use [NewGraph].
type Graph struct {
	kind   Kind
	strict bool
	id     string

	label     *string
	fontName  *string
	fontSize  *float64
	fontColor *Color
	bgColor   *Color
	rankDir   *RankDir
	rankSep   *float64
	nodeSep   *float64
	size      *Size

	container
}

// NewGraph creates an empty anonymous graph of the given kind.
func NewGraph(kind Kind) *Graph {
	return &Graph{kind: kind}
}

// NewNamedGraph creates an empty graph with an identifier.
func NewNamedGraph(kind Kind, id string) *Graph {
	return &Graph{kind: kind, id: id}
}

// Kind returns whether the graph is directed or undirected.
func (g *Graph) Kind() Kind { return g.kind }

// ID returns the graph's identifier; ok is false for anonymous graphs.
func (g *Graph) ID() (string, bool) { return g.id, g.id != "" }

// Strict reports whether the graph is marked strict.
func (g *Graph) Strict() bool { return g.strict }

// SetStrict marks the graph strict; Graphviz then collapses multi-edges.
func (g *Graph) SetStrict(strict bool) { g.strict = strict }

func (g *Graph) slots() []slot {
	return []slot{
		textSlot("label", g.label),
		textSlot("fontname", g.fontName),
		numberSlot("fontsize", g.fontSize),
		colorSlot("fontcolor", g.fontColor),
		colorSlot("bgcolor", g.bgColor),
		tokenSlot("rankdir", g.rankDir),
		numberSlot("ranksep", g.rankSep),
		numberSlot("nodesep", g.nodeSep),
		sizeSlot("size", g.size),
	}
}

// Attributes returns the graph's set attributes as ordered (wire name,
// value) pairs, in declared slot order regardless of assignment order.
func (g *Graph) Attributes() []Attribute { return collect(g.slots()) }

// AddSubgraph appends a child subgraph, preserving insertion order.
func (g *Graph) AddSubgraph(sub *Subgraph) { g.addSubgraphs([]*Subgraph{sub}) }

// AddSubgraphs appends child subgraphs in argument order.
func (g *Graph) AddSubgraphs(subs ...*Subgraph) { g.addSubgraphs(subs) }

// AddNode appends a node, preserving insertion order.
func (g *Graph) AddNode(n *Node) { g.addNodes([]*Node{n}) }

// AddNodes appends nodes in argument order.
func (g *Graph) AddNodes(nodes ...*Node) { g.addNodes(nodes) }

// AddEdge appends an edge, preserving insertion order.
func (g *Graph) AddEdge(e *Edge) { g.addEdges([]*Edge{e}) }

// AddEdges appends edges in argument order.
func (g *Graph) AddEdges(edges ...*Edge) { g.addEdges(edges) }

// Subgraphs returns the child subgraphs in insertion order.
func (g *Graph) Subgraphs() []*Subgraph { return g.subgraphs }

// Nodes returns the owned nodes in insertion order.
func (g *Graph) Nodes() []*Node { return g.nodes }

// Edges returns the owned edges in insertion order.
func (g *Graph) Edges() []*Edge { return g.edges }

// IsEmpty reports whether the document carries no drawing information,
// with the same node/edge asymmetry as [Subgraph.IsEmpty].
func (g *Graph) IsEmpty() bool { return g.isEmpty(g.Attributes()) }

// Label returns the graph label, if set.
func (g *Graph) Label() (string, bool) { return getPtr(g.label) }

// SetLabel sets the graph label.
func (g *Graph) SetLabel(v string) { g.label = &v }

// ClearLabel unsets the label.
func (g *Graph) ClearLabel() { g.label = nil }

// FontName returns the label font, if set.
func (g *Graph) FontName() (string, bool) { return getPtr(g.fontName) }

// SetFontName sets the label font.
func (g *Graph) SetFontName(v string) { g.fontName = &v }

// ClearFontName unsets the label font.
func (g *Graph) ClearFontName() { g.fontName = nil }

// FontSize returns the label font size in points, if set.
func (g *Graph) FontSize() (float64, bool) { return getPtr(g.fontSize) }

// SetFontSize sets the label font size in points.
func (g *Graph) SetFontSize(v float64) { g.fontSize = &v }

// ClearFontSize unsets the font size.
func (g *Graph) ClearFontSize() { g.fontSize = nil }

// FontColor returns the label color, if set.
func (g *Graph) FontColor() (Color, bool) { return getPtr(g.fontColor) }

// SetFontColor sets the label color.
func (g *Graph) SetFontColor(v Color) { g.fontColor = &v }

// ClearFontColor unsets the label color.
func (g *Graph) ClearFontColor() { g.fontColor = nil }

// BGColor returns the canvas background color, if set.
func (g *Graph) BGColor() (Color, bool) { return getPtr(g.bgColor) }

// SetBGColor sets the canvas background color.
func (g *Graph) SetBGColor(v Color) { g.bgColor = &v }

// ClearBGColor unsets the background color.
func (g *Graph) ClearBGColor() { g.bgColor = nil }

// RankDir returns the layout direction, if set.
func (g *Graph) RankDir() (RankDir, bool) { return getPtr(g.rankDir) }

// SetRankDir sets the layout direction.
func (g *Graph) SetRankDir(v RankDir) { g.rankDir = &v }

// ClearRankDir unsets the layout direction.
func (g *Graph) ClearRankDir() { g.rankDir = nil }

// RankSep returns the separation between ranks in inches, if set.
func (g *Graph) RankSep() (float64, bool) { return getPtr(g.rankSep) }

// SetRankSep sets the separation between ranks in inches.
func (g *Graph) SetRankSep(v float64) { g.rankSep = &v }

// ClearRankSep unsets the rank separation.
func (g *Graph) ClearRankSep() { g.rankSep = nil }

// NodeSep returns the separation between adjacent nodes in inches, if set.
func (g *Graph) NodeSep() (float64, bool) { return getPtr(g.nodeSep) }

// SetNodeSep sets the separation between adjacent nodes in inches.
func (g *Graph) SetNodeSep(v float64) { g.nodeSep = &v }

// ClearNodeSep unsets the node separation.
func (g *Graph) ClearNodeSep() { g.nodeSep = nil }

// Size returns the maximum drawing size in inches, if set.
func (g *Graph) Size() (Size, bool) { return getPtr(g.size) }

// SetSize sets the maximum drawing size in inches.
func (g *Graph) SetSize(v Size) { g.size = &v }

// ClearSize unsets the maximum drawing size.
func (g *Graph) ClearSize() { g.size = nil }

// Equal reports structural equality: same kind, strictness, identifier,
// serialized attributes, and pairwise-equal child sequences in order.
func (g *Graph) Equal(o *Graph) bool {
	if g == nil || o == nil {
		return g == o
	}
	return g.kind == o.kind && g.strict == o.strict && g.id == o.id &&
		attributesEqual(g.Attributes(), o.Attributes()) &&
		g.container.equal(&o.container)
}

// Hash returns a content hash of the document. Equal graphs hash
// identically.
func (g *Graph) Hash() string { return canonHash(g) }

// Clone returns a deep copy of the document.
func (g *Graph) Clone() *Graph {
	out := *g
	out.label = clonePtr(g.label)
	out.fontName = clonePtr(g.fontName)
	out.fontSize = clonePtr(g.fontSize)
	out.fontColor = clonePtr(g.fontColor)
	out.bgColor = clonePtr(g.bgColor)
	out.rankDir = clonePtr(g.rankDir)
	out.rankSep = clonePtr(g.rankSep)
	out.nodeSep = clonePtr(g.nodeSep)
	out.size = clonePtr(g.size)
	out.container = g.container.clone()
	return &out
}

func (g *Graph) canon(w *canonWriter) {
	kind := "digraph"
	if g.kind == Undirected {
		kind = "graph"
	}
	if g.strict {
		kind = "strict " + kind
	}
	w.begin(kind, g.id, g.id != "")
	w.attrs(g.Attributes())
	g.container.canon(w)
	w.end()
}
