package graphjson

import (
	"sort"

	"github.com/andrey-krukovskiy/dotviz/pkg/dot"
	"github.com/andrey-krukovskiy/dotviz/pkg/errors"
)

// =============================================================================
// Document → Model
// =============================================================================

// ToGraph converts a Document to the typed model.
// Returns structured errors for unknown kinds, malformed attribute values,
// and invalid identifiers.
func ToGraph(d Document) (*dot.Graph, error) {
	var kind dot.Kind
	switch d.Kind {
	case KindDigraph:
		kind = dot.Directed
	case KindGraph:
		kind = dot.Undirected
	default:
		return nil, errors.New(errors.ErrCodeInvalidDocument,
			"kind must be %q or %q: %q", KindDigraph, KindGraph, d.Kind)
	}

	g := dot.NewNamedGraph(kind, d.ID)
	g.SetStrict(d.Strict)

	if err := applyGraphAttrs(g, d.Attrs); err != nil {
		return nil, err
	}
	if err := fillContainer(d.Nodes, d.Edges, d.Subgraphs, g.AddNode, g.AddEdge, g.AddSubgraph); err != nil {
		return nil, err
	}
	return g, nil
}

// fillContainer converts serialized children and appends them through the
// given adders, preserving their order within each group.
func fillContainer(nodes []Node, edges []Edge, subs []Subgraph,
	addNode func(*dot.Node), addEdge func(*dot.Edge), addSub func(*dot.Subgraph)) error {

	for _, nj := range nodes {
		n, err := toNode(nj)
		if err != nil {
			return err
		}
		addNode(n)
	}
	for _, ej := range edges {
		e, err := toEdge(ej)
		if err != nil {
			return err
		}
		addEdge(e)
	}
	for _, sj := range subs {
		s, err := toSubgraph(sj)
		if err != nil {
			return err
		}
		addSub(s)
	}
	return nil
}

func toNode(nj Node) (*dot.Node, error) {
	if err := errors.ValidateIdentifier(nj.ID); err != nil {
		return nil, err
	}
	n := dot.NewNode(nj.ID)
	if err := applyNodeAttrs(n, nj.Attrs); err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "node %s", nj.ID)
	}
	return n, nil
}

func toEdge(ej Edge) (*dot.Edge, error) {
	if err := errors.ValidateIdentifier(ej.From); err != nil {
		return nil, err
	}
	if err := errors.ValidateIdentifier(ej.To); err != nil {
		return nil, err
	}
	e := dot.NewEdge(ej.From, ej.To)
	if err := applyEdgeAttrs(e, ej.Attrs); err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "edge %s -> %s", ej.From, ej.To)
	}
	return e, nil
}

func toSubgraph(sj Subgraph) (*dot.Subgraph, error) {
	if sj.ID != "" {
		if err := errors.ValidateIdentifier(sj.ID); err != nil {
			return nil, err
		}
	}
	s := dot.NewSubgraph(sj.ID)
	if err := applySubgraphAttrs(s, sj.Attrs); err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "subgraph %q", sj.ID)
	}
	if err := fillContainer(sj.Nodes, sj.Edges, sj.Subgraphs, s.AddNode, s.AddEdge, s.AddSubgraph); err != nil {
		return nil, err
	}
	return s, nil
}

// =============================================================================
// Attribute Application
// =============================================================================

// sortedKeys returns the non-coupled attribute keys in deterministic order.
// The style and fillcolor keys are handled together afterwards.
func sortedKeys(attrs map[string]string) []string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		if k == "style" || k == "fillcolor" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// applyStyleAttrs reconstructs the coupled style/fillcolor pair. The style
// attribute is authoritative; a fillcolor without a style becomes Filled.
func applyStyleAttrs(attrs map[string]string, setStyle func(dot.Style), setFill func(dot.Color)) error {
	styleStr, hasStyle := attrs["style"]
	fillStr, hasFill := attrs["fillcolor"]

	var fills []dot.Color
	if hasFill {
		var err error
		fills, err = ParseColorList(fillStr)
		if err != nil {
			return err
		}
	}

	switch {
	case hasStyle:
		st, err := ParseStyle(styleStr, fills)
		if err != nil {
			return err
		}
		setStyle(st)
	case hasFill && len(fills) == 1:
		setFill(fills[0])
	case hasFill:
		return errors.New(errors.ErrCodeInvalidStyle,
			"fillcolor list requires a striped or wedged style")
	}
	return nil
}

func applyNodeAttrs(n *dot.Node, attrs map[string]string) error {
	for _, key := range sortedKeys(attrs) {
		val := attrs[key]
		var err error
		switch key {
		case "label":
			n.SetLabel(val)
		case "fontname":
			n.SetFontName(val)
		case "fontsize":
			var v float64
			if v, err = parseFloat(key, val); err == nil {
				n.SetFontSize(v)
			}
		case "fontcolor":
			var c dot.Color
			if c, err = ParseColor(val); err == nil {
				n.SetFontColor(c)
			}
		case "shape":
			var sh dot.Shape
			if sh, err = ParseShape(val); err == nil {
				n.SetShape(sh)
			}
		case "color":
			var c dot.Color
			if c, err = ParseColor(val); err == nil {
				n.SetColor(c)
			}
		case "width":
			var v float64
			if v, err = parseFloat(key, val); err == nil {
				n.SetWidth(v)
			}
		case "height":
			var v float64
			if v, err = parseFloat(key, val); err == nil {
				n.SetHeight(v)
			}
		case "penwidth":
			var v float64
			if v, err = parseFloat(key, val); err == nil {
				n.SetPenWidth(v)
			}
		case "URL":
			n.SetURL(val)
		case "tooltip":
			n.SetTooltip(val)
		default:
			err = errors.New(errors.ErrCodeInvalidAttribute, "unknown node attribute: %q", key)
		}
		if err != nil {
			return err
		}
	}
	return applyStyleAttrs(attrs, n.SetStyle, n.SetFillColor)
}

func applyEdgeAttrs(e *dot.Edge, attrs map[string]string) error {
	for _, key := range sortedKeys(attrs) {
		val := attrs[key]
		var err error
		switch key {
		case "label":
			e.SetLabel(val)
		case "fontname":
			e.SetFontName(val)
		case "fontsize":
			var v float64
			if v, err = parseFloat(key, val); err == nil {
				e.SetFontSize(v)
			}
		case "fontcolor":
			var c dot.Color
			if c, err = ParseColor(val); err == nil {
				e.SetFontColor(c)
			}
		case "color":
			var c dot.Color
			if c, err = ParseColor(val); err == nil {
				e.SetColor(c)
			}
		case "arrowhead":
			var a dot.Arrow
			if a, err = ParseArrow(val); err == nil {
				e.SetArrowHead(a)
			}
		case "arrowtail":
			var a dot.Arrow
			if a, err = ParseArrow(val); err == nil {
				e.SetArrowTail(a)
			}
		case "dir":
			var d dot.Direction
			if d, err = ParseDirection(val); err == nil {
				e.SetDirection(d)
			}
		case "weight":
			var v float64
			if v, err = parseFloat(key, val); err == nil {
				e.SetWeight(v)
			}
		case "constraint":
			var b bool
			if b, err = parseBool(key, val); err == nil {
				e.SetConstraint(b)
			}
		case "penwidth":
			var v float64
			if v, err = parseFloat(key, val); err == nil {
				e.SetPenWidth(v)
			}
		case "URL":
			e.SetURL(val)
		default:
			err = errors.New(errors.ErrCodeInvalidAttribute, "unknown edge attribute: %q", key)
		}
		if err != nil {
			return err
		}
	}
	return applyStyleAttrs(attrs, e.SetStyle, e.SetFillColor)
}

func applySubgraphAttrs(s *dot.Subgraph, attrs map[string]string) error {
	for _, key := range sortedKeys(attrs) {
		val := attrs[key]
		var err error
		switch key {
		case "label":
			s.SetLabel(val)
		case "fontname":
			s.SetFontName(val)
		case "fontsize":
			var v float64
			if v, err = parseFloat(key, val); err == nil {
				s.SetFontSize(v)
			}
		case "fontcolor":
			var c dot.Color
			if c, err = ParseColor(val); err == nil {
				s.SetFontColor(c)
			}
		case "color":
			var c dot.Color
			if c, err = ParseColor(val); err == nil {
				s.SetColor(c)
			}
		case "rank":
			var r dot.Rank
			if r, err = ParseRank(val); err == nil {
				s.SetRank(r)
			}
		case "ordering":
			var o dot.Ordering
			if o, err = ParseOrdering(val); err == nil {
				s.SetOrdering(o)
			}
		default:
			err = errors.New(errors.ErrCodeInvalidAttribute, "unknown subgraph attribute: %q", key)
		}
		if err != nil {
			return err
		}
	}
	return applyStyleAttrs(attrs, s.SetStyle, s.SetFillColor)
}

func applyGraphAttrs(g *dot.Graph, attrs map[string]string) error {
	for _, key := range sortedKeys(attrs) {
		val := attrs[key]
		var err error
		switch key {
		case "label":
			g.SetLabel(val)
		case "fontname":
			g.SetFontName(val)
		case "fontsize":
			var v float64
			if v, err = parseFloat(key, val); err == nil {
				g.SetFontSize(v)
			}
		case "fontcolor":
			var c dot.Color
			if c, err = ParseColor(val); err == nil {
				g.SetFontColor(c)
			}
		case "bgcolor":
			var c dot.Color
			if c, err = ParseColor(val); err == nil {
				g.SetBGColor(c)
			}
		case "rankdir":
			var rd dot.RankDir
			if rd, err = ParseRankDir(val); err == nil {
				g.SetRankDir(rd)
			}
		case "ranksep":
			var v float64
			if v, err = parseFloat(key, val); err == nil {
				g.SetRankSep(v)
			}
		case "nodesep":
			var v float64
			if v, err = parseFloat(key, val); err == nil {
				g.SetNodeSep(v)
			}
		case "size":
			var sz dot.Size
			if sz, err = ParseSize(val); err == nil {
				g.SetSize(sz)
			}
		default:
			err = errors.New(errors.ErrCodeInvalidAttribute, "unknown graph attribute: %q", key)
		}
		if err != nil {
			return err
		}
	}
	// The graph root has no style slot; fillcolor/style keys are unknown here.
	if _, ok := attrs["style"]; ok {
		return errors.New(errors.ErrCodeInvalidAttribute, "unknown graph attribute: \"style\"")
	}
	if _, ok := attrs["fillcolor"]; ok {
		return errors.New(errors.ErrCodeInvalidAttribute, "unknown graph attribute: \"fillcolor\"")
	}
	return nil
}

// =============================================================================
// Model → Document
// =============================================================================

// FromGraph converts the typed model to its serialization format.
// Attribute values are the wire strings the DOT encoder would emit, so a
// document survives export → import unchanged.
func FromGraph(g *dot.Graph) Document {
	d := Document{
		Kind:   KindDigraph,
		Strict: g.Strict(),
		Attrs:  attrMap(g.Attributes()),
	}
	if g.Kind() == dot.Undirected {
		d.Kind = KindGraph
	}
	if id, ok := g.ID(); ok {
		d.ID = id
	}
	d.Nodes, d.Edges, d.Subgraphs = fromContainer(g.Nodes(), g.Edges(), g.Subgraphs())
	return d
}

func fromContainer(nodes []*dot.Node, edges []*dot.Edge, subs []*dot.Subgraph) ([]Node, []Edge, []Subgraph) {
	var nj []Node
	for _, n := range nodes {
		nj = append(nj, Node{ID: n.ID(), Attrs: attrMap(n.Attributes())})
	}

	var ej []Edge
	for _, e := range edges {
		ej = append(ej, Edge{From: e.From(), To: e.To(), Attrs: attrMap(e.Attributes())})
	}

	var sj []Subgraph
	for _, s := range subs {
		out := Subgraph{Attrs: attrMap(s.Attributes())}
		if id, ok := s.ID(); ok {
			out.ID = id
		}
		out.Nodes, out.Edges, out.Subgraphs = fromContainer(s.Nodes(), s.Edges(), s.Subgraphs())
		sj = append(sj, out)
	}

	return nj, ej, sj
}

// attrMap converts a serialized attribute list to a wire-string map.
// Returns nil for empty lists so JSON output omits the field.
func attrMap(attrs []dot.Attribute) map[string]string {
	if len(attrs) == 0 {
		return nil
	}
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[a.Name] = a.Value.Wire()
	}
	return m
}
