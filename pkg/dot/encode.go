package dot

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Encode renders the document as DOT text. Subgraphs for which
// [Subgraph.IsEmpty] is true are omitted entirely; everything else is
// emitted in insertion order with attribute lists in declared slot order.
func Encode(g *Graph) string {
	var b strings.Builder
	enc := encoder{w: &b, directed: g.kind == Directed}
	enc.graph(g)
	return b.String()
}

// EncodeTo writes the DOT text to w.
func EncodeTo(w io.Writer, g *Graph) error {
	_, err := io.WriteString(w, Encode(g))
	return err
}

// String returns the DOT text of the document.
func (g *Graph) String() string { return Encode(g) }

type encoder struct {
	w        *strings.Builder
	directed bool
	depth    int
}

func (e *encoder) graph(g *Graph) {
	if g.strict {
		e.w.WriteString("strict ")
	}
	if g.kind == Directed {
		e.w.WriteString("digraph ")
	} else {
		e.w.WriteString("graph ")
	}
	if g.id != "" {
		e.w.WriteString(quote(g.id))
		e.w.WriteString(" ")
	}
	e.w.WriteString("{\n")
	e.depth++
	e.body(g.Attributes(), &g.container)
	e.depth--
	e.w.WriteString("}\n")
}

func (e *encoder) subgraph(s *Subgraph) {
	e.indent()
	if s.id != "" {
		fmt.Fprintf(e.w, "subgraph %s ", quote(s.id))
	}
	e.w.WriteString("{\n")
	e.depth++
	e.body(s.Attributes(), &s.container)
	e.depth--
	e.indent()
	e.w.WriteString("}\n")
}

// body writes the container's own attribute statements, then nodes, edges,
// and non-empty child subgraphs, each group in insertion order.
func (e *encoder) body(attrs []Attribute, c *container) {
	for _, a := range attrs {
		e.indent()
		fmt.Fprintf(e.w, "%s=%s;\n", a.Name, quote(a.Value.Wire()))
	}
	for _, n := range c.nodes {
		e.indent()
		e.w.WriteString(quote(n.ID()))
		e.attrList(n.Attributes())
		e.w.WriteString(";\n")
	}
	for _, ed := range c.edges {
		op := "--"
		if e.directed {
			op = "->"
		}
		e.indent()
		fmt.Fprintf(e.w, "%s %s %s", quote(ed.From()), op, quote(ed.To()))
		e.attrList(ed.Attributes())
		e.w.WriteString(";\n")
	}
	for _, s := range c.subgraphs {
		if s.IsEmpty() {
			continue
		}
		e.subgraph(s)
	}
}

func (e *encoder) attrList(attrs []Attribute) {
	if len(attrs) == 0 {
		return
	}
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		parts[i] = fmt.Sprintf("%s=%s", a.Name, quote(a.Value.Wire()))
	}
	fmt.Fprintf(e.w, " [%s]", strings.Join(parts, ", "))
}

func (e *encoder) indent() {
	e.w.WriteString(strings.Repeat("  ", e.depth))
}

var bareIDRe = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*|-?(\.[0-9]+|[0-9]+(\.[0-9]*)?))$`)

// dotKeywords cannot appear unquoted as IDs.
var dotKeywords = map[string]bool{
	"graph": true, "digraph": true, "subgraph": true,
	"node": true, "edge": true, "strict": true,
}

// quote returns s in a form usable as a DOT ID: bare when it is already a
// valid unquoted identifier or numeral, double-quoted otherwise. Embedded
// quotes are escaped and literal newlines become \n; backslashes pass
// through untouched so DOT escape sequences in labels keep working.
func quote(s string) string {
	if bareIDRe.MatchString(s) && !dotKeywords[strings.ToLower(s)] {
		return s
	}
	escaped := strings.ReplaceAll(s, `"`, `\"`)
	escaped = strings.ReplaceAll(escaped, "\n", `\n`)
	return `"` + escaped + `"`
}
