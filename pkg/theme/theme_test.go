package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/andrey-krukovskiy/dotviz/pkg/dot"
	"github.com/andrey-krukovskiy/dotviz/pkg/errors"
)

const testTheme = `
[graph]
fontname = "Helvetica"
rankdir = "LR"
bgcolor = "transparent"

[node]
shape = "box"
fillcolor = "#f0f0f0"
fontsize = 12.0

[edge]
color = "gray40"
arrowhead = "vee"
`

func TestParse(t *testing.T) {
	th, err := Parse(testTheme)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if th.Graph.FontName != "Helvetica" {
		t.Errorf("Graph.FontName = %q", th.Graph.FontName)
	}
	if th.Node.Shape != "box" {
		t.Errorf("Node.Shape = %q", th.Node.Shape)
	}
	if th.Edge.ArrowHead != "vee" {
		t.Errorf("Edge.ArrowHead = %q", th.Edge.ArrowHead)
	}

	if _, err := Parse("[graph\nbroken"); !errors.Is(err, errors.ErrCodeInvalidTheme) {
		t.Errorf("error = %v, want INVALID_THEME", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dark.toml")
	if err := os.WriteFile(path, []byte(testTheme), 0o644); err != nil {
		t.Fatal(err)
	}

	th, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if th.Graph.RankDir != "LR" {
		t.Errorf("Graph.RankDir = %q", th.Graph.RankDir)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestApply(t *testing.T) {
	th, err := Parse(testTheme)
	if err != nil {
		t.Fatal(err)
	}

	g := dot.NewGraph(dot.Directed)
	g.SetRankDir(dot.RankDirTopToBottom) // already set, theme must not override

	styled := dot.NewNode("styled")
	styled.SetShape(dot.ShapeCircle)
	styled.SetStyle(dot.Filled(dot.Named("gold")))
	g.AddNode(styled)

	plain := dot.NewNode("plain")
	g.AddNode(plain)

	e := dot.NewEdge("styled", "plain")
	g.AddEdge(e)

	sub := dot.NewSubgraph("cluster_0")
	nested := dot.NewNode("nested")
	sub.AddNode(nested)
	g.AddSubgraph(sub)

	if err := th.Apply(g); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	// Graph defaults: rankdir kept, fontname and bgcolor themed.
	if rd, _ := g.RankDir(); rd != dot.RankDirTopToBottom {
		t.Errorf("RankDir = %v, theme overrode a set attribute", rd)
	}
	if fn, ok := g.FontName(); !ok || fn != "Helvetica" {
		t.Errorf("FontName = %q (ok=%v), want Helvetica", fn, ok)
	}
	if c, ok := g.BGColor(); !ok || c != dot.Named("transparent") {
		t.Errorf("BGColor = %v (ok=%v), want transparent", c, ok)
	}

	// Styled node keeps its own shape and fill.
	if sh, _ := styled.Shape(); sh != dot.ShapeCircle {
		t.Errorf("styled Shape = %v, theme overrode a set attribute", sh)
	}
	if c, _ := styled.FillColor(); c != dot.Named("gold") {
		t.Errorf("styled FillColor = %v, theme overrode a set style", c)
	}

	// Plain node gets themed defaults, including fill via the coupling.
	if sh, ok := plain.Shape(); !ok || sh != dot.ShapeBox {
		t.Errorf("plain Shape = %v (ok=%v), want box", sh, ok)
	}
	if c, ok := plain.FillColor(); !ok || c != dot.RGB(0xf0, 0xf0, 0xf0) {
		t.Errorf("plain FillColor = %v (ok=%v), want #f0f0f0", c, ok)
	}
	if st, ok := plain.Style(); !ok || !st.Equal(dot.Filled(dot.RGB(0xf0, 0xf0, 0xf0))) {
		t.Errorf("plain Style = %v (ok=%v), want Filled", st, ok)
	}
	if fs, ok := plain.FontSize(); !ok || fs != 12 {
		t.Errorf("plain FontSize = %v (ok=%v), want 12", fs, ok)
	}

	// Edge defaults.
	if c, ok := e.Color(); !ok || c != dot.Named("gray40") {
		t.Errorf("edge Color = %v (ok=%v), want gray40", c, ok)
	}
	if a, ok := e.ArrowHead(); !ok || a != dot.ArrowVee {
		t.Errorf("edge ArrowHead = %v (ok=%v), want vee", a, ok)
	}

	// Nested subgraph nodes are themed too.
	if sh, ok := nested.Shape(); !ok || sh != dot.ShapeBox {
		t.Errorf("nested Shape = %v (ok=%v), want box", sh, ok)
	}
}

func TestApplyRejectsBadValues(t *testing.T) {
	th, err := Parse("[node]\nfillcolor = \"#zz0000\"\n")
	if err != nil {
		t.Fatal(err)
	}

	g := dot.NewGraph(dot.Directed)
	g.AddNode(dot.NewNode("a"))

	if err := th.Apply(g); !errors.Is(err, errors.ErrCodeInvalidColor) {
		t.Errorf("error = %v, want INVALID_COLOR", err)
	}
}
