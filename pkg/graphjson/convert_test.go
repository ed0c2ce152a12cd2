package graphjson

import (
	"bytes"
	"testing"

	"github.com/andrey-krukovskiy/dotviz/pkg/dot"
	"github.com/andrey-krukovskiy/dotviz/pkg/errors"
)

// buildTestGraph assembles a document exercising every element kind.
func buildTestGraph() *dot.Graph {
	g := dot.NewNamedGraph(dot.Directed, "deps")
	g.SetRankDir(dot.RankDirLeftToRight)
	g.SetLabel("service map")

	cluster := dot.NewSubgraph("cluster_backend")
	cluster.SetLabel("backend")
	cluster.SetStyle(dot.Compound(dot.Rounded(), dot.Filled(dot.Named("lightgrey"))))

	api := dot.NewNode("api")
	api.SetShape(dot.ShapeBox)
	api.SetFillColor(dot.RGB(255, 255, 255))
	cluster.AddNode(api)
	cluster.AddNode(dot.NewNode("db"))

	link := dot.NewEdge("api", "db")
	link.SetArrowHead(dot.ArrowVee)
	link.SetConstraint(true)
	cluster.AddEdge(link)

	inner := dot.NewSubgraph("")
	inner.SetRank(dot.RankSame)
	cluster.AddSubgraph(inner)
	g.AddSubgraph(cluster)

	web := dot.NewNode("web")
	web.SetStyle(dot.Striped(dot.Named("red"), dot.Named("blue")))
	g.AddNode(web)
	g.AddEdge(dot.NewEdge("web", "api"))

	return g
}

func TestRoundTrip(t *testing.T) {
	orig := buildTestGraph()

	data, err := MarshalDocument(orig)
	if err != nil {
		t.Fatalf("MarshalDocument: %v", err)
	}

	decoded, err := ReadDocument(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadDocument: %v", err)
	}

	if !orig.Equal(decoded) {
		t.Errorf("round trip changed the graph:\norig: %s\ngot:  %s", dot.Encode(orig), dot.Encode(decoded))
	}
	if orig.Hash() != decoded.Hash() {
		t.Error("round trip changed the content hash")
	}
}

func TestToGraphKind(t *testing.T) {
	tests := []struct {
		name    string
		kind    string
		want    dot.Kind
		wantErr bool
	}{
		{name: "digraph", kind: "digraph", want: dot.Directed},
		{name: "graph", kind: "graph", want: dot.Undirected},
		{name: "unknown", kind: "multigraph", wantErr: true},
		{name: "empty", kind: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ToGraph(Document{Kind: tt.kind})
			if tt.wantErr {
				if err == nil {
					t.Fatal("want error")
				}
				if !errors.Is(err, errors.ErrCodeInvalidDocument) {
					t.Errorf("error code = %s, want INVALID_DOCUMENT", errors.GetCode(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("ToGraph: %v", err)
			}
			if g.Kind() != tt.want {
				t.Errorf("Kind = %v, want %v", g.Kind(), tt.want)
			}
		})
	}
}

func TestToGraphStyleCoupling(t *testing.T) {
	// fillcolor without style becomes Filled via the coupling rule.
	g, err := ToGraph(Document{
		Kind:  "digraph",
		Nodes: []Node{{ID: "a", Attrs: map[string]string{"fillcolor": "gold"}}},
	})
	if err != nil {
		t.Fatalf("ToGraph: %v", err)
	}
	n := g.Nodes()[0]
	style, ok := n.Style()
	if !ok || !style.Equal(dot.Filled(dot.Named("gold"))) {
		t.Errorf("Style = %v (ok=%v), want Filled(gold)", style, ok)
	}

	// A multi-color fillcolor without a style is rejected.
	_, err = ToGraph(Document{
		Kind:  "digraph",
		Nodes: []Node{{ID: "a", Attrs: map[string]string{"fillcolor": "red:blue"}}},
	})
	if !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Errorf("error = %v, want INVALID_STYLE", err)
	}

	// A fillcolor the style cannot consume is rejected, not dropped.
	_, err = ToGraph(Document{
		Kind: "digraph",
		Nodes: []Node{{ID: "a", Attrs: map[string]string{
			"style":     "rounded",
			"fillcolor": "red",
		}}},
	})
	if !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Errorf("error = %v, want INVALID_STYLE for unconsumed fillcolor", err)
	}
}

func TestToGraphRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		code errors.Code
	}{
		{
			name: "unknown node attribute",
			doc: Document{Kind: "digraph",
				Nodes: []Node{{ID: "a", Attrs: map[string]string{"sparkle": "yes"}}}},
			code: errors.ErrCodeInvalidAttribute,
		},
		{
			name: "bad color",
			doc: Document{Kind: "digraph",
				Nodes: []Node{{ID: "a", Attrs: map[string]string{"color": "#zz0000"}}}},
			code: errors.ErrCodeInvalidColor,
		},
		{
			name: "bad fontsize",
			doc: Document{Kind: "digraph",
				Nodes: []Node{{ID: "a", Attrs: map[string]string{"fontsize": "big"}}}},
			code: errors.ErrCodeInvalidAttribute,
		},
		{
			name: "empty node id",
			doc:  Document{Kind: "digraph", Nodes: []Node{{ID: ""}}},
			code: errors.ErrCodeInvalidDocument,
		},
		{
			name: "empty edge endpoint",
			doc:  Document{Kind: "digraph", Edges: []Edge{{From: "a", To: ""}}},
			code: errors.ErrCodeInvalidDocument,
		},
		{
			name: "style on graph root",
			doc:  Document{Kind: "digraph", Attrs: map[string]string{"style": "filled"}},
			code: errors.ErrCodeInvalidAttribute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToGraph(tt.doc)
			if err == nil {
				t.Fatal("want error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %s, want %s (err: %v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestReadDocumentFileMissing(t *testing.T) {
	_, err := ReadDocumentFile(t.TempDir() + "/absent.json")
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestWriteReadDocumentFile(t *testing.T) {
	path := t.TempDir() + "/graph.json"
	orig := buildTestGraph()

	if err := WriteDocumentFile(orig, path); err != nil {
		t.Fatalf("WriteDocumentFile: %v", err)
	}

	decoded, err := ReadDocumentFile(path)
	if err != nil {
		t.Fatalf("ReadDocumentFile: %v", err)
	}
	if !orig.Equal(decoded) {
		t.Error("file round trip changed the graph")
	}
}

func TestUnmarshalDocument(t *testing.T) {
	doc, err := UnmarshalDocument([]byte(`{"kind": "digraph", "nodes": [{"id": "a"}]}`))
	if err != nil {
		t.Fatalf("UnmarshalDocument: %v", err)
	}
	if doc.Kind != "digraph" || len(doc.Nodes) != 1 {
		t.Errorf("unexpected document: %+v", doc)
	}

	if _, err := UnmarshalDocument([]byte(`{not json`)); !errors.Is(err, errors.ErrCodeInvalidDocument) {
		t.Errorf("error = %v, want INVALID_DOCUMENT", err)
	}
}
