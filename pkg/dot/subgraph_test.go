package dot

import "testing"

func TestAppendPreservesOrder(t *testing.T) {
	s := NewSubgraph("s")
	s.AddNode(NewNode("a"))
	s.AddNode(NewNode("b"))
	s.AddNode(NewNode("c"))

	want := []string{"a", "b", "c"}
	nodes := s.Nodes()
	if len(nodes) != len(want) {
		t.Fatalf("nodes = %d, want %d", len(nodes), len(want))
	}
	for i, id := range want {
		if nodes[i].ID() != id {
			t.Errorf("nodes[%d] = %s, want %s", i, nodes[i].ID(), id)
		}
	}
}

func TestBulkAppendEquivalence(t *testing.T) {
	build := func() (*Node, *Node, *Node) {
		return NewNode("a"), NewNode("b"), NewNode("c")
	}

	single := NewSubgraph("s")
	a1, b1, c1 := build()
	single.AddNode(a1)
	single.AddNode(b1)
	single.AddNode(c1)

	bulk := NewSubgraph("s")
	a2, b2, c2 := build()
	bulk.AddNodes(a2, b2, c2)

	if !single.Equal(bulk) {
		t.Error("bulk append should be equivalent to sequential single appends")
	}

	// Same for edges and subgraphs.
	se := NewSubgraph("e")
	se.AddEdge(NewEdge("a", "b"))
	se.AddEdge(NewEdge("b", "c"))
	be := NewSubgraph("e")
	be.AddEdges(NewEdge("a", "b"), NewEdge("b", "c"))
	if !se.Equal(be) {
		t.Error("bulk edge append should match sequential appends")
	}

	ss := NewSubgraph("p")
	ss.AddSubgraph(NewSubgraph("x"))
	ss.AddSubgraph(NewSubgraph("y"))
	bs := NewSubgraph("p")
	bs.AddSubgraphs(NewSubgraph("x"), NewSubgraph("y"))
	if !ss.Equal(bs) {
		t.Error("bulk subgraph append should match sequential appends")
	}
}

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Subgraph
		want  bool
	}{
		{
			name:  "Fresh",
			build: func() *Subgraph { return NewSubgraph("s") },
			want:  true,
		},
		{
			name: "BareNode",
			build: func() *Subgraph {
				s := NewSubgraph("s")
				s.AddNode(NewNode("a"))
				return s
			},
			want: true,
		},
		{
			name: "ManyBareNodes",
			build: func() *Subgraph {
				s := NewSubgraph("s")
				s.AddNodes(NewNode("a"), NewNode("b"), NewNode("c"))
				return s
			},
			want: true,
		},
		{
			name: "NodeWithAttribute",
			build: func() *Subgraph {
				s := NewSubgraph("s")
				n := NewNode("a")
				n.SetShape(ShapeBox)
				s.AddNode(n)
				return s
			},
			want: false,
		},
		{
			name: "Edge",
			build: func() *Subgraph {
				s := NewSubgraph("s")
				s.AddEdge(NewEdge("a", "b"))
				return s
			},
			want: false,
		},
		{
			name: "EmptyChildSubgraph",
			build: func() *Subgraph {
				s := NewSubgraph("s")
				s.AddSubgraph(NewSubgraph("t"))
				return s
			},
			want: false,
		},
		{
			name: "OwnAttribute",
			build: func() *Subgraph {
				s := NewSubgraph("s")
				s.SetLabel("hi")
				return s
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.build().IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSubgraphEqualAndHash(t *testing.T) {
	build := func() *Subgraph {
		s := NewSubgraph("cluster_0")
		s.SetLabel("backend")
		s.SetStyle(Compound(Rounded(), Filled(Named("lightgrey"))))
		n := NewNode("api")
		n.SetShape(ShapeBox)
		s.AddNode(n)
		s.AddNode(NewNode("db"))
		s.AddEdge(NewEdge("api", "db"))
		inner := NewSubgraph("")
		inner.SetRank(RankSame)
		s.AddSubgraph(inner)
		return s
	}

	a, b := build(), build()
	if !a.Equal(b) {
		t.Fatal("independently built identical subgraphs should be equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("equal subgraphs should hash identically")
	}

	// Child order matters.
	c := NewSubgraph("s")
	c.AddNodes(NewNode("a"), NewNode("b"))
	d := NewSubgraph("s")
	d.AddNodes(NewNode("b"), NewNode("a"))
	if c.Equal(d) {
		t.Error("differing child order should make subgraphs unequal")
	}
	if c.Hash() == d.Hash() {
		t.Error("differing child order should change the hash")
	}

	// Identifier matters.
	e := NewSubgraph("x")
	f := NewSubgraph("y")
	if e.Equal(f) {
		t.Error("differing identifiers should make subgraphs unequal")
	}

	// Attribute difference matters.
	g := build()
	g.SetFontSize(9)
	if a.Equal(g) {
		t.Error("differing attributes should make subgraphs unequal")
	}
}

func TestSubgraphCloneIsIndependent(t *testing.T) {
	orig := NewSubgraph("s")
	orig.SetLabel("original")
	n := NewNode("a")
	n.SetFillColor(Named("red"))
	orig.AddNode(n)

	copy := orig.Clone()
	if !orig.Equal(copy) {
		t.Fatal("clone should equal the original")
	}

	copy.SetLabel("changed")
	copy.Nodes()[0].SetFillColor(Named("blue"))
	copy.AddEdge(NewEdge("a", "b"))

	if label, _ := orig.Label(); label != "original" {
		t.Errorf("original label = %q, mutated through clone", label)
	}
	if c, _ := orig.Nodes()[0].FillColor(); c != Named("red") {
		t.Errorf("original node fill = %v, mutated through clone", c)
	}
	if len(orig.Edges()) != 0 {
		t.Error("appending to clone should not affect original")
	}
}

func TestAnonymousSubgraphID(t *testing.T) {
	s := NewSubgraph("")
	if id, ok := s.ID(); ok {
		t.Errorf("anonymous subgraph ID = %q, want absent", id)
	}
	named := NewSubgraph("cluster_1")
	if id, ok := named.ID(); !ok || id != "cluster_1" {
		t.Errorf("ID = %q (ok=%v), want cluster_1", id, ok)
	}
}

func TestGraphEqual(t *testing.T) {
	build := func() *Graph {
		g := NewNamedGraph(Directed, "G")
		g.SetRankDir(RankDirLeftToRight)
		g.AddNode(NewNode("a"))
		g.AddEdge(NewEdge("a", "b"))
		return g
	}

	if !build().Equal(build()) {
		t.Error("identical graphs should be equal")
	}

	directed := NewGraph(Directed)
	undirected := NewGraph(Undirected)
	if directed.Equal(undirected) {
		t.Error("graph kind should affect equality")
	}

	strict := NewGraph(Directed)
	strict.SetStrict(true)
	if strict.Equal(NewGraph(Directed)) {
		t.Error("strictness should affect equality")
	}
}
