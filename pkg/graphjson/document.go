package graphjson

// Document kinds.
const (
	KindDigraph = "digraph"
	KindGraph   = "graph"
)

// Document is the canonical serialization format for graph documents.
// Used for file storage, the CLI, and cross-tool compatibility.
type Document struct {
	Kind      string            `json:"kind"`
	Strict    bool              `json:"strict,omitempty"`
	ID        string            `json:"id,omitempty"`
	Attrs     map[string]string `json:"attrs,omitempty"`
	Nodes     []Node            `json:"nodes,omitempty"`
	Edges     []Edge            `json:"edges,omitempty"`
	Subgraphs []Subgraph        `json:"subgraphs,omitempty"`
}

// Node is a serialized node: an identifier plus its attribute map.
type Node struct {
	ID    string            `json:"id"`
	Attrs map[string]string `json:"attrs,omitempty"`
}

// Edge is a serialized edge between two node identifiers.
type Edge struct {
	From  string            `json:"from"`
	To    string            `json:"to"`
	Attrs map[string]string `json:"attrs,omitempty"`
}

// Subgraph is a serialized subgraph. An empty ID means anonymous.
type Subgraph struct {
	ID        string            `json:"id,omitempty"`
	Attrs     map[string]string `json:"attrs,omitempty"`
	Nodes     []Node            `json:"nodes,omitempty"`
	Edges     []Edge            `json:"edges,omitempty"`
	Subgraphs []Subgraph        `json:"subgraphs,omitempty"`
}
