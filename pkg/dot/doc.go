// Package dot provides a typed in-memory model for Graphviz DOT documents.
//
// The package defines the element tree (graphs, subgraphs, nodes, edges) and
// the attribute model used to serialize elements into DOT attribute lists.
// It is the data layer that feeds the encoder and the rendering pipeline;
// it performs no layout and assumes no particular output syntax beyond the
// attribute wire names.
//
// # Elements
//
//   - [Graph]: document root (digraph or graph, optionally strict)
//   - [Subgraph]: nested container, optionally named (clusters)
//   - [Node], [Edge]: leaf elements
//
// Elements are built by appending children and setting typed attributes:
//
//	g := dot.NewGraph(dot.Directed)
//	n := dot.NewNode("a")
//	n.SetShape(dot.ShapeBox)
//	n.SetFillColor(dot.Named("lightyellow"))
//	g.AddNode(n)
//	g.AddEdge(dot.NewEdge("a", "b"))
//
// Containment is append-only and preserves insertion order. No validation
// (duplicate identifiers, dangling edge endpoints) happens at this layer;
// Graphviz itself is the authority on document semantics.
//
// # Attributes
//
// Every attribute is optional: an unset attribute reads as absent and is
// omitted from serialization entirely. [Subgraph.Attributes] (and the
// equivalent on the other elements) returns the set attributes as ordered
// (wire name, value) pairs, in declared slot order regardless of assignment
// order. Values are type-erased behind the closed [Value] interface so
// heterogeneous attribute types share one serialization contract.
//
// # Style and fill color
//
// The style attribute is the single source of truth for fill colors. Setting
// a style recomputes the fillcolor slot from [Style.Colors]; the fill-color
// accessors are a projection over it:
//
//	n.SetStyle(dot.Filled(dot.Named("red")))
//	c, ok := n.FillColor() // red, true
//
//	n.SetFillColor(dot.Named("blue")) // rewrites style to Filled(blue)
//	n.ClearFillColor()                // clears the style slot entirely
//
// When a style resolves to zero or more than one color, FillColor reads as
// absent. Serialization still emits every resolved color through the
// fillcolor slot (as a color list when there are several).
//
// # Concurrency
//
// The model is a plain mutable data structure with no internal locking.
// Build a tree from one goroutine, then share it read-only or hand off a
// [Subgraph.Clone] snapshot.
package dot
