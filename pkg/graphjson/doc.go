// Package graphjson serializes graph documents to and from a JSON
// node-link format.
//
// The format is human-readable and designed for round-trip fidelity:
// import → transform → export → re-import produces identical results.
// Attribute values travel as wire strings (the same text the DOT encoder
// emits) and are parsed back into typed values on import; parse failures
// are reported as structured errors from [pkg/errors] rather than panics.
//
// # Example document
//
//	{
//	  "kind": "digraph",
//	  "id": "deps",
//	  "attrs": {"rankdir": "LR"},
//	  "nodes": [{"id": "api", "attrs": {"shape": "box"}}],
//	  "edges": [{"from": "api", "to": "db"}]
//	}
package graphjson
