// Package pkg provides the core libraries for dotviz document processing.
//
// # Overview
//
// Dotviz models Graphviz DOT documents as typed Go values instead of raw
// attribute strings. The pkg directory is organized into five main areas:
//
//  1. [dot] - The typed document model and DOT encoder
//  2. [graphjson] - JSON document serialization and wire-string parsing
//  3. [theme] - TOML themes with default attributes
//  4. [render] - Graphviz rasterization (SVG, PNG)
//  5. [pipeline] - Orchestration (load → theme → encode → render)
//
// # Architecture
//
// The typical data flow through dotviz:
//
//	graph.json document
//	         ↓
//	    [graphjson] package (parse + validate wire strings)
//	         ↓
//	    [dot] package (typed model + canonical DOT text)
//	         ↓
//	    [render] package (embedded Graphviz engine)
//	         ↓
//	    SVG/PNG output
//
// # Quick Start
//
// Build a document and encode it to DOT text:
//
//	import "github.com/andrey-krukovskiy/dotviz/pkg/dot"
//
//	g := dot.NewNamedGraph(dot.Directed, "deps")
//	api := dot.NewNode("api")
//	api.SetStyle(dot.Filled(dot.Named("lightblue")))
//	g.AddNode(api)
//	g.AddNode(dot.NewNode("db"))
//	g.AddEdge(dot.NewEdge("api", "db"))
//	text := dot.Encode(g)
//
// Run the full pipeline with caching:
//
//	import (
//	    "github.com/andrey-krukovskiy/dotviz/pkg/cache"
//	    "github.com/andrey-krukovskiy/dotviz/pkg/pipeline"
//	)
//
//	c, _ := cache.NewFileCache("/tmp/dotviz")
//	runner := pipeline.NewRunner(c, nil, nil)
//	result, err := runner.ExecuteFile(ctx, "graph.json", pipeline.Options{
//	    Formats: []string{pipeline.FormatSVG},
//	})
package pkg
