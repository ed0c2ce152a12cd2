// Package pipeline provides the core document pipeline for dotviz.
//
// This package implements the complete load → theme → encode → render
// pipeline shared by the CLI and by library callers. Centralizing this
// logic keeps caching and stage reporting consistent across entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Theme: merge default attributes from an optional TOML theme
//  2. Encode: produce DOT text from the typed model
//  3. Render: rasterize the DOT text in the requested formats
//
// Rendered artifacts are cached by a SHA-256 hash of the DOT text plus the
// output format, so re-rendering an unchanged document is a cache hit.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{Formats: []string{"svg"}}
//	result, err := runner.Execute(ctx, g, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/andrey-krukovskiy/dotviz/pkg/dot"
	"github.com/andrey-krukovskiy/dotviz/pkg/render"
)

// Format constants for output formats.
const (
	FormatDOT = render.FormatDOT
	FormatSVG = render.FormatSVG
	FormatPNG = render.FormatPNG
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the document pipeline.
type Options struct {
	// ThemePath is an optional TOML theme applied before encoding.
	ThemePath string `json:"theme,omitempty"`

	// Formats are the requested output formats. Defaults to ["svg"].
	Formats []string `json:"formats,omitempty"`

	// Refresh bypasses the artifact cache and re-renders everything.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := render.ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the document after theming.
	Graph *dot.Graph

	// DOT is the encoded DOT text.
	DOT string

	// DOTHash is the content hash of the DOT text, used for cache keys.
	DOTHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	EncodeTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for the render stage.
type CacheInfo struct {
	RenderHit bool // Whether all raster artifacts came from cache
}

// countElements tallies nodes and edges across the whole containment tree.
func countElements(nodes []*dot.Node, edges []*dot.Edge, subs []*dot.Subgraph) (int, int) {
	nc, ec := len(nodes), len(edges)
	for _, s := range subs {
		n, e := countElements(s.Nodes(), s.Edges(), s.Subgraphs())
		nc += n
		ec += e
	}
	return nc, ec
}
