package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/andrey-krukovskiy/dotviz/pkg/cache"
	"github.com/andrey-krukovskiy/dotviz/pkg/dot"
	"github.com/andrey-krukovskiy/dotviz/pkg/graphjson"
	"github.com/andrey-krukovskiy/dotviz/pkg/render"
	"github.com/andrey-krukovskiy/dotviz/pkg/theme"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and library callers can use this to avoid duplicating caching
// logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete theme → encode → render pipeline with caching.
// The input graph is not modified; theming operates on a clone.
func (r *Runner) Execute(ctx context.Context, g *dot.Graph, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Theme
	work := g
	if opts.ThemePath != "" {
		th, err := theme.Load(opts.ThemePath)
		if err != nil {
			return nil, fmt.Errorf("theme: %w", err)
		}
		work = g.Clone()
		if err := th.Apply(work); err != nil {
			return nil, fmt.Errorf("theme: %w", err)
		}
		r.Logger.Debug("applied theme", "path", opts.ThemePath)
	}
	result.Graph = work
	result.Stats.NodeCount, result.Stats.EdgeCount = countElements(work.Nodes(), work.Edges(), work.Subgraphs())

	// Stage 2: Encode
	encodeStart := time.Now()
	dotText := dot.Encode(work)
	result.DOT = dotText
	result.DOTHash = cache.Hash([]byte(dotText))
	result.Stats.EncodeTime = time.Since(encodeStart)

	r.Logger.Info("encoded document",
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"duration", result.Stats.EncodeTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, dotText, result.DOTHash, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ExecuteFile loads a JSON graph document from disk and runs the pipeline.
func (r *Runner) ExecuteFile(ctx context.Context, path string, opts Options) (*Result, error) {
	g, err := graphjson.ReadDocumentFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	return r.Execute(ctx, g, opts)
}

// RenderWithCacheInfo renders artifacts with caching and returns cache hit
// info. DOT output is never cached since it is the cache key's own input.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, dotText, dotHash string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	artifacts := make(map[string][]byte, len(opts.Formats))

	// DOT passthrough plus the raster formats that actually need Graphviz.
	var raster []string
	for _, format := range opts.Formats {
		if format == FormatDOT {
			artifacts[format] = []byte(dotText)
		} else {
			raster = append(raster, format)
		}
	}
	if len(raster) == 0 {
		return artifacts, false, nil
	}

	// Try to get all raster formats from cache (unless refresh requested)
	if !opts.Refresh {
		allCached := true
		for _, format := range raster {
			cacheKey := r.Keyer.ArtifactKey(dotHash, cache.ArtifactKeyOpts{Format: format})
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached {
			return artifacts, true, nil // All raster artifacts from cache
		}
	}

	// Render all raster formats
	rendered, err := render.RenderFormats(ctx, dotText, raster)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		artifacts[format] = data
		cacheKey := r.Keyer.ArtifactKey(dotHash, cache.ArtifactKeyOpts{Format: format})
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
	}

	return artifacts, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Render(ctx context.Context, dotText, dotHash string, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, dotText, dotHash, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
