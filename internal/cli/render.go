package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrey-krukovskiy/dotviz/pkg/cache"
	xerrors "github.com/andrey-krukovskiy/dotviz/pkg/errors"
	"github.com/andrey-krukovskiy/dotviz/pkg/pipeline"
	"github.com/andrey-krukovskiy/dotviz/pkg/render"
)

// renderCommand creates the render command for generating visual output.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [graph.json|graph.dot]",
		Short: "Render a graph document to SVG or PNG",
		Long: `Render a graph document to SVG or PNG.

The render command accepts either a JSON graph document or already-encoded
DOT text (by file extension) and renders it through the embedded Graphviz
engine. An optional TOML theme fills in default attributes before encoding;
themes only apply to JSON input.

Rendered artifacts are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := render.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, dot (comma-separated)")
	cmd.Flags().StringVar(&opts.ThemePath, "theme", "", "TOML theme file with default attributes")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-render even when a cached artifact exists")

	return cmd
}

// runRender loads the input, runs the pipeline, and writes artifacts.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	ctx = withLogger(ctx, c.Logger)

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Rendering...")
	spinner.Start()

	var result *renderResult
	if strings.EqualFold(filepath.Ext(input), ".dot") {
		result, err = renderDOTFile(ctx, runner, input, opts)
	} else {
		result, err = renderDocument(ctx, runner, input, opts)
	}
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	return writeArtifacts(artifactWriteParams{
		artifacts: result.artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    output,
		cacheHit:  result.cacheHit,
		nodeCount: result.nodeCount,
		edgeCount: result.edgeCount,
	})
}

// renderResult bundles pipeline output for artifact writing.
type renderResult struct {
	artifacts map[string][]byte
	cacheHit  bool
	nodeCount int
	edgeCount int
}

// renderDocument runs the full pipeline on a JSON graph document.
func renderDocument(ctx context.Context, runner *pipeline.Runner, input string, opts pipeline.Options) (*renderResult, error) {
	result, err := runner.ExecuteFile(ctx, input, opts)
	if err != nil {
		return nil, err
	}
	return &renderResult{
		artifacts: result.Artifacts,
		cacheHit:  result.CacheInfo.RenderHit,
		nodeCount: result.Stats.NodeCount,
		edgeCount: result.Stats.EdgeCount,
	}, nil
}

// renderDOTFile renders already-encoded DOT text, skipping the theme and
// encode stages.
func renderDOTFile(ctx context.Context, runner *pipeline.Runner, input string, opts pipeline.Options) (*renderResult, error) {
	logger := loggerFromContext(ctx)

	if opts.ThemePath != "" {
		return nil, fmt.Errorf("themes only apply to JSON input, not %s", input)
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", input, err)
	}
	dotText := string(data)
	logger.Debugf("Loaded DOT text: %d bytes", len(data))

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, dotText, cache.Hash(data), opts)
	if err != nil {
		return nil, err
	}
	return &renderResult{artifacts: artifacts, cacheHit: cacheHit}, nil
}

// =============================================================================
// Artifact Output
// =============================================================================

// artifactWriteParams holds everything needed to write rendered artifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
	cacheHit  bool
	nodeCount int
	edgeCount int
}

// writeArtifacts writes each rendered format to its output file and prints
// a summary. A single format goes to the --output path directly; multiple
// formats share a base path with per-format extensions.
func writeArtifacts(p artifactWriteParams) error {
	base := basePath(p.output, p.input)

	var paths []string
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			continue
		}

		var path string
		if len(p.formats) == 1 && p.output != "" {
			path = p.output
		} else {
			path = base + "." + format
		}

		out, err := openOutput(path)
		if err != nil {
			return err
		}
		if _, err := out.Write(data); err != nil {
			out.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
		if err := out.Close(); err != nil {
			return fmt.Errorf("close %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	printSuccess("Render complete")
	for _, path := range paths {
		printFile(path)
	}
	printStats(p.nodeCount, p.edgeCount, p.cacheHit)

	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .png, .dot), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if render.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// openOutput validates the path and returns a WriteCloser for it.
func openOutput(path string) (io.WriteCloser, error) {
	if err := xerrors.ValidateOutputPath(path); err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, nil
}
