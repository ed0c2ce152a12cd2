package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrey-krukovskiy/dotviz/pkg/dot"
	xerrors "github.com/andrey-krukovskiy/dotviz/pkg/errors"
	"github.com/andrey-krukovskiy/dotviz/pkg/graphjson"
	"github.com/andrey-krukovskiy/dotviz/pkg/theme"
)

// encodeCommand creates the encode command for converting JSON documents to DOT.
func (c *CLI) encodeCommand() *cobra.Command {
	var (
		output    string
		themePath string
	)

	cmd := &cobra.Command{
		Use:   "encode [graph.json]",
		Short: "Encode a JSON graph document to DOT text",
		Long: `Encode a JSON graph document to DOT text.

The encode command takes a graph.json file and produces the canonical DOT
rendition of the document. An optional TOML theme fills in default
attributes for elements that don't set them.

Use 'render' to go directly from graph.json to SVG or PNG output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEncode(cmd.Context(), args[0], output, themePath)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.dot, '-' for stdout)")
	cmd.Flags().StringVar(&themePath, "theme", "", "TOML theme file with default attributes")

	return cmd
}

// runEncode loads the document, applies the theme, and writes DOT text.
func (c *CLI) runEncode(ctx context.Context, input, output, themePath string) error {
	prog := newProgress(c.Logger)

	g, err := loadGraph(input)
	if err != nil {
		return err
	}

	if themePath != "" {
		th, err := theme.Load(themePath)
		if err != nil {
			return fmt.Errorf("load theme %s: %w", themePath, err)
		}
		if err := th.Apply(g); err != nil {
			return fmt.Errorf("apply theme: %w", err)
		}
		c.Logger.Debug("applied theme", "path", themePath)
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	dotText := dot.Encode(g)
	nodes, edges := countGraph(g)
	prog.done(fmt.Sprintf("Encoded %d nodes, %d edges", nodes, edges))

	if output == "-" {
		fmt.Print(dotText)
		return nil
	}

	outputPath := output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + ".dot"
	}
	if err := xerrors.ValidateOutputPath(outputPath); err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, []byte(dotText), 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Encode complete")
	printFile(outputPath)
	printNewline()
	printNextStep("Render", "dotviz render "+outputPath)

	return nil
}

// loadGraph reads a JSON graph document into the typed model.
func loadGraph(input string) (*dot.Graph, error) {
	g, err := graphjson.ReadDocumentFile(input)
	if err != nil {
		return nil, fmt.Errorf("load document %s: %w", input, err)
	}
	return g, nil
}

// countGraph tallies nodes and edges across nested subgraphs.
func countGraph(g *dot.Graph) (int, int) {
	var walk func(nodes []*dot.Node, edges []*dot.Edge, subs []*dot.Subgraph) (int, int)
	walk = func(nodes []*dot.Node, edges []*dot.Edge, subs []*dot.Subgraph) (int, int) {
		nc, ec := len(nodes), len(edges)
		for _, s := range subs {
			n, e := walk(s.Nodes(), s.Edges(), s.Subgraphs())
			nc += n
			ec += e
		}
		return nc, ec
	}
	return walk(g.Nodes(), g.Edges(), g.Subgraphs())
}
