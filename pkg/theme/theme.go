// Package theme applies TOML-defined default attributes to graph documents.
//
// A theme declares defaults for the graph root, nodes, and edges. Applying
// a theme never overrides an attribute the document already sets, so themes
// compose with per-element styling instead of clobbering it.
//
// # Example theme
//
//	[graph]
//	fontname = "Helvetica"
//	rankdir = "LR"
//	bgcolor = "transparent"
//
//	[node]
//	shape = "box"
//	fillcolor = "#f0f0f0"
//
//	[edge]
//	color = "gray40"
package theme

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/andrey-krukovskiy/dotviz/pkg/dot"
	"github.com/andrey-krukovskiy/dotviz/pkg/errors"
	"github.com/andrey-krukovskiy/dotviz/pkg/graphjson"
)

// Theme holds default attributes per element kind.
// Empty fields are left alone when the theme is applied.
type Theme struct {
	Graph GraphDefaults `toml:"graph"`
	Node  NodeDefaults  `toml:"node"`
	Edge  EdgeDefaults  `toml:"edge"`
}

// GraphDefaults are defaults for the document root.
type GraphDefaults struct {
	FontName string  `toml:"fontname"`
	FontSize float64 `toml:"fontsize"`
	BGColor  string  `toml:"bgcolor"`
	RankDir  string  `toml:"rankdir"`
	RankSep  float64 `toml:"ranksep"`
	NodeSep  float64 `toml:"nodesep"`
}

// NodeDefaults are defaults applied to every node in the document.
type NodeDefaults struct {
	Shape     string  `toml:"shape"`
	Color     string  `toml:"color"`
	FillColor string  `toml:"fillcolor"`
	FontName  string  `toml:"fontname"`
	FontSize  float64 `toml:"fontsize"`
	FontColor string  `toml:"fontcolor"`
}

// EdgeDefaults are defaults applied to every edge in the document.
type EdgeDefaults struct {
	Color     string  `toml:"color"`
	ArrowHead string  `toml:"arrowhead"`
	FontName  string  `toml:"fontname"`
	FontSize  float64 `toml:"fontsize"`
	PenWidth  float64 `toml:"penwidth"`
}

// Load reads and parses a theme file.
// Returns a FILE_NOT_FOUND error when the file does not exist.
func Load(path string) (*Theme, error) {
	var t Theme
	if _, err := toml.DecodeFile(path, &t); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "theme %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidTheme, err, "parse theme %s", path)
	}
	return &t, nil
}

// Parse parses theme TOML from a string.
func Parse(data string) (*Theme, error) {
	var t Theme
	if _, err := toml.Decode(data, &t); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTheme, err, "parse theme")
	}
	return &t, nil
}

// Apply merges the theme's defaults into the document, recursing through
// nested subgraphs. Attributes the document already sets win over the
// theme. Returns structured errors for malformed theme values.
func (t *Theme) Apply(g *dot.Graph) error {
	if err := t.applyGraph(g); err != nil {
		return fmt.Errorf("theme graph defaults: %w", err)
	}
	return t.applyContainer(g.Nodes(), g.Edges(), g.Subgraphs())
}

func (t *Theme) applyContainer(nodes []*dot.Node, edges []*dot.Edge, subs []*dot.Subgraph) error {
	for _, n := range nodes {
		if err := t.applyNode(n); err != nil {
			return fmt.Errorf("theme node defaults: %w", err)
		}
	}
	for _, e := range edges {
		if err := t.applyEdge(e); err != nil {
			return fmt.Errorf("theme edge defaults: %w", err)
		}
	}
	for _, s := range subs {
		if err := t.applyContainer(s.Nodes(), s.Edges(), s.Subgraphs()); err != nil {
			return err
		}
	}
	return nil
}

func (t *Theme) applyGraph(g *dot.Graph) error {
	d := t.Graph
	if _, ok := g.FontName(); !ok && d.FontName != "" {
		g.SetFontName(d.FontName)
	}
	if _, ok := g.FontSize(); !ok && d.FontSize != 0 {
		g.SetFontSize(d.FontSize)
	}
	if _, ok := g.BGColor(); !ok && d.BGColor != "" {
		c, err := graphjson.ParseColor(d.BGColor)
		if err != nil {
			return err
		}
		g.SetBGColor(c)
	}
	if _, ok := g.RankDir(); !ok && d.RankDir != "" {
		rd, err := graphjson.ParseRankDir(d.RankDir)
		if err != nil {
			return err
		}
		g.SetRankDir(rd)
	}
	if _, ok := g.RankSep(); !ok && d.RankSep != 0 {
		g.SetRankSep(d.RankSep)
	}
	if _, ok := g.NodeSep(); !ok && d.NodeSep != 0 {
		g.SetNodeSep(d.NodeSep)
	}
	return nil
}

func (t *Theme) applyNode(n *dot.Node) error {
	d := t.Node
	if _, ok := n.Shape(); !ok && d.Shape != "" {
		sh, err := graphjson.ParseShape(d.Shape)
		if err != nil {
			return err
		}
		n.SetShape(sh)
	}
	if _, ok := n.Color(); !ok && d.Color != "" {
		c, err := graphjson.ParseColor(d.Color)
		if err != nil {
			return err
		}
		n.SetColor(c)
	}
	// The style slot is the source of truth for fills: only nodes without
	// any style get the themed fill color.
	if _, ok := n.Style(); !ok && d.FillColor != "" {
		c, err := graphjson.ParseColor(d.FillColor)
		if err != nil {
			return err
		}
		n.SetFillColor(c)
	}
	if _, ok := n.FontName(); !ok && d.FontName != "" {
		n.SetFontName(d.FontName)
	}
	if _, ok := n.FontSize(); !ok && d.FontSize != 0 {
		n.SetFontSize(d.FontSize)
	}
	if _, ok := n.FontColor(); !ok && d.FontColor != "" {
		c, err := graphjson.ParseColor(d.FontColor)
		if err != nil {
			return err
		}
		n.SetFontColor(c)
	}
	return nil
}

func (t *Theme) applyEdge(e *dot.Edge) error {
	d := t.Edge
	if _, ok := e.Color(); !ok && d.Color != "" {
		c, err := graphjson.ParseColor(d.Color)
		if err != nil {
			return err
		}
		e.SetColor(c)
	}
	if _, ok := e.ArrowHead(); !ok && d.ArrowHead != "" {
		a, err := graphjson.ParseArrow(d.ArrowHead)
		if err != nil {
			return err
		}
		e.SetArrowHead(a)
	}
	if _, ok := e.FontName(); !ok && d.FontName != "" {
		e.SetFontName(d.FontName)
	}
	if _, ok := e.FontSize(); !ok && d.FontSize != 0 {
		e.SetFontSize(d.FontSize)
	}
	if _, ok := e.PenWidth(); !ok && d.PenWidth != 0 {
		e.SetPenWidth(d.PenWidth)
	}
	return nil
}
