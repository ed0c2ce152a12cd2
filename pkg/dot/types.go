package dot

import "fmt"

// Size is a width/height pair in inches.
type Size struct {
	Width  float64
	Height float64
}

// String returns the DOT "w,h" form.
func (s Size) String() string { return fmt.Sprintf("%g,%g", s.Width, s.Height) }

// Wire implements [Value].
func (s Size) Wire() string { return s.String() }

// Ordering constrains the left-to-right order of a node's edges.
type Ordering string

// Ordering values.
const (
	OrderingOut Ordering = "out"
	OrderingIn  Ordering = "in"
)

// Rank is the rank constraint applied to the nodes of a subgraph.
type Rank string

// Rank values.
const (
	RankSame   Rank = "same"
	RankMin    Rank = "min"
	RankMax    Rank = "max"
	RankSource Rank = "source"
	RankSink   Rank = "sink"
)

// RankDir is the direction of graph layout.
type RankDir string

// RankDir values.
const (
	RankDirTopToBottom RankDir = "TB"
	RankDirLeftToRight RankDir = "LR"
	RankDirBottomToTop RankDir = "BT"
	RankDirRightToLeft RankDir = "RL"
)

// Shape is a node shape. The constants cover the common polygon shapes;
// any token from the Graphviz shape catalogue is valid.
type Shape string

// Shape values.
const (
	ShapeBox           Shape = "box"
	ShapeCircle        Shape = "circle"
	ShapeEllipse       Shape = "ellipse"
	ShapeOval          Shape = "oval"
	ShapeDiamond       Shape = "diamond"
	ShapeTriangle      Shape = "triangle"
	ShapePlaintext     Shape = "plaintext"
	ShapePoint         Shape = "point"
	ShapeHexagon       Shape = "hexagon"
	ShapeOctagon       Shape = "octagon"
	ShapeDoubleCircle  Shape = "doublecircle"
	ShapeHouse         Shape = "house"
	ShapeRecord        Shape = "record"
	ShapeNote          Shape = "note"
	ShapeTab           Shape = "tab"
	ShapeFolder        Shape = "folder"
	ShapeComponent     Shape = "component"
	ShapeCylinder      Shape = "cylinder"
	ShapeParallelogram Shape = "parallelogram"
	ShapeNone          Shape = "none"
)

// Arrow is an edge arrowhead shape.
type Arrow string

// Arrow values.
const (
	ArrowNormal  Arrow = "normal"
	ArrowNone    Arrow = "none"
	ArrowDot     Arrow = "dot"
	ArrowODot    Arrow = "odot"
	ArrowBox     Arrow = "box"
	ArrowOBox    Arrow = "obox"
	ArrowDiamond Arrow = "diamond"
	ArrowVee     Arrow = "vee"
	ArrowTee     Arrow = "tee"
	ArrowCrow    Arrow = "crow"
	ArrowInv     Arrow = "inv"
	ArrowCurve   Arrow = "curve"
	ArrowEmpty   Arrow = "empty"
)

// Direction controls which ends of an edge carry arrowheads.
type Direction string

// Direction values.
const (
	DirectionForward Direction = "forward"
	DirectionBack    Direction = "back"
	DirectionBoth    Direction = "both"
	DirectionNone    Direction = "none"
)
