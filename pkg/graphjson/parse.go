package graphjson

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/andrey-krukovskiy/dotviz/pkg/dot"
	"github.com/andrey-krukovskiy/dotviz/pkg/errors"
)

// colorNameRe matches Graphviz color names ("red", "gray50", "lightgrey").
var colorNameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// ParseColor parses a DOT color wire string into a typed color.
// Accepted forms: a color name, "#rrggbb", "#rrggbbaa", and "h,s,v" with
// each component in [0, 1].
func ParseColor(s string) (dot.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return dot.Color{}, errors.New(errors.ErrCodeInvalidColor, "color cannot be empty")
	}

	if strings.HasPrefix(s, "#") {
		return parseHexColor(s)
	}

	if strings.Contains(s, ",") {
		return parseHSVColor(s)
	}

	if !colorNameRe.MatchString(s) {
		return dot.Color{}, errors.New(errors.ErrCodeInvalidColor, "invalid color name: %q", s)
	}
	return dot.Named(s), nil
}

func parseHexColor(s string) (dot.Color, error) {
	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return dot.Color{}, errors.New(errors.ErrCodeInvalidColor,
			"hex color must be #rrggbb or #rrggbbaa: %q", s)
	}

	var comps [4]uint8
	for i := 0; i < len(hex)/2; i++ {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return dot.Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid hex color: %q", s)
		}
		comps[i] = uint8(v)
	}

	if len(hex) == 8 {
		return dot.RGBA(comps[0], comps[1], comps[2], comps[3]), nil
	}
	return dot.RGB(comps[0], comps[1], comps[2]), nil
}

func parseHSVColor(s string) (dot.Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return dot.Color{}, errors.New(errors.ErrCodeInvalidColor,
			"HSV color must have three components: %q", s)
	}

	var comps [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return dot.Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid HSV color: %q", s)
		}
		if v < 0 || v > 1 {
			return dot.Color{}, errors.New(errors.ErrCodeInvalidColor,
				"HSV component out of range [0, 1]: %q", s)
		}
		comps[i] = v
	}
	return dot.HSV(comps[0], comps[1], comps[2]), nil
}

// ParseColorList parses a ":"-separated DOT color list.
func ParseColorList(s string) ([]dot.Color, error) {
	parts := strings.Split(s, ":")
	colors := make([]dot.Color, len(parts))
	for i, p := range parts {
		c, err := ParseColor(p)
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}
	return colors, nil
}

// ParseStyle reconstructs a typed style from its wire token list and the
// fill colors carried by the companion fillcolor attribute. Color-bearing
// tokens consume from fills in order: each "filled" takes one color,
// "striped" and "wedged" take all remaining colors. Fills left unconsumed
// by the token list are an error, matching the strictness of a fillcolor
// without any style.
func ParseStyle(s string, fills []dot.Color) (dot.Style, error) {
	tokens := strings.Split(s, ",")
	styles := make([]dot.Style, 0, len(tokens))

	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		switch tok {
		case "solid":
			styles = append(styles, dot.Solid())
		case "dashed":
			styles = append(styles, dot.Dashed())
		case "dotted":
			styles = append(styles, dot.Dotted())
		case "bold":
			styles = append(styles, dot.Bold())
		case "invis", "invisible":
			styles = append(styles, dot.Invisible())
		case "rounded":
			styles = append(styles, dot.Rounded())
		case "filled":
			if len(fills) == 0 {
				return dot.Style{}, errors.New(errors.ErrCodeInvalidStyle,
					"filled style requires a fillcolor")
			}
			styles = append(styles, dot.Filled(fills[0]))
			fills = fills[1:]
		case "striped":
			if len(fills) == 0 {
				return dot.Style{}, errors.New(errors.ErrCodeInvalidStyle,
					"striped style requires a fillcolor list")
			}
			styles = append(styles, dot.Striped(fills...))
			fills = nil
		case "wedged":
			if len(fills) == 0 {
				return dot.Style{}, errors.New(errors.ErrCodeInvalidStyle,
					"wedged style requires a fillcolor list")
			}
			styles = append(styles, dot.Wedged(fills...))
			fills = nil
		default:
			return dot.Style{}, errors.New(errors.ErrCodeInvalidStyle, "unknown style token: %q", tok)
		}
	}

	if len(fills) > 0 {
		return dot.Style{}, errors.New(errors.ErrCodeInvalidStyle,
			"style %q does not consume %d remaining fillcolor(s)", s, len(fills))
	}

	if len(styles) == 1 {
		return styles[0], nil
	}
	return dot.Compound(styles...), nil
}

// tokenRe matches bare DOT enum tokens such as shapes and arrow types.
var tokenRe = regexp.MustCompile(`^[a-z][a-z0-9]*$`)

// ParseShape parses a node shape token. The Graphviz shape catalogue is
// open-ended, so any well-formed token is accepted.
func ParseShape(s string) (dot.Shape, error) {
	if !tokenRe.MatchString(s) {
		return "", errors.New(errors.ErrCodeInvalidAttribute, "invalid shape: %q", s)
	}
	return dot.Shape(s), nil
}

// ParseArrow parses an arrowhead token.
func ParseArrow(s string) (dot.Arrow, error) {
	if !tokenRe.MatchString(s) {
		return "", errors.New(errors.ErrCodeInvalidAttribute, "invalid arrow type: %q", s)
	}
	return dot.Arrow(s), nil
}

// ParseDirection parses an edge direction token.
func ParseDirection(s string) (dot.Direction, error) {
	switch s {
	case "forward", "back", "both", "none":
		return dot.Direction(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidAttribute, "invalid edge direction: %q", s)
}

// ParseRankDir parses a graph layout direction.
func ParseRankDir(s string) (dot.RankDir, error) {
	switch s {
	case "TB", "LR", "BT", "RL":
		return dot.RankDir(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidAttribute, "invalid rankdir: %q", s)
}

// ParseRank parses a subgraph rank constraint.
func ParseRank(s string) (dot.Rank, error) {
	switch s {
	case "same", "min", "max", "source", "sink":
		return dot.Rank(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidAttribute, "invalid rank: %q", s)
}

// ParseOrdering parses an edge ordering constraint.
func ParseOrdering(s string) (dot.Ordering, error) {
	switch s {
	case "out", "in":
		return dot.Ordering(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidAttribute, "invalid ordering: %q", s)
}

// ParseSize parses a "w,h" size in inches.
func ParseSize(s string) (dot.Size, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return dot.Size{}, errors.New(errors.ErrCodeInvalidAttribute, "size must be \"w,h\": %q", s)
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return dot.Size{}, errors.Wrap(errors.ErrCodeInvalidAttribute, err, "invalid size: %q", s)
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return dot.Size{}, errors.Wrap(errors.ErrCodeInvalidAttribute, err, "invalid size: %q", s)
	}
	return dot.Size{Width: w, Height: h}, nil
}

func parseFloat(key, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidAttribute, err, "%s must be a number: %q", key, s)
	}
	return v, nil
}

func parseBool(key, s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, errors.New(errors.ErrCodeInvalidAttribute, "%s must be true or false: %q", key, s)
}
