package graphjson

import (
	"testing"

	"github.com/andrey-krukovskiy/dotviz/pkg/dot"
	"github.com/andrey-krukovskiy/dotviz/pkg/errors"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    dot.Color
		wantErr bool
	}{
		{name: "named", input: "red", want: dot.Named("red")},
		{name: "named with digits", input: "gray50", want: dot.Named("gray50")},
		{name: "hex RGB", input: "#ff0080", want: dot.RGB(255, 0, 128)},
		{name: "hex RGBA", input: "#ff008040", want: dot.RGBA(255, 0, 128, 64)},
		{name: "HSV", input: "0.5,1.0,0.75", want: dot.HSV(0.5, 1, 0.75)},
		{name: "HSV with spaces", input: "0.5, 1.0, 0.75", want: dot.HSV(0.5, 1, 0.75)},
		{name: "trims whitespace", input: " blue ", want: dot.Named("blue")},

		{name: "empty", input: "", wantErr: true},
		{name: "bad hex length", input: "#ff00", wantErr: true},
		{name: "bad hex digits", input: "#zzzzzz", wantErr: true},
		{name: "HSV two components", input: "0.5,1.0", wantErr: true},
		{name: "HSV out of range", input: "1.5,0.5,0.5", wantErr: true},
		{name: "name with space", input: "light grey", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseColor(%q) = %v, want error", tt.input, got)
				}
				if !errors.Is(err, errors.ErrCodeInvalidColor) {
					t.Errorf("error code = %s, want INVALID_COLOR", errors.GetCode(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseColorList(t *testing.T) {
	got, err := ParseColorList("red:#0000ff")
	if err != nil {
		t.Fatalf("ParseColorList: %v", err)
	}
	want := []dot.Color{dot.Named("red"), dot.RGB(0, 0, 255)}
	if len(got) != len(want) {
		t.Fatalf("got %d colors, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("colors[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if _, err := ParseColorList("red::blue"); err == nil {
		t.Error("empty list entry should fail")
	}
}

func TestParseStyle(t *testing.T) {
	red := dot.Named("red")
	blue := dot.Named("blue")

	tests := []struct {
		name    string
		input   string
		fills   []dot.Color
		want    dot.Style
		wantErr bool
	}{
		{name: "plain", input: "dashed", want: dot.Dashed()},
		{name: "invis", input: "invis", want: dot.Invisible()},
		{name: "filled", input: "filled", fills: []dot.Color{red}, want: dot.Filled(red)},
		{name: "striped", input: "striped", fills: []dot.Color{red, blue}, want: dot.Striped(red, blue)},
		{name: "wedged", input: "wedged", fills: []dot.Color{red, blue}, want: dot.Wedged(red, blue)},
		{
			name:  "compound",
			input: "rounded,filled",
			fills: []dot.Color{red},
			want:  dot.Compound(dot.Rounded(), dot.Filled(red)),
		},
		{
			name:  "double filled consumes in order",
			input: "filled,filled",
			fills: []dot.Color{red, blue},
			want:  dot.Compound(dot.Filled(red), dot.Filled(blue)),
		},

		{name: "filled without fill", input: "filled", wantErr: true},
		{name: "striped without fills", input: "striped", wantErr: true},
		{name: "unknown token", input: "wavy", wantErr: true},
		{name: "fill without color-bearing token", input: "rounded", fills: []dot.Color{red}, wantErr: true},
		{name: "filled leaves fills unconsumed", input: "filled", fills: []dot.Color{red, blue}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStyle(tt.input, tt.fills)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseStyle(%q) = %v, want error", tt.input, got)
				}
				if !errors.Is(err, errors.ErrCodeInvalidStyle) {
					t.Errorf("error code = %s, want INVALID_STYLE", errors.GetCode(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStyle(%q): %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseStyle(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTokens(t *testing.T) {
	if sh, err := ParseShape("box"); err != nil || sh != dot.ShapeBox {
		t.Errorf("ParseShape(box) = %v, %v", sh, err)
	}
	if _, err := ParseShape("Box"); err == nil {
		t.Error("uppercase shape should fail")
	}

	if a, err := ParseArrow("vee"); err != nil || a != dot.ArrowVee {
		t.Errorf("ParseArrow(vee) = %v, %v", a, err)
	}

	if d, err := ParseDirection("both"); err != nil || d != dot.DirectionBoth {
		t.Errorf("ParseDirection(both) = %v, %v", d, err)
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("bad direction should fail")
	}

	if rd, err := ParseRankDir("LR"); err != nil || rd != dot.RankDirLeftToRight {
		t.Errorf("ParseRankDir(LR) = %v, %v", rd, err)
	}
	if _, err := ParseRankDir("lr"); err == nil {
		t.Error("lowercase rankdir should fail")
	}

	if r, err := ParseRank("same"); err != nil || r != dot.RankSame {
		t.Errorf("ParseRank(same) = %v, %v", r, err)
	}

	if o, err := ParseOrdering("out"); err != nil || o != dot.OrderingOut {
		t.Errorf("ParseOrdering(out) = %v, %v", o, err)
	}
}

func TestParseSize(t *testing.T) {
	sz, err := ParseSize("8.5,11")
	if err != nil {
		t.Fatalf("ParseSize: %v", err)
	}
	if sz.Width != 8.5 || sz.Height != 11 {
		t.Errorf("ParseSize = %v, want 8.5x11", sz)
	}

	for _, bad := range []string{"8.5", "a,b", "1,2,3"} {
		if _, err := ParseSize(bad); err == nil {
			t.Errorf("ParseSize(%q) should fail", bad)
		}
	}
}
