package dot

import (
	"slices"
	"testing"
)

func TestStyleColors(t *testing.T) {
	red := Named("red")
	blue := Named("blue")
	green := RGB(0, 255, 0)

	tests := []struct {
		name  string
		style Style
		want  []Color
	}{
		{name: "Solid", style: Solid(), want: nil},
		{name: "Dashed", style: Dashed(), want: nil},
		{name: "Rounded", style: Rounded(), want: nil},
		{name: "Filled", style: Filled(red), want: []Color{red}},
		{name: "Striped", style: Striped(red, blue), want: []Color{red, blue}},
		{name: "Wedged", style: Wedged(red, blue, green), want: []Color{red, blue, green}},
		{
			name:  "CompoundPlainOnly",
			style: Compound(Rounded(), Bold()),
			want:  nil,
		},
		{
			name:  "CompoundWithFill",
			style: Compound(Rounded(), Filled(red)),
			want:  []Color{red},
		},
		{
			name:  "CompoundFlattensInOrder",
			style: Compound(Filled(red), Striped(blue, green)),
			want:  []Color{red, blue, green},
		},
		{
			name:  "NestedCompound",
			style: Compound(Compound(Filled(red)), Dashed(), Filled(blue)),
			want:  []Color{red, blue},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.style.Colors()
			if !slices.Equal(got, tt.want) {
				t.Errorf("Colors() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStyleWire(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		want  string
	}{
		{name: "Solid", style: Solid(), want: "solid"},
		{name: "Invisible", style: Invisible(), want: "invis"},
		{name: "Filled", style: Filled(Named("red")), want: "filled"},
		{name: "Striped", style: Striped(Named("red"), Named("blue")), want: "striped"},
		{name: "Compound", style: Compound(Rounded(), Filled(Named("red"))), want: "rounded,filled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.style.Wire(); got != tt.want {
				t.Errorf("Wire() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStyleEqual(t *testing.T) {
	red := Named("red")
	blue := Named("blue")

	tests := []struct {
		name string
		a, b Style
		want bool
	}{
		{name: "SamePlain", a: Dashed(), b: Dashed(), want: true},
		{name: "DifferentPlain", a: Dashed(), b: Dotted(), want: false},
		{name: "SameFill", a: Filled(red), b: Filled(red), want: true},
		{name: "DifferentFill", a: Filled(red), b: Filled(blue), want: false},
		{name: "StripeOrderMatters", a: Striped(red, blue), b: Striped(blue, red), want: false},
		{
			name: "SameCompound",
			a:    Compound(Rounded(), Filled(red)),
			b:    Compound(Rounded(), Filled(red)),
			want: true,
		},
		{
			name: "CompoundOrderMatters",
			a:    Compound(Rounded(), Filled(red)),
			b:    Compound(Filled(red), Rounded()),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorString(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{name: "Named", color: Named("lightgrey"), want: "lightgrey"},
		{name: "RGB", color: RGB(255, 0, 128), want: "#ff0080"},
		{name: "RGBA", color: RGBA(255, 0, 128, 64), want: "#ff008040"},
		{name: "HSV", color: HSV(0.5, 1, 0.75), want: "0.500,1.000,0.750"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColorListWire(t *testing.T) {
	l := ColorList{Named("red"), RGB(0, 0, 255)}
	if got, want := l.Wire(), "red:#0000ff"; got != want {
		t.Errorf("Wire() = %q, want %q", got, want)
	}
}
