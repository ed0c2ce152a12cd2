package cli

import (
	"os"
	"path/filepath"
	"testing"

	xerrors "github.com/andrey-krukovskiy/dotviz/pkg/errors"
	"github.com/andrey-krukovskiy/dotviz/pkg/pipeline"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{pipeline.FormatSVG}},
		{"svg", []string{"svg"}},
		{"svg,png", []string{"svg", "png"}},
		{"dot,svg,png", []string{"dot", "svg", "png"}},
	}

	for _, tt := range tests {
		got := parseFormats(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"derive from input", "", "graph.json", "graph"},
		{"strip format extension", "out.svg", "graph.json", "out"},
		{"keep unknown extension", "out.backup", "graph.json", "out.backup"},
		{"bare output", "diagrams/out", "graph.json", "diagrams/out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "graph.json")

	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{
			"dot": []byte("digraph {}"),
			"svg": []byte("<svg/>"),
		},
		formats:   []string{"dot", "svg"},
		input:     input,
		nodeCount: 2,
		edgeCount: 1,
	})
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}

	for _, ext := range []string{".dot", ".svg"} {
		path := filepath.Join(dir, "graph"+ext)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected output %s: %v", path, err)
		}
	}
}

func TestWriteArtifactsRejectsBadPath(t *testing.T) {
	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"svg": []byte("<svg/>")},
		formats:   []string{"svg"},
		input:     "graph.json",
		output:    "out\n.svg",
	})
	if err == nil {
		t.Fatal("control characters in the output path should be rejected")
	}
	if !xerrors.Is(err, xerrors.ErrCodeInvalidPath) {
		t.Errorf("error = %v, want INVALID_PATH", err)
	}
}

func TestWriteArtifactsSingleOutput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "custom.svg")

	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"svg": []byte("<svg/>")},
		formats:   []string{"svg"},
		input:     filepath.Join(dir, "graph.json"),
		output:    out,
	})
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("output = %q, want svg bytes", data)
	}
}
