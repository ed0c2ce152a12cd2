package graphjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/andrey-krukovskiy/dotviz/pkg/dot"
	xerrors "github.com/andrey-krukovskiy/dotviz/pkg/errors"
)

// =============================================================================
// Document Serialization API
// =============================================================================

// MarshalDocument converts a graph to JSON bytes.
func MarshalDocument(g *dot.Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeDocumentTo(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteDocumentFile writes a graph to a JSON file.
// The file is created with 0644 permissions.
func WriteDocumentFile(g *dot.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeDocumentTo(g, f)
}

// WriteDocument writes a graph as JSON to an io.Writer.
// Use MarshalDocument for in-memory serialization or WriteDocumentFile for files.
func WriteDocument(g *dot.Graph, w io.Writer) error {
	return writeDocumentTo(g, w)
}

// ReadDocumentFile reads a JSON file and returns the decoded graph.
// Returns a FILE_NOT_FOUND error when the file does not exist and
// validation errors for malformed documents.
func ReadDocumentFile(path string) (*dot.Graph, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, xerrors.Wrap(xerrors.ErrCodeFileNotFound, err, "document %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readDocumentFrom(f)
}

// ReadDocument decodes a JSON document from an io.Reader into a graph.
// Use ReadDocumentFile for files or pass bytes.NewReader for in-memory data.
func ReadDocument(r io.Reader) (*dot.Graph, error) {
	return readDocumentFrom(r)
}

// UnmarshalDocument deserializes JSON bytes to a Document without
// converting to the typed model.
func UnmarshalDocument(data []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, xerrors.Wrap(xerrors.ErrCodeInvalidDocument, err, "decode document")
	}
	return d, nil
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeDocumentTo(g *dot.Graph, w io.Writer) error {
	out := FromGraph(g)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readDocumentFrom(r io.Reader) (*dot.Graph, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, xerrors.Wrap(xerrors.ErrCodeInvalidDocument, err, "decode document")
	}
	return ToGraph(d)
}
