package dot

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// canonWriter builds a canonical byte form of an element subtree for
// content hashing. The encoding is unambiguous (field separators cannot
// occur in wire names) and covers exactly what structural equality covers:
// identifiers, serialized attributes, and ordered children.
type canonWriter struct {
	b strings.Builder
}

func (w *canonWriter) begin(kind, id string, named bool) {
	w.b.WriteString(kind)
	w.b.WriteByte(0x1d)
	if named {
		w.b.WriteString(id)
	}
	w.b.WriteByte(0x1d)
}

func (w *canonWriter) attrs(attrs []Attribute) {
	for _, a := range attrs {
		w.b.WriteString(a.Name)
		w.b.WriteByte(0x1e)
		w.b.WriteString(a.Value.Wire())
		w.b.WriteByte(0x1e)
	}
	w.b.WriteByte(0x1d)
}

func (w *canonWriter) end() {
	w.b.WriteByte(0x1c)
}

type canonical interface {
	canon(*canonWriter)
}

// canonHash hashes an element's canonical form with SHA-256.
func canonHash(c canonical) string {
	var w canonWriter
	c.canon(&w)
	sum := sha256.Sum256([]byte(w.b.String()))
	return hex.EncodeToString(sum[:])
}
