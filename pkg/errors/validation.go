package errors

import (
	"unicode"
)

// ValidateIdentifier validates a graph element identifier for safety and
// correctness before it is accepted from an external document.
//
// The validation rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters
//   - No null bytes
//   - Maximum length of 256 characters
//
// Quoting for DOT output is handled separately by the encoder; this only
// guards against identifiers that cannot round-trip at all.
func ValidateIdentifier(id string) error {
	if id == "" {
		return New(ErrCodeInvalidDocument, "identifier cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidDocument, "identifier too long (max 256 characters)")
	}

	for _, r := range id {
		if r == '\x00' || (unicode.IsControl(r) && r != '\n' && r != '\t') {
			return New(ErrCodeInvalidDocument, "identifier contains invalid control characters")
		}
	}

	return nil
}

// ValidateOutputPath validates a user-supplied output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
