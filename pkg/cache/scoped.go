package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// This keeps artifacts from different contexts (e.g. different themes or
// projects sharing one cache directory) from colliding.
//
// Example usage:
//
//	// Theme-specific keys
//	themeKeyer := NewScopedKeyer(NewDefaultKeyer(), "theme:dark:")
//
//	// Global keys
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(dotHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(dotHash, opts)
}
