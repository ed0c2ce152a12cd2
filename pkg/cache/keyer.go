package cache

// Keyer generates cache keys for rendered artifacts.
// Using an interface lets callers swap in namespaced keyers (see
// [ScopedKeyer]) without touching the cache implementations.
type Keyer interface {
	// ArtifactKey generates a key for a rendered artifact, addressed by
	// the hash of the DOT text plus the render options.
	ArtifactKey(dotHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render options that affect artifact bytes.
// Every field participates in the cache key; adding a field here invalidates
// previously cached artifacts for runs that set it.
type ArtifactKeyOpts struct {
	Format string // output format ("svg", "png")
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(dotHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", dotHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
