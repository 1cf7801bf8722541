package cache

// DocumentKeyOpts holds every option that changes the justified output.
// Two requests with the same input hash and equal options share a cache entry.
type DocumentKeyOpts struct {
	Width      int    `json:"width"`
	Whitespace string `json:"whitespace"`
	Normalize  bool   `json:"normalize"`
}

// Keyer builds cache keys for justified documents.
type Keyer interface {
	DocumentKey(inputHash string, opts DocumentKeyOpts) string
}

// DefaultKeyer produces "doc:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// DocumentKey hashes the input hash together with the options.
func (DefaultKeyer) DocumentKey(inputHash string, opts DocumentKeyOpts) string {
	return hashKey("doc", inputHash, opts)
}

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
//
// Example usage:
//
//	// Per-client keys on a shared redis
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "client:abc123:")
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

// DocumentKey generates a prefixed document key.
func (k *ScopedKeyer) DocumentKey(inputHash string, opts DocumentKeyOpts) string {
	return k.prefix + k.inner.DocumentKey(inputHash, opts)
}
