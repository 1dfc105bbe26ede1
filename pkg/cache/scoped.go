package cache

// ScopedKeyer wraps a Keyer with a prefix so that several deployments can
// share one Redis instance without colliding.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "hexpic:")
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

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(dataHash string, address int64, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(dataHash, address, opts)
}

// MetricsKey generates a prefixed metrics key.
func (k *ScopedKeyer) MetricsKey(opts MetricsKeyOpts) string {
	return k.prefix + k.inner.MetricsKey(opts)
}
