package cache

// ScopedKeyer wraps a Keyer with a prefix so that several deployments (or
// tenants of one API instance) can share a Redis database without seeing
// each other's entries.
//
//	k := NewScopedKeyer(NewDefaultKeyer(), "staging:")
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

// TransformKey generates a prefixed key for server responses.
func (k *ScopedKeyer) TransformKey(serverURL, endpoint string, body []byte) string {
	return k.prefix + k.inner.TransformKey(serverURL, endpoint, body)
}

// ExportKey generates a prefixed key for export documents.
func (k *ScopedKeyer) ExportKey(snapshotHash, rootID string, withSets bool) string {
	return k.prefix + k.inner.ExportKey(snapshotHash, rootID, withSets)
}
