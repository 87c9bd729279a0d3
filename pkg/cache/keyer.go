package cache

// Keyer derives cache keys.
type Keyer interface {
	// TransformKey keys a response from the OntoUML server.
	TransformKey(serverURL, endpoint string, body []byte) string

	// ExportKey keys a schema document serialized from a snapshot.
	ExportKey(snapshotHash, rootID string, withSets bool) string
}

// DefaultKeyer is the standard [Keyer].
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// TransformKey hashes the server, endpoint and request body.
func (DefaultKeyer) TransformKey(serverURL, endpoint string, body []byte) string {
	return namespacedKey(transformNamespace, serverURL, endpoint, Hash(body))
}

// ExportKey hashes the snapshot hash and export options.
func (DefaultKeyer) ExportKey(snapshotHash, rootID string, withSets bool) string {
	return namespacedKey(exportNamespace, snapshotHash, rootID, withSets)
}
