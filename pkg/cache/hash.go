package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Key namespaces. A key is "<namespace>:<digest>", which keeps transform
// responses and export documents apart in a shared Redis database.
const (
	transformNamespace = "transform"
	exportNamespace    = "export"
)

// namespacedKey digests the JSON encoding of parts. Parts are strings and
// booleans, so encoding cannot fail.
func namespacedKey(namespace string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return namespace + ":" + Hash(data)
}

// Hash returns the hex SHA-256 digest of data. The API uses it as the
// snapshot hash of an export request; transform keys use it for the request
// body and the file cache for entry file names.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
