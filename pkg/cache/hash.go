package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Key builds a cache key from an artifact kind and the content it was
// derived from. The key format is: kind:hash(content).
func Key(kind string, content []byte) string {
	return fmt.Sprintf("%s:%s", kind, Hash(content))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
