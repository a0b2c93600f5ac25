package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// LayoutKey generates the cache key for a computed layout.
// The key format is: layout:<scheme>:hash(structure)
func LayoutKey(structure, scheme string) string {
	return fmt.Sprintf("layout:%s:%s", scheme, Hash([]byte(structure)))
}
