package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashString returns a hex digest suitable for cache keys.
func HashString(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// CacheKey joins the parts into a stable key, normalising case and
// surrounding whitespace so "ca" and " CA" share an entry.
func CacheKey(parts ...string) string {
	normalised := make([]string, len(parts))
	for i, p := range parts {
		normalised[i] = strings.ToUpper(strings.TrimSpace(p))
	}
	return HashString(strings.Join(normalised, "|"))
}
