package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Digest returns the hex BLAKE2b-256 sum of b.
func Digest(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// Fingerprint shortens a hex digest to its first 10 bytes (20 hex chars)
// for display and logging.
func Fingerprint(digest string) string {
	if len(digest) <= 20 {
		return digest
	}
	return digest[:20]
}
