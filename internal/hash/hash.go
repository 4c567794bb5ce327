// Package hash implements the digest-and-truncate operation: SHA-256 over the
// UTF-8 bytes of an input, rendered as lowercase hex and cut down to its
// trailing characters.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// TailLength is the number of trailing hex characters kept from a digest.
const TailLength = 10

// DigestHexLength is the length of a full SHA-256 digest rendered as hex.
const DigestHexLength = sha256.Size * 2

// Digest returns the SHA-256 digest of s. Go strings already hold UTF-8
// bytes, so s is hashed as-is.
func Digest(s string) [sha256.Size]byte {
	return sha256.Sum256([]byte(s))
}

// HexDigest returns the full lowercase hex rendering of Digest(s).
func HexDigest(s string) string {
	h := Digest(s)
	return hex.EncodeToString(h[:])
}

// Tail returns the last TailLength hex characters of the SHA-256 digest of s.
func Tail(s string) string {
	return TailN(s, TailLength)
}

// TailN returns the last n hex characters of the SHA-256 digest of s.
func TailN(s string, n int) string {
	return Suffix(HexDigest(s), n)
}

// Suffix returns the last n characters of an ASCII string such as a hex
// digest. It returns s unchanged when n >= len(s) and "" when n <= 0.
func Suffix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if n >= len(s) {
		return s
	}
	return s[len(s)-n:]
}
