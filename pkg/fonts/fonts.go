// Package fonts provides the font bundled with hexpic.
//
// The default face is Go Mono from golang.org/x/image, compiled into the
// binary so rendering works without any font installed on the system.
package fonts

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"golang.org/x/image/font/gofont/gomono"
)

// DefaultName is the name used for the bundled font in flags and cache keys.
const DefaultName = "gomono"

// DefaultTTF returns the bundled TrueType font data.
func DefaultTTF() []byte {
	return gomono.TTF
}

// Cache for the digest of the bundled font (computed once on first access).
var (
	defaultDigest     string
	defaultDigestOnce sync.Once
)

// DefaultDigest returns the SHA-256 of the bundled font data as hex.
// The result is cached after first computation.
func DefaultDigest() string {
	defaultDigestOnce.Do(func() {
		sum := sha256.Sum256(gomono.TTF)
		defaultDigest = hex.EncodeToString(sum[:])
	})
	return defaultDigest
}
