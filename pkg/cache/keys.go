package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the SHA-256 of data as a 64-character hex string. The CLI
// hashes raw workbook bytes with it to build fit keys.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// composeKey derives a cache key from a kind prefix and the values that
// determine the cached result. The full 256-bit hash is kept so distinct
// inputs cannot collide.
func composeKey(kind string, parts ...any) string {
	encoded, _ := json.Marshal(parts)
	return kind + ":" + Hash(encoded)
}

// FitKeyOpts are the fit options that change the resulting report and
// therefore participate in the cache key.
type FitKeyOpts struct {
	Proportional bool
}

// Keyer generates cache keys for the cacheable artifacts.
type Keyer interface {
	// FitKey generates a key for a fit report, derived from the workbook
	// content hash and the fit options.
	FitKey(workbookHash string, opts FitKeyOpts) string

	// WrapKey generates a key for wrapped text output.
	WrapKey(textHash string, width float64, wrap bool) string
}

// DefaultKeyer generates unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// FitKey generates a key for a fit report.
func (k *DefaultKeyer) FitKey(workbookHash string, opts FitKeyOpts) string {
	return composeKey("fit", workbookHash, opts)
}

// WrapKey generates a key for wrapped text output.
func (k *DefaultKeyer) WrapKey(textHash string, width float64, wrap bool) string {
	return composeKey("wrap", textHash, width, wrap)
}

// ScopedKeyer wraps a Keyer with a prefix so multiple workbooks or users
// can share one cache directory without key collisions.
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

// FitKey generates a prefixed key for a fit report.
func (k *ScopedKeyer) FitKey(workbookHash string, opts FitKeyOpts) string {
	return k.prefix + k.inner.FitKey(workbookHash, opts)
}

// WrapKey generates a prefixed key for wrapped text output.
func (k *ScopedKeyer) WrapKey(textHash string, width float64, wrap bool) string {
	return k.prefix + k.inner.WrapKey(textHash, width, wrap)
}
