package bootstrap

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"sync"
)

// Bootstrap holds the process-lifetime one-time root token. It starts
// pending with a freshly generated secret and transitions irreversibly to
// consumed on the first successful redemption; the transition is a single
// test-and-set under the lock, so concurrent redemptions yield exactly one
// success.
type Bootstrap struct {
	mu     sync.Mutex
	secret string // empty once consumed
}

// New generates a fresh 32-byte secret. Failure to read randomness is a
// process-startup fault, not a request-time condition.
func New() *Bootstrap {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic("bootstrap: cannot read random source: " + err.Error())
	}
	return &Bootstrap{secret: hex.EncodeToString(buf)}
}

// Token returns the pending secret for the startup banner. The second
// return value is false once the token has been consumed.
func (b *Bootstrap) Token() (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.secret, b.secret != ""
}

// Redeem consumes the token if supplied matches the pending secret.
// Returns true exactly once for the life of the process; every call after
// consumption fails regardless of the supplied value.
func (b *Bootstrap) Redeem(supplied string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.secret == "" {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(supplied), []byte(b.secret)) != 1 {
		return false
	}
	b.secret = ""
	return true
}
