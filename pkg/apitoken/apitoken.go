package apitoken

import (
	"strconv"
	"time"

	"github.com/dataserve/dataserve/pkg/actor"
	"github.com/dataserve/dataserve/pkg/signer"
)

// ExpiryRequest is the user-supplied expiry choice from the issuance form.
// An empty Type means the token never expires and Duration is ignored.
type ExpiryRequest struct {
	Type     string
	Duration string
}

var unitSeconds = map[string]int64{
	"minutes": 60,
	"hours":   60 * 60,
	"days":    60 * 60 * 24,
}

// Expiry converts the request into an absolute expiry time. The zero time
// means no expiry. Unknown units, missing durations, and non-positive or
// non-integer durations all fail with ErrInvalidDuration.
func (r ExpiryRequest) Expiry(now time.Time) (time.Time, error) {
	if r.Type == "" {
		return time.Time{}, nil
	}

	unit, ok := unitSeconds[r.Type]
	if !ok {
		return time.Time{}, ErrInvalidDuration
	}

	n, err := strconv.ParseInt(r.Duration, 10, 64)
	if err != nil || n <= 0 {
		return time.Time{}, ErrInvalidDuration
	}

	return now.Add(time.Duration(n*unit) * time.Second), nil
}

// Issuer mints signed bearer API tokens bound to an actor id. Issued tokens
// are not tracked server-side; expiry is the only revocation mechanism.
type Issuer struct {
	signer *signer.Signer
}

func NewIssuer(s *signer.Signer) *Issuer {
	return &Issuer{signer: s}
}

// Issue signs a token for actorID, prefixed for bearer use. A zero
// expiresAt mints a token that never expires.
func (i *Issuer) Issue(actorID string, expiresAt time.Time) (string, error) {
	envelope, err := i.signer.Sign(actor.EncodeToken(actorID, expiresAt), actor.NamespaceToken)
	if err != nil {
		return "", err
	}
	return actor.TokenPrefix + envelope, nil
}
