package signer

import "errors"

var (
	// ErrNoSecret indicates the signer was constructed without a secret key.
	ErrNoSecret = errors.New("signer.no_secret")

	// ErrSecretTooShort indicates the secret key is below the minimum length.
	ErrSecretTooShort = errors.New("signer.secret_too_short")

	// ErrBadSignature covers every verification failure: tampered payload,
	// broken encoding, or an envelope signed under a different namespace.
	ErrBadSignature = errors.New("signer.bad_signature")
)
