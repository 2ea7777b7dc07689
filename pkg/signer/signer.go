package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"strings"
)

const minSecretLength = 32

// Signer signs and verifies namespaced payloads with a process-wide secret.
// Each namespace gets its own derived key, so an envelope signed under one
// namespace never verifies under another even with an identical payload.
type Signer struct {
	secret []byte
}

func New(secret string) (*Signer, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	if len(secret) < minSecretLength {
		return nil, ErrSecretTooShort
	}
	return &Signer{secret: []byte(secret)}, nil
}

// Sign serializes payload to JSON and returns a cookie-safe envelope of the
// form base64url(payload).base64url(signature).
func (s *Signer) Sign(payload any, namespace string) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	mac := hmac.New(sha256.New, s.deriveKey(namespace))
	mac.Write(data)
	sig := mac.Sum(nil)

	return base64.RawURLEncoding.EncodeToString(data) + "." +
		base64.RawURLEncoding.EncodeToString(sig), nil
}

// Unsign verifies the envelope's signature under the given namespace and
// decodes the payload into v. Every failure mode - malformed encoding, JSON
// that doesn't parse, signature mismatch, wrong namespace - reports the same
// ErrBadSignature so callers can't distinguish forgery from corruption.
func (s *Signer) Unsign(envelope, namespace string, v any) error {
	payloadEnc, sigEnc, ok := strings.Cut(envelope, ".")
	if !ok {
		return ErrBadSignature
	}

	data, err := base64.RawURLEncoding.DecodeString(payloadEnc)
	if err != nil {
		return ErrBadSignature
	}
	sig, err := base64.RawURLEncoding.DecodeString(sigEnc)
	if err != nil {
		return ErrBadSignature
	}

	mac := hmac.New(sha256.New, s.deriveKey(namespace))
	mac.Write(data)
	expected := mac.Sum(nil)

	if subtle.ConstantTimeCompare(sig, expected) != 1 {
		return ErrBadSignature
	}

	if err := json.Unmarshal(data, v); err != nil {
		return ErrBadSignature
	}
	return nil
}

// deriveKey computes the per-namespace HMAC key from the root secret.
func (s *Signer) deriveKey(namespace string) []byte {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte("signer:" + namespace))
	return mac.Sum(nil)
}
