// Package signer provides namespaced HMAC signing for cookies and tokens.
//
// A Signer turns an arbitrary JSON-serializable payload into a single opaque,
// cookie-safe string and verifies such strings on the way back in. The
// namespace string segregates signing contexts: the same secret key signs the
// actor cookie, API tokens and the messages cookie, but a value minted for one
// context can never be replayed as another because each namespace uses its own
// derived HMAC key.
//
// # Format
//
// Envelopes look like base64url(json).base64url(hmac-sha256). The signature
// covers the raw JSON bytes and is compared in constant time.
//
// # Usage
//
//	s, err := signer.New(os.Getenv("DS_SECRET"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cookie, _ := s.Sign(map[string]any{"a": map[string]any{"id": "root"}}, "actor")
//
//	var payload map[string]any
//	if err := s.Unsign(cookie, "actor", &payload); err != nil {
//	    // errors.Is(err, signer.ErrBadSignature)
//	}
//
// All verification failures collapse into ErrBadSignature; callers must not be
// able to tell a forged signature from a truncated cookie.
package signer
