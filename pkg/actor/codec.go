package actor

import "time"

// Payload field names shared by the session and token envelopes.
const (
	payloadActorKey  = "a"
	payloadExpiryKey = "e"
)

// EncodeSession builds the actor-cookie payload: {"a": actor} plus a
// base62-encoded expiry under "e" when expiresAt is non-zero.
func EncodeSession(a Actor, expiresAt time.Time) map[string]any {
	payload := map[string]any{payloadActorKey: map[string]any(a)}
	if !expiresAt.IsZero() {
		payload[payloadExpiryKey] = encodeBase62(expiresAt.Unix())
	}
	return payload
}

// DecodeSession validates a session payload and returns the embedded actor,
// or nil when the payload is malformed or expired. Malformed input is not an
// error: an unreadable cookie is simply an unauthenticated request.
func DecodeSession(payload map[string]any, now time.Time) Actor {
	for key := range payload {
		if key != payloadActorKey && key != payloadExpiryKey {
			return nil
		}
	}

	raw, ok := payload[payloadActorKey].(map[string]any)
	if !ok {
		return nil
	}

	if e, present := payload[payloadExpiryKey]; present {
		encoded, ok := e.(string)
		if !ok {
			return nil
		}
		expiresAt, err := decodeBase62(encoded)
		if err != nil {
			return nil
		}
		if now.Unix() >= expiresAt {
			return nil
		}
	}

	return Actor(raw)
}

// EncodeToken builds the API-token payload: {"a": actorID, "e": epoch}.
// The expiry key is always present; a zero expiresAt serializes as null,
// meaning the token never expires.
func EncodeToken(actorID string, expiresAt time.Time) map[string]any {
	payload := map[string]any{payloadActorKey: actorID, payloadExpiryKey: nil}
	if !expiresAt.IsZero() {
		payload[payloadExpiryKey] = expiresAt.Unix()
	}
	return payload
}

// DecodeToken validates a token payload and returns the synthetic identity
// for the token's actor, tagged with the token marker. Returns nil when the
// payload is malformed or expired.
func DecodeToken(payload map[string]any, now time.Time) Actor {
	id, ok := payload[payloadActorKey].(string)
	if !ok || id == "" {
		return nil
	}

	if e, present := payload[payloadExpiryKey]; present && e != nil {
		expiresAt, ok := e.(float64)
		if !ok {
			return nil
		}
		if float64(now.Unix()) >= expiresAt {
			return nil
		}
	}

	return Actor{"id": id, "token": TokenMarker}
}
