package actor

import "encoding/json"

// Actor is the identity mapping associated with a request. The schema is
// application-defined; an "id" key, when present, is the minimal identity
// attribute and is preferred for display.
type Actor map[string]any

// TokenMarker is attached under the "token" key to identities resolved from
// a bearer API token, distinguishing them from cookie-authenticated actors.
const TokenMarker = "dstok"

// ID returns the actor's id attribute, or "" if absent or not a string.
func (a Actor) ID() string {
	id, _ := a["id"].(string)
	return id
}

// Label returns a human-readable form of the actor: the id when present,
// otherwise a compact JSON rendering of the whole mapping.
func (a Actor) Label() string {
	if id := a.ID(); id != "" {
		return id
	}
	data, err := json.Marshal(a)
	if err != nil {
		return ""
	}
	return string(data)
}

// FromToken reports whether this identity was resolved from an API token.
func (a Actor) FromToken() bool {
	_, ok := a["token"]
	return ok
}
