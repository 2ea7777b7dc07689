package actor

import (
	"net/http"
	"strings"
	"time"

	"github.com/dataserve/dataserve/pkg/signer"
)

const (
	// CookieName is the signed actor cookie consumed by the resolver.
	CookieName = "ds_actor"

	// TokenPrefix marks a bearer value as a signed API token.
	TokenPrefix = "dstok_"

	// NamespaceActor signs the actor cookie.
	NamespaceActor = "actor"

	// NamespaceToken signs bearer API tokens.
	NamespaceToken = "token"
)

// Resolver converts request credentials into a trusted identity. A bearer
// API token, when supplied, short-circuits cookie inspection entirely: an
// invalid token resolves to anonymous rather than falling back to a cookie.
type Resolver struct {
	signer *signer.Signer
}

func NewResolver(s *signer.Signer) *Resolver {
	return &Resolver{signer: s}
}

// Middleware resolves the request's actor once and stores it in the request
// context for downstream handlers. It never writes to the response.
func (r *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if a := r.Resolve(req); a != nil {
			req = req.WithContext(WithActor(req.Context(), a))
		}
		next.ServeHTTP(w, req)
	})
}

// Resolve inspects the Authorization header and the actor cookie, in that
// order, and returns the resolved actor or nil for anonymous requests.
func (r *Resolver) Resolve(req *http.Request) Actor {
	now := time.Now()

	if auth := req.Header.Get("Authorization"); auth != "" {
		if bearer, ok := strings.CutPrefix(auth, "Bearer "); ok {
			if tok, ok := strings.CutPrefix(bearer, TokenPrefix); ok {
				return r.resolveToken(tok, now)
			}
			// A bearer value without the token prefix is somebody else's
			// credential, not ours; fall through to the cookie.
		}
	}

	if cookie, err := req.Cookie(CookieName); err == nil {
		return r.resolveCookie(cookie.Value, now)
	}

	return nil
}

func (r *Resolver) resolveToken(tok string, now time.Time) Actor {
	var payload map[string]any
	if err := r.signer.Unsign(tok, NamespaceToken, &payload); err != nil {
		return nil
	}
	return DecodeToken(payload, now)
}

func (r *Resolver) resolveCookie(value string, now time.Time) Actor {
	var payload map[string]any
	if err := r.signer.Unsign(value, NamespaceActor, &payload); err != nil {
		return nil
	}
	return DecodeSession(payload, now)
}
