package auth

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dataserve/dataserve/pkg/actor"
	"github.com/dataserve/dataserve/pkg/apitoken"
	"github.com/dataserve/dataserve/pkg/bootstrap"
	"github.com/dataserve/dataserve/pkg/flash"
	"github.com/dataserve/dataserve/pkg/signer"
)

// RouterOptions wires the auth module's collaborators.
type RouterOptions struct {
	Signer    *signer.Signer
	Bootstrap *bootstrap.Bootstrap
	Flash     *flash.Store

	// Resolver populates the request context with the resolved actor. When
	// the caller already installs the middleware server-wide this may be nil.
	Resolver *actor.Resolver

	// CSRF is the external collaborator guaranteeing verified POSTs. It
	// wraps the state-changing handlers; nil means the caller accepts
	// unprotected POSTs (tests, or a gateway that verifies upstream).
	CSRF func(http.Handler) http.Handler

	// SecureCookies marks the actor cookie Secure.
	SecureCookies bool

	Logger *slog.Logger
}

// Router builds the auth endpoints, meant to be mounted under "/-":
//
//	GET  /-/auth-token    redeem the one-time root bootstrap token
//	GET  /-/create-token  API token issuance form
//	POST /-/create-token  mint an API token
//	GET  /-/logout        logout confirmation
//	POST /-/logout        clear the actor cookie
//	GET  /-/actor.json    resolved actor introspection
func Router(opts RouterOptions) chi.Router {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	h := &handlers{
		boot:   opts.Bootstrap,
		issuer: apitoken.NewIssuer(opts.Signer),
		flash:  opts.Flash,
		signer: opts.Signer,
		secure: opts.SecureCookies,
		log:    log,
	}

	csrf := opts.CSRF
	if csrf == nil {
		csrf = func(next http.Handler) http.Handler { return next }
	}

	r := chi.NewRouter()
	if opts.Resolver != nil {
		r.Use(opts.Resolver.Middleware)
	}

	r.Get("/auth-token", h.authToken)
	r.Get("/create-token", h.createTokenForm)
	r.With(csrf).Post("/create-token", h.createToken)
	r.Get("/logout", h.logoutForm)
	r.With(csrf).Post("/logout", h.logout)
	r.Get("/actor.json", h.actorJSON)

	return r
}
