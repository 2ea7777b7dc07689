package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dataserve/dataserve/pkg/actor"
	"github.com/dataserve/dataserve/pkg/apitoken"
	"github.com/dataserve/dataserve/pkg/bootstrap"
	"github.com/dataserve/dataserve/pkg/flash"
	"github.com/dataserve/dataserve/pkg/signer"
)

type handlers struct {
	boot   *bootstrap.Bootstrap
	issuer *apitoken.Issuer
	flash  *flash.Store
	signer *signer.Signer
	secure bool
	log    *slog.Logger
}

// authToken redeems the one-time root bootstrap token. Redemption is a
// single atomic transition; once consumed every attempt fails, whatever
// the supplied value.
func (h *handlers) authToken(w http.ResponseWriter, r *http.Request) {
	if h.boot == nil || !h.boot.Redeem(r.URL.Query().Get("token")) {
		h.forbidden(w)
		return
	}

	if err := h.setActorCookie(w, actor.Actor{"id": "root"}); err != nil {
		h.log.ErrorContext(r.Context(), "sign root actor cookie", slog.Any("error", err))
		h.forbidden(w)
		return
	}

	h.log.InfoContext(r.Context(), "root bootstrap token redeemed")
	http.Redirect(w, r, "/", http.StatusFound)
}

// createTokenForm shows the issuance form. Anonymous requests and
// token-authenticated actors are refused: a token must not mint tokens.
func (h *handlers) createTokenForm(w http.ResponseWriter, r *http.Request) {
	a, ok := h.tokenMintingActor(r)
	if !ok {
		h.forbidden(w)
		return
	}
	h.renderCreateToken(w, r, createTokenData{Actor: a})
}

// createToken validates the requested expiry and mints a signed API token,
// displayed exactly once. Nothing is persisted server-side.
func (h *handlers) createToken(w http.ResponseWriter, r *http.Request) {
	a, ok := h.tokenMintingActor(r)
	if !ok {
		h.forbidden(w)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderCreateToken(w, r, createTokenData{Actor: a, Error: invalidDurationMessage})
		return
	}

	req := apitoken.ExpiryRequest{
		Type:     r.PostFormValue("expire_type"),
		Duration: r.PostFormValue("expire_duration"),
	}
	expiresAt, err := req.Expiry(time.Now())
	if err != nil {
		if !errors.Is(err, apitoken.ErrInvalidDuration) {
			h.log.ErrorContext(r.Context(), "validate expiry", slog.Any("error", err))
		}
		h.renderCreateToken(w, r, createTokenData{Actor: a, Error: invalidDurationMessage})
		return
	}

	token, err := h.issuer.Issue(a.ID(), expiresAt)
	if err != nil {
		h.log.ErrorContext(r.Context(), "mint api token", slog.Any("error", err))
		h.forbidden(w)
		return
	}

	h.renderCreateToken(w, r, createTokenData{Actor: a, Token: token})
}

// logoutForm shows the confirmation page for authenticated requests and
// redirects anonymous ones home.
func (h *handlers) logoutForm(w http.ResponseWriter, r *http.Request) {
	a, ok := actor.FromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	h.renderLogout(w, r, logoutData{Label: a.Label()})
}

// logout clears the actor cookie and queues the one-shot confirmation
// message for the next page render.
func (h *handlers) logout(w http.ResponseWriter, r *http.Request) {
	h.deleteActorCookie(w)
	if err := h.flash.Add(w, r, "You are now logged out", flash.LevelInfo); err != nil {
		h.log.ErrorContext(r.Context(), "set logout message", slog.Any("error", err))
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// actorJSON exposes the fully resolved actor, or null, as JSON.
func (h *handlers) actorJSON(w http.ResponseWriter, r *http.Request) {
	var resolved any
	if a, ok := actor.FromContext(r.Context()); ok {
		resolved = a
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(map[string]any{"actor": resolved}); err != nil {
		h.log.ErrorContext(r.Context(), "encode actor.json", slog.Any("error", err))
	}
}

// tokenMintingActor returns the current actor when it is allowed to mint
// API tokens: present, cookie-sourced, and carrying an id to bind the token
// to. Token-authenticated actors are refused to prevent privilege chaining.
func (h *handlers) tokenMintingActor(r *http.Request) (actor.Actor, bool) {
	a, ok := actor.FromContext(r.Context())
	if !ok || a.FromToken() || a.ID() == "" {
		return nil, false
	}
	return a, true
}

func (h *handlers) setActorCookie(w http.ResponseWriter, a actor.Actor) error {
	envelope, err := h.signer.Sign(actor.EncodeSession(a, time.Time{}), actor.NamespaceActor)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     actor.CookieName,
		Value:    envelope,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secure,
	})
	return nil
}

func (h *handlers) deleteActorCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     actor.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secure,
	})
}

// forbidden is the single denial surface: no body detail beyond the status,
// whether the cause was a consumed bootstrap token, a mismatched secret, or
// a disallowed minting attempt.
func (h *handlers) forbidden(w http.ResponseWriter) {
	http.Error(w, "Forbidden", http.StatusForbidden)
}
