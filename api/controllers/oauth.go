package controllers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/resumehub/resumehub-backend/api/responses"
	"github.com/resumehub/resumehub-backend/internal/auth"
	"github.com/resumehub/resumehub-backend/pkg/config"
	pkgerrors "github.com/resumehub/resumehub-backend/pkg/errors"
	"github.com/resumehub/resumehub-backend/pkg/logger"
	"github.com/resumehub/resumehub-backend/pkg/oauth"
	"github.com/resumehub/resumehub-backend/pkg/redis"
)

// AuthGoogleStart issues a one-shot state and redirects to Google's consent
// screen.
func AuthGoogleStart(provider *oauth.GoogleProvider, cache *redis.Client, cfg *config.Config, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if provider == nil || cache == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "google authentication is not configured")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state := uuid.NewString()
		if err := cache.Set(r.Context(), cache.OAuthStateKey(state), "1", cfg.OAuth.StateTTL); err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store oauth state"))
			return
		}

		http.Redirect(w, r, provider.AuthURL(state), http.StatusFound)
	}
}

// AuthGoogleCallback validates the returned state, exchanges the code and
// issues a session. Browser callers are redirected with the token in the
// query string; API callers get the enveloped JSON response.
func AuthGoogleCallback(svc auth.Service, cache *redis.Client, cfg *config.Config, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || cache == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "google authentication is not configured")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state := r.URL.Query().Get("state")
		if state == "" {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "state parameter is required"))
			return
		}

		key := cache.OAuthStateKey(state)
		if _, err := cache.Get(r.Context(), key); err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid or expired oauth state"))
			return
		}
		// One-shot: a replayed state must not pass a second time.
		if err := cache.Del(r.Context(), key); err != nil {
			logg.Warn(r.Context(), "failed to delete oauth state")
		}

		result, err := svc.GoogleLogin(r.Context(), r.URL.Query().Get("code"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		setAuthCookie(w, cfg, result.Token)

		if isBrowserRequest(r) {
			redirect := cfg.OAuth.PostLoginRedirect + "?token=" + url.QueryEscape(result.Token)
			http.Redirect(w, r, redirect, http.StatusFound)
			return
		}
		responses.WriteSuccess(w, "login successful", result)
	}
}

func isBrowserRequest(r *http.Request) bool {
	agent := r.Header.Get("User-Agent")
	for _, marker := range []string{"Mozilla", "Chrome", "Safari", "Firefox"} {
		if strings.Contains(agent, marker) {
			return true
		}
	}
	return false
}
