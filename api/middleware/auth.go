package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/resumehub/resumehub-backend/api/responses"
	pkgAuth "github.com/resumehub/resumehub-backend/pkg/auth"
	"github.com/resumehub/resumehub-backend/pkg/config"
	"github.com/resumehub/resumehub-backend/pkg/db/models"
	pkgerrors "github.com/resumehub/resumehub-backend/pkg/errors"
	"github.com/resumehub/resumehub-backend/pkg/logger"
	"gorm.io/gorm"
)

// SessionVerifier checks a token against the durable session table. A JWT is
// only honored while its matching session row is live.
type SessionVerifier interface {
	FindLive(ctx context.Context, token string) (*models.Session, error)
}

// Auth validates a bearer token (or auth cookie) and seeds the request
// context with the authenticated principal.
func Auth(cfg config.JWTConfig, sessions SessionVerifier, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromRequest(r)
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "access token is required"))
				return
			}

			ctx, err := authenticate(r.Context(), cfg, sessions, logg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth seeds the principal when a valid token is presented but never
// rejects the request. Anonymous callers proceed with an empty context.
func OptionalAuth(cfg config.JWTConfig, sessions SessionVerifier, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromRequest(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx, err := authenticate(r.Context(), cfg, sessions, logg, token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func authenticate(ctx context.Context, cfg config.JWTConfig, sessions SessionVerifier, logg *logger.Logger, token string) (context.Context, error) {
	claims, err := pkgAuth.ParseAccessToken(cfg, token)
	if err != nil {
		if errors.Is(err, pkgAuth.ErrTokenExpired) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "token has expired")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token")
	}

	if sessions == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session verifier unavailable")
	}

	session, err := sessions.FindLive(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid or expired token")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "validate session")
	}

	ctx = context.WithValue(ctx, ctxUserID, claims.UserID.String())
	ctx = context.WithValue(ctx, ctxEmail, claims.Email)
	ctx = context.WithValue(ctx, ctxRole, string(claims.Role))
	ctx = context.WithValue(ctx, ctxSessionID, session.ID.String())

	if logg != nil {
		ctx = logg.WithFields(ctx, map[string]any{
			"user_id":    claims.UserID.String(),
			"actor_role": string(claims.Role),
			"session_id": session.ID.String(),
		})
	}

	return ctx, nil
}

// TokenFromRequest pulls the access token from the Authorization header or,
// failing that, the auth cookie.
func TokenFromRequest(r *http.Request) string {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if raw != "" {
		if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
			return strings.TrimSpace(raw[7:])
		}
		return raw
	}

	if cookie, err := r.Cookie(pkgAuth.CookieName); err == nil {
		return strings.TrimSpace(cookie.Value)
	}
	return ""
}
