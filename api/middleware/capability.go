package middleware

import (
	"net/http"

	"github.com/resumehub/resumehub-backend/api/responses"
	pkgAuth "github.com/resumehub/resumehub-backend/pkg/auth"
	pkgerrors "github.com/resumehub/resumehub-backend/pkg/errors"
	"github.com/resumehub/resumehub-backend/pkg/logger"
)

// RequireCapability rejects requests whose authenticated role does not grant
// the named capability.
func RequireCapability(capability pkgAuth.Capability, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := pkgAuth.Role(RoleFromContext(r.Context()))
			if !pkgAuth.Allowed(role, capability) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "insufficient permissions"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
