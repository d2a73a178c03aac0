package controllers

import (
	"net/http"

	"github.com/resumehub/resumehub-backend/api/responses"
)

// Root answers the banner endpoint.
func Root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, "ResumeHub API is running", map[string]string{
			"service": "resumehub-backend",
		})
	}
}
