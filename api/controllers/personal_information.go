package controllers

import (
	"net/http"

	"github.com/resumehub/resumehub-backend/api/responses"
	"github.com/resumehub/resumehub-backend/api/validators"
	"github.com/resumehub/resumehub-backend/internal/resources"
	"github.com/resumehub/resumehub-backend/pkg/logger"
)

// PersonalInformationCreate handles POST /api/personal-information.
func PersonalInformationCreate(svc *resources.PersonalInfoService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body resources.CreatePersonalInfoRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Create(r.Context(), userID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, "personal information created", result)
	}
}

// PersonalInformationGet handles GET /api/personal-information.
func PersonalInformationGet(svc *resources.PersonalInfoService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Get(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, "", result)
	}
}

// PersonalInformationUpdate handles PUT /api/personal-information.
func PersonalInformationUpdate(svc *resources.PersonalInfoService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body resources.UpdatePersonalInfoRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Update(r.Context(), userID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, "personal information updated", result)
	}
}

// PersonalInformationDelete handles DELETE /api/personal-information.
func PersonalInformationDelete(svc *resources.PersonalInfoService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), userID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, "personal information deleted", nil)
	}
}
