package controllers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/resumehub/resumehub-backend/api/responses"
	"github.com/resumehub/resumehub-backend/api/validators"
	"github.com/resumehub/resumehub-backend/pkg/logger"
)

// crudService is the shape shared by the per-user resume section services.
type crudService[C, U, D any] interface {
	Create(ctx context.Context, userID uuid.UUID, req C) (*D, error)
	List(ctx context.Context, userID uuid.UUID) ([]D, error)
	Update(ctx context.Context, id, userID uuid.UUID, req U) (*D, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

func resourceCreate[C, U, D any](svc crudService[C, U, D], label string, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body C
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Create(r.Context(), userID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, label+" created", result)
	}
}

func resourceList[C, U, D any](svc crudService[C, U, D], logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, "", result)
	}
}

func resourceUpdate[C, U, D any](svc crudService[C, U, D], label string, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := pathID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body U
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Update(r.Context(), id, userID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, label+" updated", result)
	}
}

func resourceDelete[C, U, D any](svc crudService[C, U, D], label string, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := pathID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id, userID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, label+" deleted", nil)
	}
}
