package controllers

import (
	"net/http"

	"github.com/luisherrera/billpoint-backend/api/middleware"
	"github.com/luisherrera/billpoint-backend/api/responses"
	"github.com/luisherrera/billpoint-backend/api/validators"
	usersvc "github.com/luisherrera/billpoint-backend/internal/users"
	pkgerrors "github.com/luisherrera/billpoint-backend/pkg/errors"
	"github.com/luisherrera/billpoint-backend/pkg/logger"
)

// UserMe returns the acting user's profile, provisioning it on first use.
func UserMe(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users service unavailable"))
			return
		}

		user, err := svc.GetOrCreate(r.Context(), middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, user)
	}
}

// UserMeUpdate replaces the acting user's editable profile fields.
func UserMeUpdate(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users service unavailable"))
			return
		}

		var payload usersvc.UpdateProfileInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.UpdateProfile(r.Context(), middleware.UserIDFromContext(r.Context()), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, user)
	}
}
