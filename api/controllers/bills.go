package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/luisherrera/billpoint-backend/api/middleware"
	"github.com/luisherrera/billpoint-backend/api/responses"
	"github.com/luisherrera/billpoint-backend/api/validators"
	billsvc "github.com/luisherrera/billpoint-backend/internal/bills"
	pkgerrors "github.com/luisherrera/billpoint-backend/pkg/errors"
	"github.com/luisherrera/billpoint-backend/pkg/logger"
)

// BillCreate records a point-of-sale bill with its line items.
func BillCreate(svc billsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "bills service unavailable"))
			return
		}

		var payload billsvc.CreateBillInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		payload.CreatedBy = middleware.UserIDFromContext(r.Context())

		bill, err := svc.CreateBill(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, bill)
	}
}

// BillGet returns a recorded bill with its items.
func BillGet(svc billsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "bills service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "billID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid bill id"))
			return
		}

		bill, err := svc.GetBill(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, bill)
	}
}
