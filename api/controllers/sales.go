package controllers

import (
	"net/http"

	"github.com/luisherrera/billpoint-backend/api/responses"
	"github.com/luisherrera/billpoint-backend/api/validators"
	salesvc "github.com/luisherrera/billpoint-backend/internal/sales"
	pkgerrors "github.com/luisherrera/billpoint-backend/pkg/errors"
	"github.com/luisherrera/billpoint-backend/pkg/logger"
)

// SalesSummary returns aggregated sales figures for an optional date range.
func SalesSummary(svc salesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "sales service unavailable"))
			return
		}

		start, err := validators.ParseQueryDate(r, "start")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		end, err := validators.ParseQueryDate(r, "end")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		// groupBy is accepted for client compatibility but has no effect
		_ = r.URL.Query().Get("groupBy")

		summary, err := svc.Summary(r.Context(), salesvc.SummaryInput{Start: start, End: end})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, summary)
	}
}
