package controllers

import (
	"net/http"

	"github.com/luisherrera/billpoint-backend/api/responses"
	"github.com/luisherrera/billpoint-backend/pkg/config"
	"github.com/luisherrera/billpoint-backend/pkg/db"
	pkgerrors "github.com/luisherrera/billpoint-backend/pkg/errors"
	"github.com/luisherrera/billpoint-backend/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Billpoint-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, client *db.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Billpoint-Env", cfg.App.Env)

		if client != nil {
			if err := client.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unreachable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
