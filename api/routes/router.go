package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/luisherrera/billpoint-backend/api/controllers"
	"github.com/luisherrera/billpoint-backend/api/middleware"
	billsvc "github.com/luisherrera/billpoint-backend/internal/bills"
	productsvc "github.com/luisherrera/billpoint-backend/internal/products"
	salesvc "github.com/luisherrera/billpoint-backend/internal/sales"
	usersvc "github.com/luisherrera/billpoint-backend/internal/users"
	"github.com/luisherrera/billpoint-backend/pkg/config"
	"github.com/luisherrera/billpoint-backend/pkg/db"
	"github.com/luisherrera/billpoint-backend/pkg/logger"
	"github.com/luisherrera/billpoint-backend/pkg/metrics"
	pkgredis "github.com/luisherrera/billpoint-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbClient *db.Client,
	idempotencyStore pkgredis.IdempotencyStore,
	httpMetrics *metrics.HTTPMetrics,
	billsService billsvc.Service,
	salesService salesvc.Service,
	productsService productsvc.Service,
	usersService usersvc.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(nil),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbClient, logg))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Identity(cfg.App.DefaultUserID, logg))
		r.Use(middleware.Idempotency(idempotencyStore, logg))

		r.Route("/bills", func(r chi.Router) {
			r.Post("/", controllers.BillCreate(billsService, logg))
			r.Get("/{billID}", controllers.BillGet(billsService, logg))
		})

		r.Route("/sales", func(r chi.Router) {
			r.Get("/summary", controllers.SalesSummary(salesService, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Post("/", controllers.ProductCreate(productsService, logg))
			r.Get("/", controllers.ProductList(productsService, logg))
			r.Get("/{productID}", controllers.ProductGet(productsService, logg))
			r.Patch("/{productID}", controllers.ProductUpdate(productsService, logg))
			r.Delete("/{productID}", controllers.ProductDelete(productsService, logg))
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/me", controllers.UserMe(usersService, logg))
			r.Put("/me", controllers.UserMeUpdate(usersService, logg))
		})
	})

	return r
}
