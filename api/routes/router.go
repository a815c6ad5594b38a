package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stylelane/stylelane-backend/api/controllers"
	"github.com/stylelane/stylelane-backend/api/middleware"
	"github.com/stylelane/stylelane-backend/internal/auth"
	"github.com/stylelane/stylelane-backend/internal/inventory"
	"github.com/stylelane/stylelane-backend/internal/products"
	"github.com/stylelane/stylelane-backend/internal/restocks"
	"github.com/stylelane/stylelane-backend/internal/sales"
	"github.com/stylelane/stylelane-backend/internal/seed"
	"github.com/stylelane/stylelane-backend/internal/shipments"
	"github.com/stylelane/stylelane-backend/internal/stores"
	"github.com/stylelane/stylelane-backend/internal/users"
	"github.com/stylelane/stylelane-backend/pkg/config"
	"github.com/stylelane/stylelane-backend/pkg/enums"
	"github.com/stylelane/stylelane-backend/pkg/logger"
	"github.com/stylelane/stylelane-backend/pkg/metrics"
	"github.com/stylelane/stylelane-backend/pkg/redis"
)

// Deps carries everything the HTTP surface needs. Optional pieces
// (redis, metrics) may be nil and their routes or middleware degrade
// gracefully.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	Metrics     *metrics.HTTPMetrics
	Gatherer    prometheus.Gatherer
	Redis       *redis.Client
	Checks      map[string]controllers.Pinger
	Seeder      *seed.Seeder
	AuthService auth.Service
	Users       users.Service
	Stores      stores.Service
	Products    products.Service
	Inventory   inventory.Service
	Sales       sales.Service
	Restocks    restocks.Service
	Shipments   shipments.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.Metrics),
		middleware.Recoverer(logg),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.Checks))
	})

	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Get("/initdb", controllers.InitDB(deps.Seeder, logg))

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginUsernameLimit,
	)

	r.Route("/api/v1/auth", func(r chi.Router) {
		login := controllers.AuthLogin(deps.AuthService, logg)
		if deps.Redis != nil {
			r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).Post("/login", login)
		} else {
			r.Post("/login", login)
		}
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.Session, logg))

		adminOnly := middleware.RequireRole(logg, enums.RoleAdmin)
		managers := middleware.RequireRole(logg, enums.RoleAdmin, enums.RoleManager)
		suppliers := middleware.RequireRole(logg, enums.RoleAdmin, enums.RoleSupplier)

		r.Route("/stores", func(r chi.Router) {
			r.With(adminOnly).Post("/", controllers.StoreCreate(deps.Stores, logg))
			r.Get("/", controllers.StoreList(deps.Stores, logg))
			r.Get("/{id}", controllers.StoreGet(deps.Stores, logg))
			r.With(adminOnly).Put("/{id}", controllers.StoreUpdate(deps.Stores, logg))
		})

		r.Route("/users", func(r chi.Router) {
			r.With(adminOnly).Post("/", controllers.UserCreate(deps.Users, logg))
			r.With(adminOnly).Get("/", controllers.UserList(deps.Users, logg))
			r.Get("/{id}", controllers.UserGet(deps.Users, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.With(managers).Post("/", controllers.ProductCreate(deps.Products, logg))
			r.Get("/", controllers.ProductList(deps.Products, logg))
			r.Get("/{id}", controllers.ProductGet(deps.Products, logg))
			r.With(managers).Put("/{id}", controllers.ProductUpdate(deps.Products, logg))
		})

		r.Route("/inventory", func(r chi.Router) {
			r.With(managers).Post("/", controllers.InventoryCreate(deps.Inventory, logg))
			r.Get("/", controllers.InventoryList(deps.Inventory, logg))
			r.Get("/{id}", controllers.InventoryGet(deps.Inventory, logg))
			r.With(managers).Put("/{id}/quantity", controllers.InventorySetQuantity(deps.Inventory, logg))
		})

		r.Route("/sales", func(r chi.Router) {
			r.With(managers).Post("/", controllers.SaleCreate(deps.Sales, logg))
			r.Get("/", controllers.SaleList(deps.Sales, logg))
			r.Get("/{id}", controllers.SaleGet(deps.Sales, logg))
		})

		r.Route("/restocks", func(r chi.Router) {
			r.With(managers).Post("/", controllers.RestockCreate(deps.Restocks, logg))
			r.Get("/", controllers.RestockList(deps.Restocks, logg))
			r.Get("/{id}", controllers.RestockGet(deps.Restocks, logg))
			r.With(suppliers).Post("/{id}/fulfill", controllers.RestockFulfill(deps.Restocks, logg))
		})

		r.Route("/shipments", func(r chi.Router) {
			r.Get("/", controllers.ShipmentList(deps.Shipments, logg))
			r.Get("/{id}", controllers.ShipmentGet(deps.Shipments, logg))
			r.With(suppliers).Put("/{id}/status", controllers.ShipmentUpdateStatus(deps.Shipments, logg))
		})
	})

	return r
}
