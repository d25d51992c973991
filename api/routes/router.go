package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/theegirlieshub/girlieshub-backend/api/controllers"
	"github.com/theegirlieshub/girlieshub-backend/api/middleware"
	"github.com/theegirlieshub/girlieshub-backend/internal/auth"
	"github.com/theegirlieshub/girlieshub-backend/internal/dashboard"
	"github.com/theegirlieshub/girlieshub-backend/internal/orders"
	products "github.com/theegirlieshub/girlieshub-backend/internal/products"
	"github.com/theegirlieshub/girlieshub-backend/pkg/config"
	"github.com/theegirlieshub/girlieshub-backend/pkg/db"
	"github.com/theegirlieshub/girlieshub-backend/pkg/logger"
	"github.com/theegirlieshub/girlieshub-backend/pkg/metrics"
	"github.com/theegirlieshub/girlieshub-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	httpMetrics *metrics.HTTPMetrics,
	promRegistry *prometheus.Registry,
	authService auth.Service,
	productService products.Service,
	orderService orders.Service,
	dashboardService dashboard.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewRateLimitPolicy(
		"admin-login",
		cfg.RateLimit.LoginWindow,
		cfg.RateLimit.LoginIPLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg,
			controllers.ReadyCheck{Name: "database", Target: dbP},
			controllers.ReadyCheck{Name: "redis", Target: redisClient},
		))
	})

	if promRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", controllers.ListProducts(productService, logg))
		r.Get("/products/{productId}", controllers.GetProduct(productService, logg))
		r.Get("/shipping-options", controllers.ListShippingOptions())
		r.Post("/orders", controllers.SubmitOrder(orderService, logg))
		r.Get("/orders/{orderId}", controllers.GetOrder(orderService, logg))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.With(middleware.RateLimit(loginPolicy, redisClient, logg)).
			Post("/auth/login", controllers.AdminLogin(authService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminAuth(authService, logg))
			r.Post("/auth/logout", controllers.AdminLogout(authService, logg))
			r.Get("/dashboard", controllers.AdminDashboard(dashboardService, logg))
			r.Get("/orders", controllers.AdminListOrders(orderService, logg))
			r.Get("/products", controllers.AdminListProducts(productService, logg))
			r.Post("/products", controllers.AdminCreateProduct(productService, logg))
			r.Put("/products/{productId}", controllers.AdminUpdateProduct(productService, logg))
			r.Delete("/products/{productId}", controllers.AdminDeleteProduct(productService, logg))
		})
	})

	return r
}
