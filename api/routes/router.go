package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mythrilmerch/mythrilmerch-backend/api/controllers"
	"github.com/mythrilmerch/mythrilmerch-backend/api/middleware"
	authsvc "github.com/mythrilmerch/mythrilmerch-backend/internal/auth"
	cartsvc "github.com/mythrilmerch/mythrilmerch-backend/internal/cart"
	ordersvc "github.com/mythrilmerch/mythrilmerch-backend/internal/orders"
	productsvc "github.com/mythrilmerch/mythrilmerch-backend/internal/products"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/config"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/logger"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/metrics"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/ratelimit"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/redis"
)

// NewRouter assembles the full HTTP surface. Application routes are mounted
// twice, at the bare paths the legacy storefront calls and under /api for
// proxied deployments. Health and metrics bypass rate limiting so probes and
// scrapes never burn the caller's quota.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	database controllers.Pinger,
	redisClient *redis.Client,
	limitStore ratelimit.CounterStore,
	mtr *metrics.HTTPMetrics,
	productService productsvc.Service,
	cartService cartsvc.Service,
	orderService ordersvc.Service,
	authService authsvc.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	var cache controllers.Pinger
	if redisClient != nil {
		cache = redisClient
	}
	r.Get("/health", controllers.Health(cfg, database, cache, logg))
	if mtr != nil {
		r.Method(http.MethodGet, "/metrics", mtr.Handler())
	}

	r.Group(func(r chi.Router) {
		r.Use(
			middleware.Metrics(mtr),
			middleware.RateLimit(cfg.RateLimit, limitStore, mtr, logg),
			middleware.Owner(authService, logg),
		)

		mount := func(r chi.Router) {
			r.Get("/products", controllers.ListProducts(productService, logg))
			r.Get("/products/{id}", controllers.GetProduct(productService, logg))

			r.Get("/cart", controllers.GetCart(cartService, logg))
			r.Post("/cart/add", controllers.AddToCart(cartService, mtr, logg))
			r.Put("/cart/update/{id}", controllers.UpdateCartItem(cartService, logg))
			r.Delete("/cart/remove/{id}", controllers.RemoveCartItem(cartService, logg))

			r.Post("/orders", controllers.PlaceOrder(orderService, mtr, logg))
			r.Get("/orders", controllers.ListOrders(orderService, logg))
			r.Get("/orders/{id}", controllers.GetOrder(orderService, logg))

			r.Post("/auth/register", controllers.Register(authService, logg))
			r.Post("/auth/login", controllers.Login(authService, logg))
			r.With(middleware.RequireUser(logg)).Get("/auth/me", controllers.Me(authService, logg))
		}

		mount(r)
		r.Route("/api", mount)
	})

	return r
}
