package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"mirror-store/internal/auth"
	"mirror-store/internal/http/handlers"
	"mirror-store/internal/metrics"
)

type Deps struct {
	Tokens   *auth.TokenService
	Users    *handlers.UsersHandler
	Items    *handlers.ItemsHandler
	Orders   *handlers.OrdersHandler
	Reviews  *handlers.ReviewsHandler
	Profiles *handlers.ProfilesHandler
	Intents  *handlers.PaymentIntentHandler
	Confirm  *handlers.ConfirmPaymentHandler
	Log      zerolog.Logger
}

func NewRouter(d *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc:  func(r *http.Request, origin string) bool { return true },
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(metrics.Middleware("mirror-store"))
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/", handlers.Root)
	r.Get("/health", handlers.Health)

	// Public surface.
	r.Get("/item", d.Items.List)
	r.Get("/item/{id}", d.Items.Get)
	r.Post("/order", d.Orders.Create)
	r.Put("/user/{email}", d.Users.Upsert)
	r.Get("/admin/{email}", d.Users.IsAdmin)
	r.Post("/review", d.Reviews.Create)
	r.Get("/review", d.Reviews.List)

	// Bearer token required.
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(d.Tokens))

		r.Post("/item", d.Items.Create)
		r.Delete("/item/{id}", d.Items.Delete)

		r.Get("/order", d.Orders.List)
		r.Get("/order/{id}", d.Orders.Get)
		r.Delete("/order/{id}", d.Orders.Delete)
		r.Patch("/order/{id}", d.Confirm.ServeHTTP)

		r.Post("/create-payment-intent", d.Intents.Create)

		r.Get("/user", d.Users.List)

		r.Post("/profile", d.Profiles.Create)
		r.Patch("/profile/{email}", d.Profiles.Update)
		r.Get("/profile/{email}", d.Profiles.Get)
	})

	// Bearer token plus stored admin role.
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(d.Tokens))
		r.Use(auth.RequireAdmin(d.Users.Store, d.Log))

		r.Put("/user/admin/{email}", d.Users.PromoteAdmin)
	})

	return r
}
