package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-formation-admin/internal/handlers"
	"github.com/sbilibin2017/gw-formation-admin/internal/middlewares"
)

// routerDeps are the collaborators the HTTP surface is built from.
type routerDeps struct {
	Auth         handlers.Loginer
	Users        handlers.UserManager
	Applications handlers.ApplicationManager
	Contacts     handlers.ContactManager
	Quotes       handlers.QuoteManager
	Testimonials handlers.TestimonialManager
	DB           handlers.Pinger

	Tokener  middlewares.Tokener
	Resolver middlewares.UserResolver

	// Limiter counts public submissions; nil disables rate limiting.
	Limiter     middlewares.Counter
	RateLimit   int64
	RateWindow  time.Duration
	Timeout     time.Duration
	CORSOrigins []string
	SwaggerURL  string
}

func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.CORSMiddleware(d.CORSOrigins))
	if d.Timeout > 0 {
		r.Use(chimiddleware.Timeout(d.Timeout))
	}

	limit := func(next http.Handler) http.Handler { return next }
	if d.Limiter != nil {
		limit = middlewares.RateLimitMiddleware(d.Limiter, d.RateLimit, d.RateWindow)
	}
	authenticate := middlewares.AuthMiddleware(d.Tokener, d.Resolver)

	r.Get("/", handlers.NewRootHandler("Formation Admin"))
	r.Get("/health", handlers.NewHealthHandler(d.DB))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(d.SwaggerURL)))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/auth/token", handlers.NewLoginHandler(d.Auth))
		r.Get("/testimonials", handlers.NewListApprovedTestimonialsHandler(d.Testimonials))
		r.Group(func(r chi.Router) {
			r.Use(limit)
			r.Post("/applications", handlers.NewCreateApplicationHandler(d.Applications))
			r.Post("/contacts", handlers.NewCreateContactHandler(d.Contacts))
			r.Post("/quotes", handlers.NewCreateQuoteHandler(d.Quotes))
			r.Post("/testimonials", handlers.NewCreateTestimonialHandler(d.Testimonials))
		})

		// Logged-in routes
		r.Group(func(r chi.Router) {
			r.Use(authenticate, middlewares.RequireActive)
			r.Get("/users/me", handlers.NewMeHandler())
		})

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(authenticate, middlewares.RequireActive, middlewares.RequireAdmin)

			r.Get("/users", handlers.NewListUsersHandler(d.Users))
			r.Post("/users", handlers.NewCreateUserHandler(d.Users))
			r.Get("/users/{id}", handlers.NewGetUserHandler(d.Users))
			r.Put("/users/{id}", handlers.NewUpdateUserHandler(d.Users))
			r.Delete("/users/{id}", handlers.NewDeleteUserHandler(d.Users))

			r.Get("/applications", handlers.NewListApplicationsHandler(d.Applications))
			r.Get("/applications/{id}", handlers.NewGetApplicationHandler(d.Applications))
			r.Put("/applications/{id}", handlers.NewUpdateApplicationHandler(d.Applications))
			r.Delete("/applications/{id}", handlers.NewDeleteApplicationHandler(d.Applications))

			r.Get("/contacts", handlers.NewListContactsHandler(d.Contacts))
			r.Get("/contacts/{id}", handlers.NewGetContactHandler(d.Contacts))
			r.Put("/contacts/{id}", handlers.NewUpdateContactHandler(d.Contacts))
			r.Delete("/contacts/{id}", handlers.NewDeleteContactHandler(d.Contacts))

			r.Get("/quotes", handlers.NewListQuotesHandler(d.Quotes))
			r.Get("/quotes/{id}", handlers.NewGetQuoteHandler(d.Quotes))
			r.Put("/quotes/{id}", handlers.NewUpdateQuoteHandler(d.Quotes))
			r.Patch("/quotes/{id}", handlers.NewQuoteStatusHandler(d.Quotes))
			r.Patch("/quotes/{id}/status", handlers.NewQuoteStatusHandler(d.Quotes))
			r.Delete("/quotes/{id}", handlers.NewDeleteQuoteHandler(d.Quotes))

			r.Get("/testimonials/admin", handlers.NewListTestimonialsHandler(d.Testimonials))
			r.Get("/testimonials/{id}", handlers.NewGetTestimonialHandler(d.Testimonials))
			r.Patch("/testimonials/{id}", handlers.NewUpdateTestimonialHandler(d.Testimonials))
			r.Delete("/testimonials/{id}", handlers.NewDeleteTestimonialHandler(d.Testimonials))
		})
	})

	return r
}
