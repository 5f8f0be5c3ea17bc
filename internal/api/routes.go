package api

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRoutes configures all routes for the newsletter viewer.
func SetupRoutes(nh *NewsletterHandlers, hc *HealthChecker) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)

	// Recover panics into the generic 500 body. Internal detail is logged
	// only; nothing leaks to the client.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Printf("ERROR: panic serving %s %s: %v", req.Method, req.URL.Path, rec)
					respondWithError(w, http.StatusInternalServerError, "Internal server error")
				}
			}()
			next.ServeHTTP(w, req)
		})
	})

	// CORS - newsletters are viewed from email clients and arbitrary origins
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", nh.Root)
	r.Get("/health", hc.HandleHealth)
	r.Get("/health/ready", hc.HandleReadiness)
	r.Get("/newsletters/{id}", nh.ViewNewsletter)

	// Generic JSON fallback for unknown routes
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondWithError(w, http.StatusNotFound, "The requested resource was not found")
	})

	return r
}
