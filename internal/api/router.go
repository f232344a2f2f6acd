package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jey-uki/users-api/internal/api/handlers"
	"github.com/jey-uki/users-api/internal/api/httpx"
	"github.com/jey-uki/users-api/internal/middleware"
	"github.com/jey-uki/users-api/internal/services"
)

func NewRouter(us *services.UserService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"message": "Users API",
			"endpoints": map[string]string{
				"list":   "GET /api/users",
				"get":    "GET /api/users/{id}",
				"create": "POST /api/users",
				"update": "PUT /api/users/{id}",
				"delete": "DELETE /api/users/{id}",
			},
		})
	})

	uh := handlers.NewUserHandler(us)
	r.Route("/api/users", func(r chi.Router) {
		r.Get("/", uh.List)
		r.Post("/", uh.Create)
		r.Get("/{id}", uh.Get)
		r.Put("/{id}", uh.Update)
		r.Delete("/{id}", uh.Delete)
	})

	// any request matching no route entry, wrong method included
	notFound := func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusNotFound, map[string]string{"error": "Route not found"})
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	return r
}
