package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sweetshop/sweetshop-api/internal/auth"
	"github.com/sweetshop/sweetshop-api/internal/middleware"
)

// NewRouter assembles the full API route tree.
//
// Listing sweets is public; creating requires authentication; restocking
// additionally requires the admin role.
func NewRouter(authHandler *AuthHandler, sweetHandler *SweetHandler, tokens *auth.TokenService) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "API RUNNING"})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/auth/register", authHandler.HandleRegister)
		r.Post("/api/auth/login", authHandler.HandleLogin)
	})

	r.Get("/api/sweets", sweetHandler.HandleList)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(tokens))
		r.Post("/api/sweets", sweetHandler.HandleCreate)
		r.Post("/api/sweets/create", sweetHandler.HandleCreate)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Post("/api/sweets/{id}/restock", sweetHandler.HandleRestock)
		})
	})

	return r
}
