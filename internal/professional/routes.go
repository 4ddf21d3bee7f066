package professional

import (
	"net/http"

	"github.com/HardwareHub/HH-Backend/internal/auth"
	"github.com/HardwareHub/HH-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()
	authInfo := auth.AuthInfo{}

	// Public routes - anyone can browse the directory
	r.Get("/", ListProfessionals)
	r.Get("/skill/{skill}", GetProfessionalsBySkill)
	r.Get("/{id}", GetProfessional)

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(authInfo))
		r.Use(middleware.RequireRole(authInfo, "admin"))

		r.Post("/", CreateProfessional)
		r.Delete("/{id}", DeleteProfessional)
	})

	return r
}
