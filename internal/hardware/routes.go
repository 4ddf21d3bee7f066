package hardware

import (
	"net/http"

	"github.com/HardwareHub/HH-Backend/internal/auth"
	"github.com/HardwareHub/HH-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()
	authInfo := auth.AuthInfo{}

	// Public routes - anyone can browse the catalog
	r.Get("/", ListHardware)
	r.Get("/{id}", GetHardware)

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(authInfo))
		r.Use(middleware.RequireRole(authInfo, "admin"))

		r.Post("/", CreateHardware)
		r.Put("/{id}", UpdateHardware)
		r.Delete("/{id}", DeleteHardware)
	})

	return r
}
