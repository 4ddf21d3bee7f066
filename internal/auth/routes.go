package auth

import (
	"net/http"

	"github.com/HardwareHub/HH-Backend/internal/middleware"
	"github.com/HardwareHub/HH-Backend/internal/utils"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()
	authInfo := AuthInfo{}

	r.Get("/test", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, utils.Envelope{
			"success": true,
			"message": "Auth routes working!",
		})
	})

	// Public routes
	r.Post("/register", RegisterHandler)
	r.Post("/login", LoginHandler)
	r.Post("/forgot-password", ForgotPasswordHandler)
	r.Post("/reset-password/{token}", ResetPasswordHandler)

	// Protected routes - either credential scheme works
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(authInfo))
		r.Post("/logout", LogoutHandler)
		r.Get("/profile", ProfileHandler)
		r.Post("/change-password", ChangePasswordHandler)
	})

	// Scheme-specific demonstration routes
	r.With(middleware.RequireToken(authInfo)).Get("/jwt-only", TokenOnlyHandler)
	r.With(middleware.RequireSession(authInfo)).Get("/session-only", SessionOnlyHandler)

	return r
}
