package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/HardwareHub/HH-Backend/internal/config"
	"github.com/HardwareHub/HH-Backend/internal/middleware"
	"github.com/HardwareHub/HH-Backend/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Phone    string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.RespondError(w, http.StatusBadRequest, "Please provide name, email and password")
		return
	}

	// Check if email is taken
	if _, err := FindUserByEmail(req.Email); err == nil {
		utils.RespondError(w, http.StatusBadRequest, "Email already registered")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(w, http.StatusInternalServerError, "Server error during registration")
		return
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error hashing password")
		return
	}

	user := User{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Email:          NormalizeEmail(req.Email),
		HashedPassword: hashed,
		Phone:          req.Phone,
		Role:           "user",
	}
	if err := CreateUser(&user); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	token, err := IssueToken(user.ID, user.Email)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error during registration")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, utils.Envelope{
		"success": true,
		"message": "User registered successfully",
		"token":   token,
		"user":    user.Public(),
	})
}

func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.Email == "" || req.Password == "" {
		utils.RespondError(w, http.StatusBadRequest, "Please provide email and password")
		return
	}

	user, err := FindUserByEmail(req.Email)
	if err != nil {
		// Same message as the wrong-password branch so the response does not
		// reveal whether the account exists.
		utils.RespondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if !CheckPassword(req.Password, user.HashedPassword) {
		utils.RespondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := IssueToken(user.ID, user.Email)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error during login")
		return
	}

	sessionToken, err := ReplaceSession(user.ID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error during login")
		return
	}

	http.SetCookie(w, sessionCookie(sessionToken))

	utils.RespondJSON(w, http.StatusOK, utils.Envelope{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    user.Public(),
	})
}

func sessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   config.App.Env == "production",
		SameSite: http.SameSiteStrictMode,
	}
}

// LogoutHandler deletes every session for the caller. Logging out twice is
// not an error.
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := DeleteSessionsForUser(identity.ID); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error during logout")
		return
	}

	middleware.ClearSessionCookie(w)
	utils.RespondJSON(w, http.StatusOK, utils.Envelope{
		"success": true,
		"message": "Logout successful",
	})
}

// ProfileHandler re-fetches the user instead of trusting the request-context
// copy, so role-sensitive fields are always current.
func ProfileHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := FindUserByID(identity.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(w, http.StatusNotFound, "User not found")
		return
	} else if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, utils.Envelope{
		"success": true,
		"user":    user.Public(),
	})
}

func ForgotPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.Email == "" {
		utils.RespondError(w, http.StatusBadRequest, "Please provide email")
		return
	}

	user, err := FindUserByEmail(req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Don't reveal whether the account exists.
		utils.RespondJSON(w, http.StatusOK, utils.Envelope{
			"success": true,
			"message": "If email exists, password reset link has been sent",
		})
		return
	} else if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	raw, digest, expires, err := GenerateResetToken()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	if err := SetResetToken(user.ID, digest, expires); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	// In production the raw token would go out in a reset email instead.
	log.Printf("Password reset requested for user %s", user.ID)

	resp := utils.Envelope{
		"success": true,
		"message": "Password reset email sent",
	}
	if config.App.ResetTokenInResponse {
		resp["resetToken"] = raw
	}
	utils.RespondJSON(w, http.StatusOK, resp)
}

func ResetPasswordHandler(w http.ResponseWriter, r *http.Request) {
	rawToken := chi.URLParam(r, "token")

	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.Password == "" {
		utils.RespondError(w, http.StatusBadRequest, "Please provide new password")
		return
	}
	if len(req.Password) < 6 {
		utils.RespondError(w, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	user, err := FindUserByResetToken(HashResetToken(rawToken))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(w, http.StatusBadRequest, "Invalid or expired reset token")
		return
	} else if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error hashing password")
		return
	}

	if err := ResetUserPassword(user.ID, hashed); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, utils.Envelope{
		"success": true,
		"message": "Password reset successful",
	})
}

func ChangePasswordHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.CurrentPassword == "" || req.NewPassword == "" {
		utils.RespondError(w, http.StatusBadRequest, "Please provide current and new password")
		return
	}

	user, err := FindUserByID(identity.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(w, http.StatusNotFound, "User not found")
		return
	} else if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	if !CheckPassword(req.CurrentPassword, user.HashedPassword) {
		utils.RespondError(w, http.StatusUnauthorized, "Current password is incorrect")
		return
	}

	hashed, err := HashPassword(req.NewPassword)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error hashing password")
		return
	}

	if err := UpdatePassword(user.ID, hashed); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, utils.Envelope{
		"success": true,
		"message": "Password changed successfully",
	})
}

func TokenOnlyHandler(w http.ResponseWriter, r *http.Request) {
	identity, _ := utils.GetIdentityFromContext(r.Context())
	utils.RespondJSON(w, http.StatusOK, utils.Envelope{
		"success": true,
		"message": "This route requires a bearer token",
		"user":    identity,
	})
}

func SessionOnlyHandler(w http.ResponseWriter, r *http.Request) {
	identity, _ := utils.GetIdentityFromContext(r.Context())
	utils.RespondJSON(w, http.StatusOK, utils.Envelope{
		"success": true,
		"message": "This route requires a session cookie",
		"user":    identity,
	})
}
