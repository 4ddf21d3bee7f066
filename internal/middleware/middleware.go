package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/HardwareHub/HH-Backend/internal/config"
	"github.com/HardwareHub/HH-Backend/internal/utils"
)

// Authenticator resolves request credentials into a caller identity. Kept as
// an interface so middleware tests can run without a database.
type Authenticator interface {
	ResolveToken(bearer string) (utils.Identity, error)
	ResolveSession(sessionToken string) (utils.Identity, error)
	RoleForUser(userID string) (string, error)
}

const SessionCookieName = "session_token"

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}

func withIdentity(r *http.Request, identity utils.Identity) *http.Request {
	ctx := context.WithValue(r.Context(), utils.ContextUserKey, identity)
	return r.WithContext(ctx)
}

// ClearSessionCookie overwrites the client's session cookie with an expired
// marker.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// RequireToken only accepts the bearer-token scheme.
func RequireToken(a Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				utils.RespondError(w, http.StatusUnauthorized, "No token provided, authorization denied")
				return
			}

			identity, err := a.ResolveToken(token)
			if err != nil {
				utils.RespondError(w, http.StatusUnauthorized, "Token is invalid or expired")
				return
			}

			next.ServeHTTP(w, withIdentity(r, identity))
		})
	}
}

// RequireSession only accepts the session-cookie scheme. A stale cookie is
// cleared on the client before the 401 goes out.
func RequireSession(a Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				utils.RespondError(w, http.StatusUnauthorized, "No session found, please login")
				return
			}

			identity, err := a.ResolveSession(cookie.Value)
			if err != nil {
				ClearSessionCookie(w)
				utils.RespondError(w, http.StatusUnauthorized, "Session expired or invalid, please login again")
				return
			}

			next.ServeHTTP(w, withIdentity(r, identity))
		})
	}
}

// RequireAuth accepts either scheme, trying the bearer token first.
func RequireAuth(a Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := bearerToken(r); ok {
				RequireToken(a)(next).ServeHTTP(w, r)
				return
			}

			if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
				RequireSession(a)(next).ServeHTTP(w, r)
				return
			}

			utils.RespondError(w, http.StatusUnauthorized, "Authentication required")
		})
	}
}

// RequireRole gates a route on the caller's current role. The role is read
// back from the store on every request rather than trusted from the token, so
// a downgrade takes effect immediately for session callers (bearer callers
// keep their old role until the next token issuance).
func RequireRole(a Authenticator, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.GetIdentityFromContext(r.Context())
			if !ok {
				utils.RespondError(w, http.StatusUnauthorized, "Unauthorized: missing identity in context")
				return
			}

			role, err := a.RoleForUser(identity.ID)
			if err != nil {
				utils.RespondError(w, http.StatusNotFound, "User not found")
				return
			}

			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			utils.RespondError(w, http.StatusForbidden, "Access denied: insufficient permissions")
		})
	}
}

func allowedOrigin(origin string) bool {
	if origin == "" {
		return false
	}
	switch origin {
	case config.App.FrontendURL,
		"http://localhost:5173",
		"http://localhost:5174":
		return true
	}
	return false
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		// Echo the origin back only if it's on our allow-list
		if allowedOrigin(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin") // important for caches
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods",
				"GET, POST, PUT, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers",
				"Content-Type, Authorization")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
