package utils

import "context"

type contextKey string

const ContextUserKey contextKey = "user"

// Identity is the resolved caller attached to the request context by the auth
// middleware. Role is deliberately absent: role checks re-read the user row.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

func GetIdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(ContextUserKey).(Identity)
	return identity, ok
}
