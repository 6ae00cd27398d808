// internal/adapters/in/http/middleware/user_auth.go
package middleware

import (
	"context"
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
)

// FirebaseAuthClient is an alias so router deps can take
// *middleware.FirebaseAuthClient.
type FirebaseAuthClient = fbauth.Client

// Unexported key type avoids context collisions (SA1029).
type ctxKey struct{ name string }

var (
	ctxKeyUID   = ctxKey{name: "uid"}
	ctxKeyEmail = ctxKey{name: "email"}
	ctxKeyAdmin = ctxKey{name: "admin"}
)

// UserAuthMiddleware verifies the buyer's Firebase ID token and stores
// uid/email in the request context. AdminUID, when configured, marks the
// matching account as admin for downstream handlers.
type UserAuthMiddleware struct {
	FirebaseAuth *FirebaseAuthClient
	AdminUID     string
}

func (m *UserAuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m == nil || m.FirebaseAuth == nil {
			http.Error(w, "user auth middleware not initialized", http.StatusServiceUnavailable)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(w, "missing bearer token")
			return
		}

		idToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if idToken == "" {
			unauthorized(w, "empty bearer token")
			return
		}

		token, err := m.FirebaseAuth.VerifyIDToken(r.Context(), idToken)
		if err != nil {
			unauthorized(w, "invalid token")
			return
		}

		uid := strings.TrimSpace(token.UID)
		if uid == "" {
			unauthorized(w, "invalid uid in token")
			return
		}

		email := ""
		if emailRaw, ok := token.Claims["email"]; ok {
			if e, ok2 := emailRaw.(string); ok2 {
				email = strings.TrimSpace(e)
			}
		}

		ctx := context.WithValue(r.Context(), ctxKeyUID, uid)
		if email != "" {
			ctx = context.WithValue(ctx, ctxKeyEmail, email)
		}
		if admin := strings.TrimSpace(m.AdminUID); admin != "" && uid == admin {
			ctx = context.WithValue(ctx, ctxKeyAdmin, true)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized: ` + detail + `"}`))
}

// CurrentUserUID returns the verified Firebase UID for the request.
func CurrentUserUID(r *http.Request) (string, bool) {
	u, ok := r.Context().Value(ctxKeyUID).(string)
	if !ok || strings.TrimSpace(u) == "" {
		return "", false
	}
	return strings.TrimSpace(u), true
}

// CurrentUserEmail returns the token email when present.
func CurrentUserEmail(r *http.Request) (string, bool) {
	e, ok := r.Context().Value(ctxKeyEmail).(string)
	if !ok || strings.TrimSpace(e) == "" {
		return "", false
	}
	return strings.TrimSpace(e), true
}

// IsAdmin reports whether the request's account is the configured admin.
func IsAdmin(r *http.Request) bool {
	v, _ := r.Context().Value(ctxKeyAdmin).(bool)
	return v
}
