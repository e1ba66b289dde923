package httpx

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/julien-sketch/progressive-pulse/pkg/cryptox"
	"github.com/julien-sketch/progressive-pulse/pkg/jwtx"
	"github.com/julien-sketch/progressive-pulse/pkg/slogx"
)

// BearerAuth verifies the Authorization bearer token and injects the
// professional's identity into the request context.
func BearerAuth(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				writeBearerError(w, "token verification failed")
				log.Warn("jwt verify failed", "err", err)
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUserEmail, claims.Email)
			ctx = context.WithValue(ctx, CtxKeyClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BasicAdminAuth guards the administrative surface with HTTP Basic auth
// against a single shared credential. The password is compared against an
// Argon2id hash, never plaintext. If the credential is not configured the
// surface is closed rather than left open.
func BasicAdminAuth(username, passwordHash string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			if username == "" || passwordHash == "" {
				WriteError(w, http.StatusUnauthorized, "admin_not_configured",
					"Administrative access is not configured")
				return
			}

			user, pass, ok := r.BasicAuth()
			if !ok {
				w.Header().Set("WWW-Authenticate", `Basic realm="Admin"`)
				WriteError(w, http.StatusUnauthorized, "auth_required",
					"Basic authentication required")
				return
			}

			userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
			if err := cryptox.VerifyPassword(pass, passwordHash); err != nil || !userMatch {
				log.Warn("admin auth failed", "user", user)
				WriteError(w, http.StatusUnauthorized, "unauthorized", "Invalid credentials")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	w.WriteHeader(http.StatusUnauthorized)
}
