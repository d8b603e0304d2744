package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/prasanth-t0205/techblog/internal/application/ports"
	"github.com/prasanth-t0205/techblog/internal/domain"
	infraauth "github.com/prasanth-t0205/techblog/internal/infrastructure/auth"
)

// identityLookupTimeout bounds the identity resolution so a slow store
// cannot hold the client connection indefinitely.
const identityLookupTimeout = 5 * time.Second

// RequireAuth is the authorization gate: it extracts the session
// cookie, verifies the token, resolves the bound identity (password
// hash excluded) and attaches it to the request context. Verification
// failures are 401; a storage fault during resolution is a 500, not an
// authentication decision.
type RequireAuth struct {
	issuer ports.TokenIssuer
	users  ports.UserRepository
	cache  ports.IdentityCache
	log    zerolog.Logger
}

// NewRequireAuth creates the gate. cache may be nil to disable the
// per-token identity cache.
func NewRequireAuth(issuer ports.TokenIssuer, users ports.UserRepository, cache ports.IdentityCache, log zerolog.Logger) *RequireAuth {
	return &RequireAuth{issuer: issuer, users: users, cache: cache, log: log}
}

func (m *RequireAuth) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := infraauth.SessionTokenFromRequest(r)
		if !ok {
			writeErr(w, http.StatusUnauthorized, "Not authorized")
			return
		}
		userID, err := m.issuer.Verify(token)
		if err != nil {
			writeErr(w, http.StatusUnauthorized, "Not authorized : Invalid token")
			return
		}
		id, err := domain.ParseUserID(userID)
		if err != nil {
			writeErr(w, http.StatusUnauthorized, "Not authorized : Invalid token")
			return
		}

		user := m.cachedUser(token)
		if user == nil {
			ctx, cancel := context.WithTimeout(r.Context(), identityLookupTimeout)
			user, err = m.users.GetPublicByID(ctx, id)
			cancel()
			if err != nil {
				m.log.Error().Err(err).Str("user_id", userID).Msg("auth gate identity lookup")
				writeErr(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			if user == nil {
				// Account deleted after the token was issued.
				writeErr(w, http.StatusUnauthorized, "User not found")
				return
			}
			if m.cache != nil {
				m.cache.Set(token, user)
			}
		}

		next.ServeHTTP(w, r.WithContext(WithAuthUser(r.Context(), user)))
	})
}

func (m *RequireAuth) cachedUser(token string) *domain.User {
	if m.cache == nil {
		return nil
	}
	u, ok := m.cache.Get(token)
	if !ok {
		return nil
	}
	return u
}

func writeErr(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
