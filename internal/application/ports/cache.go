package ports

import "github.com/prasanth-t0205/techblog/internal/domain"

// IdentityCache is a short-TTL cache of token → resolved identity used
// by the auth gate to bound identity-store load. Entries must expire on
// their own; there is no invalidation path.
type IdentityCache interface {
	Get(token string) (*domain.User, bool)
	Set(token string, user *domain.User)
}
