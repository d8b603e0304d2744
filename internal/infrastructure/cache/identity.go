package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/allegro/bigcache/v3"

	"github.com/prasanth-t0205/techblog/internal/application/ports"
	"github.com/prasanth-t0205/techblog/internal/domain"
)

// IdentityCache is an in-process token → identity cache with a short
// life window. It has no invalidation path; entries simply age out,
// which also bounds how long a deleted account keeps resolving.
type IdentityCache struct {
	cache *bigcache.BigCache
}

func NewIdentityCache(ttl time.Duration) (*IdentityCache, error) {
	c, err := bigcache.New(context.Background(), bigcache.DefaultConfig(ttl))
	if err != nil {
		return nil, err
	}
	return &IdentityCache{cache: c}, nil
}

func (c *IdentityCache) Get(token string) (*domain.User, bool) {
	buf, err := c.cache.Get(token)
	if err != nil {
		return nil, false
	}
	var user domain.User
	if err := json.Unmarshal(buf, &user); err != nil {
		return nil, false
	}
	return &user, true
}

func (c *IdentityCache) Set(token string, user *domain.User) {
	buf, err := json.Marshal(user)
	if err != nil {
		return
	}
	_ = c.cache.Set(token, buf)
}

var _ ports.IdentityCache = (*IdentityCache)(nil)
