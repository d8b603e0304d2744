package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasanth-t0205/techblog/internal/domain"
	infraauth "github.com/prasanth-t0205/techblog/internal/infrastructure/auth"
)

// gateUserStore implements just enough of ports.UserRepository for the
// gate: GetPublicByID. The remaining methods are never reached.
type gateUserStore struct {
	users map[domain.UserID]*domain.User
	err   error
}

func (s *gateUserStore) GetPublicByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.users[id], nil
}

func (s *gateUserStore) Create(context.Context, *domain.User) error { return nil }
func (s *gateUserStore) GetByUsername(context.Context, string) (*domain.User, error) {
	return nil, nil
}
func (s *gateUserStore) GetByEmail(context.Context, string) (*domain.User, error) { return nil, nil }
func (s *gateUserStore) GetByID(context.Context, domain.UserID) (*domain.User, error) {
	return nil, nil
}
func (s *gateUserStore) GetPublicByUsername(context.Context, string) (*domain.User, error) {
	return nil, nil
}
func (s *gateUserStore) Update(context.Context, *domain.User) error          { return nil }
func (s *gateUserStore) Follow(context.Context, domain.UserID, domain.UserID) error {
	return nil
}
func (s *gateUserStore) Unfollow(context.Context, domain.UserID, domain.UserID) error {
	return nil
}
func (s *gateUserStore) ListFollowerIDs(context.Context, domain.UserID) ([]domain.UserID, error) {
	return nil, nil
}

type mapIdentityCache struct {
	entries map[string]*domain.User
}

func (c *mapIdentityCache) Get(token string) (*domain.User, bool) {
	u, ok := c.entries[token]
	return u, ok
}

func (c *mapIdentityCache) Set(token string, user *domain.User) {
	c.entries[token] = user
}

func newGate(t *testing.T, store *gateUserStore) (*RequireAuth, *infraauth.TokenIssuer) {
	t.Helper()
	issuer, err := infraauth.NewTokenIssuer([]byte("test-secret"), time.Hour)
	require.NoError(t, err)
	return NewRequireAuth(issuer, store, nil, zerolog.Nop()), issuer
}

func protectedEcho(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := AuthUserFromContext(r.Context())
		require.NotNil(t, user)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(user.Username))
	})
}

func TestRequireAuth_MissingCookie(t *testing.T) {
	gate, _ := newGate(t, &gateUserStore{})
	rec := httptest.NewRecorder()
	gate.Handler(protectedEcho(t)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Not authorized"}`, rec.Body.String())
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	gate, _ := newGate(t, &gateUserStore{})
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: infraauth.SessionCookieName, Value: "garbage"})
	rec := httptest.NewRecorder()
	gate.Handler(protectedEcho(t)).ServeHTTP(rec, r)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Not authorized : Invalid token"}`, rec.Body.String())
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	store := &gateUserStore{}
	gate, _ := newGate(t, store)
	expiredIssuer, err := infraauth.NewTokenIssuer([]byte("test-secret"), time.Millisecond)
	require.NoError(t, err)
	token, _, err := expiredIssuer.Issue(uuid.NewString())
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: infraauth.SessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	gate.Handler(protectedEcho(t)).ServeHTTP(rec, r)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_UnknownUser(t *testing.T) {
	store := &gateUserStore{users: map[domain.UserID]*domain.User{}}
	gate, issuer := newGate(t, store)
	token, _, err := issuer.Issue(uuid.NewString())
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: infraauth.SessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	gate.Handler(protectedEcho(t)).ServeHTTP(rec, r)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, rec.Body.String())
}

func TestRequireAuth_StorageFaultIsServerError(t *testing.T) {
	store := &gateUserStore{err: errors.New("connection refused")}
	gate, issuer := newGate(t, store)
	token, _, err := issuer.Issue(uuid.NewString())
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: infraauth.SessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	gate.Handler(protectedEcho(t)).ServeHTTP(rec, r)

	// Cannot-verify is not explicitly-denied.
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRequireAuth_Admits(t *testing.T) {
	id := domain.NewUserID(uuid.New())
	store := &gateUserStore{users: map[domain.UserID]*domain.User{
		id: {ID: id, Username: "alice"},
	}}
	gate, issuer := newGate(t, store)
	token, _, err := issuer.Issue(id.String())
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: infraauth.SessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	gate.Handler(protectedEcho(t)).ServeHTTP(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", rec.Body.String())
}

func TestRequireAuth_ServesFromCache(t *testing.T) {
	id := domain.NewUserID(uuid.New())
	// Store is empty: a cache hit must not touch it.
	store := &gateUserStore{err: errors.New("store must not be called")}
	issuer, err := infraauth.NewTokenIssuer([]byte("test-secret"), time.Hour)
	require.NoError(t, err)
	token, _, err := issuer.Issue(id.String())
	require.NoError(t, err)

	cache := &mapIdentityCache{entries: map[string]*domain.User{
		token: {ID: id, Username: "cached"},
	}}
	gate := NewRequireAuth(issuer, store, cache, zerolog.Nop())

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: infraauth.SessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	gate.Handler(protectedEcho(t)).ServeHTTP(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cached", rec.Body.String())
}
