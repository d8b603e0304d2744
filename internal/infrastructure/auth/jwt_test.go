package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenIssuer_RequiresSecret(t *testing.T) {
	_, err := NewTokenIssuer(nil, time.Hour)
	assert.Error(t, err)
	_, err = NewTokenIssuer([]byte("secret"), 0)
	assert.Error(t, err)
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	issuer, err := NewTokenIssuer([]byte("test-secret"), time.Hour)
	require.NoError(t, err)

	token, expiresIn, err := issuer.Issue("user-123")
	require.NoError(t, err)
	assert.Equal(t, int64(3600), expiresIn)

	userID, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestVerify_Expired(t *testing.T) {
	issuer, err := NewTokenIssuer([]byte("test-secret"), time.Millisecond)
	require.NoError(t, err)

	token, _, err := issuer.Issue("user-123")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	_, err = issuer.Verify(token)
	assert.Error(t, err)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer, _ := NewTokenIssuer([]byte("secret-a"), time.Hour)
	other, _ := NewTokenIssuer([]byte("secret-b"), time.Hour)

	token, _, err := issuer.Issue("user-123")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestVerify_RejectsUnexpectedMethod(t *testing.T) {
	issuer, _ := NewTokenIssuer([]byte("test-secret"), time.Hour)

	// alg=none must never be accepted even with a matching payload.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.Error(t, err)
}

func TestVerify_Malformed(t *testing.T) {
	issuer, _ := NewTokenIssuer([]byte("test-secret"), time.Hour)
	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := issuer.Verify(tok)
		assert.Error(t, err, "token %q", tok)
	}
}

func TestSessionCookie_SetAndClear(t *testing.T) {
	rec := httptest.NewRecorder()
	SetSessionCookie(rec, "tok", 15*24*time.Hour, false)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "jwt", c.Name)
	assert.Equal(t, "tok", c.Value)
	assert.Equal(t, 15*24*3600, c.MaxAge)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)

	rec = httptest.NewRecorder()
	ClearSessionCookie(rec, false)
	cookies = rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestSessionTokenFromRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := SessionTokenFromRequest(r)
	assert.False(t, ok)

	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok"})
	tok, ok := SessionTokenFromRequest(r)
	assert.True(t, ok)
	assert.Equal(t, "tok", tok)
}
