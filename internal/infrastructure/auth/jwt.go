package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer implements ports.TokenIssuer with HS256. The signing
// secret is process-wide material loaded at startup; construction
// fails without it.
type TokenIssuer struct {
	secret []byte
	expiry time.Duration
}

type sessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

func NewTokenIssuer(secret []byte, expiry time.Duration) (*TokenIssuer, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwt: signing secret is required")
	}
	if expiry <= 0 {
		return nil, errors.New("jwt: token expiry must be positive")
	}
	return &TokenIssuer{secret: secret, expiry: expiry}, nil
}

// Expiry returns the validity window tokens are issued with. The
// session cookie lifetime mirrors it.
func (t *TokenIssuer) Expiry() time.Duration { return t.expiry }

func (t *TokenIssuer) Issue(userID string) (string, int64, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.expiry)),
		},
		UserID: userID,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", 0, err
	}
	return token, int64(t.expiry.Seconds()), nil
}

// Verify checks signature and expiry. On any failure the user id is
// never returned partially decoded.
func (t *TokenIssuer) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token claims")
	}
	if claims.UserID == "" {
		return "", errors.New("token missing user id")
	}
	return claims.UserID, nil
}
