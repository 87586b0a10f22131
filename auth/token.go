package auth

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// ErrInvalidToken covers bad signatures, expired tokens and malformed
// token strings alike.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenIssuer signs and verifies session tokens. The signing key comes
// from process configuration and is injected at construction; nothing
// here reads ambient state.
type TokenIssuer struct {
	key []byte
	ttl time.Duration
}

func NewTokenIssuer(key []byte, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{key: key, ttl: ttl}
}

func (t *TokenIssuer) TTL() time.Duration {
	return t.ttl
}

// Issue produces an HS256 token bound to the subject id, expiring
// after the configured duration.
func (t *TokenIssuer) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.StandardClaims{
		Subject:   subject,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(t.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.key)
}

// Verify checks the signature and expiry and returns the subject id.
// Verification is stateless; no persistence is consulted.
func (t *TokenIssuer) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.StandardClaims{}, func(tk *jwt.Token) (interface{}, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.key, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.StandardClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
