package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that does not validate:
// bad signature, malformed payload, missing subject, or past expiry.
var ErrInvalidToken = errors.New("invalid token")

// TokenManager issues and validates HS256 bearer tokens carrying a
// username in the subject claim. Tokens are self-contained; validation
// needs no store lookup.
type TokenManager struct {
	Secret     []byte
	DefaultTTL time.Duration
}

func NewTokenManager(secret string, defaultTTL time.Duration) *TokenManager {
	if defaultTTL <= 0 {
		defaultTTL = 30 * time.Minute
	}
	return &TokenManager{Secret: []byte(secret), DefaultTTL: defaultTTL}
}

// Issue signs a token for the given subject expiring at now+ttl.
// A ttl of zero falls back to the manager's default.
func (m *TokenManager) Issue(subject string, ttl time.Duration) (string, time.Time, error) {
	if ttl == 0 {
		ttl = m.DefaultTTL
	}
	exp := time.Now().Add(ttl)
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// Validate parses tokenStr and returns the subject claim. Every failure
// mode maps to ErrInvalidToken; library errors never escape raw.
func (m *TokenManager) Validate(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
