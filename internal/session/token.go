package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieClaims is what the portal signs into its session cookie: the
// session id plus the role so guards can decide without a store read.
type CookieClaims struct {
	SID  string `json:"sid"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func GenerateCookieToken(secret, sessionID, role string, ttl time.Duration) (string, error) {
	c := CookieClaims{
		SID:  sessionID,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return t.SignedString([]byte(secret))
}

func ParseCookieToken(secret, tokenStr string) (*CookieClaims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &CookieClaims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := t.Claims.(*CookieClaims); ok && t.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}
