package session

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// CookieSigner wraps the opaque session id in an HMAC-signed token so a
// client cannot forge or swap ids.
type CookieSigner struct {
	Secret []byte
	Issuer string
}

type cookieClaims struct {
	SID string `json:"sid"`
	jwt.RegisteredClaims
}

func (s *CookieSigner) Sign(id string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := cookieClaims{
		SID: id,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

func (s *CookieSigner) Parse(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &cookieClaims{}, func(t *jwt.Token) (interface{}, error) { return s.Secret, nil })
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*cookieClaims)
	if !ok || !token.Valid || claims.SID == "" {
		return "", errors.New("invalid session cookie")
	}
	return claims.SID, nil
}
