package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpiry pulls the exp claim out of the bearer token without verifying
// the signature; only the upstream API can verify it. A token that does not
// parse leaves the session without a known expiry, which is not an error.
func tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
