package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotJWT is returned by JWTExpiration when the token does not have the
// three dot-separated segments of a compact JWT.
var ErrNotJWT = errors.New("token is not a compact JWT")

// JWTExpiration reads the exp claim of a compact JWT without verifying its
// signature.
//
// Returns:
//
//	time.Time - the expiration time, zero when the token has no exp claim
//	bool      - true when an exp claim is present
//	error     - ErrNotJWT for opaque tokens, or a parse error for malformed ones
//
// Example usage:
//
//	exp, ok, err := utils.JWTExpiration(ticket)
//	if err == nil && ok && exp.Before(time.Now()) {
//	    // ticket expired
//	}
func JWTExpiration(token string) (time.Time, bool, error) {
	token = strings.TrimSpace(token)
	if strings.Count(token, ".") != 2 {
		return time.Time{}, false, ErrNotJWT
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false, err
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, false, err
	}
	if exp == nil {
		return time.Time{}, false, nil
	}

	return exp.Time, true, nil
}
