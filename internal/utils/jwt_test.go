package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}

func TestJWTExpiration_Present(t *testing.T) {
	want := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	token := signedToken(t, jwt.MapClaims{"exp": want.Unix()})

	exp, ok, err := JWTExpiration(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected exp claim to be present")
	}
	if !exp.Equal(want) {
		t.Errorf("expected %v, got %v", want, exp)
	}
}

func TestJWTExpiration_NoExpClaim(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "device"})

	_, ok, err := JWTExpiration(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected ok=false without exp claim")
	}
}

func TestJWTExpiration_Opaque(t *testing.T) {
	_, _, err := JWTExpiration("t=opaque-msa-ticket")
	if !errors.Is(err, ErrNotJWT) {
		t.Fatalf("expected ErrNotJWT, got %v", err)
	}
}

func TestJWTExpiration_Malformed(t *testing.T) {
	_, _, err := JWTExpiration("a.b.c")
	if err == nil {
		t.Fatal("expected parse error for malformed token")
	}
	if errors.Is(err, ErrNotJWT) {
		t.Fatal("malformed token must not be reported as opaque")
	}
}
