package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWTRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := SignJWT(jwt.MapClaims{"id": "abc"}, secret, time.Minute)
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	claims, err := DecodeJWT(token, secret)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if claims["id"] != "abc" {
		t.Fatalf("expected id claim 'abc', got %v", claims["id"])
	}

	if _, err := DecodeJWT(token, []byte("wrong-secret")); err == nil {
		t.Fatalf("expected error for wrong secret")
	}
}

func TestDecodeJWTExpired(t *testing.T) {
	secret := []byte("test-secret")

	token, err := SignJWT(jwt.MapClaims{"id": "abc"}, secret, -time.Minute)
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	if _, err := DecodeJWT(token, secret); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestPasswordHashing(t *testing.T) {
	pwd := "super-secret"
	hash, err := HashPassword(pwd)
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if err := CheckPasswordHash(hash, pwd); err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if err := CheckPasswordHash(hash, "wrong"); err == nil {
		t.Fatalf("expected failure for wrong password")
	}
}
