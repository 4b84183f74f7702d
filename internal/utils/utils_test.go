package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret123", 4)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash equals the plain password")
	}
	if !VerifyPassword(hash, "secret123") {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword(hash, "wrong") {
		t.Fatal("wrong password accepted")
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	const secret = "s3cret"
	at, err := NewAccessToken(secret, 42, "admin", 15)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if time.Until(at.Exp) <= 0 {
		t.Fatalf("expiry in the past: %v", at.Exp)
	}

	tok, err := jwt.Parse(at.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("parse: %v", err)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if claims["sub"].(float64) != 42 {
		t.Errorf("sub claim: %v", claims["sub"])
	}
	if claims["role"] != "admin" {
		t.Errorf("role claim: %v", claims["role"])
	}

	if _, err := jwt.Parse(at.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("other"), nil
	}); err == nil {
		t.Fatal("token verified with the wrong secret")
	}
}
