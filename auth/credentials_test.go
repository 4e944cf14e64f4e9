package auth

import (
	"testing"
	"time"
)

func TestHashPassword(t *testing.T) {
	creds := NewCredentialService("secret", time.Hour)

	hash, err := creds.HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "password123" {
		t.Fatal("hash equals the plaintext password")
	}
	if hash == "" {
		t.Fatal("hash is empty")
	}

	other, err := creds.HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if other == hash {
		t.Error("two hashes of the same password are identical; salt missing")
	}
}

func TestVerifyPassword(t *testing.T) {
	creds := NewCredentialService("secret", time.Hour)

	hash, err := creds.HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if !creds.VerifyPassword("password123", hash) {
		t.Error("correct password rejected")
	}
	if creds.VerifyPassword("wrongpassword", hash) {
		t.Error("wrong password accepted")
	}
	if creds.VerifyPassword("password123", "not-a-hash") {
		t.Error("garbage hash accepted")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	creds := NewCredentialService("secret", time.Hour)

	token, err := creds.IssueToken("user-123")
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	userID, err := creds.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}
	if userID != "user-123" {
		t.Errorf("VerifyToken() = %q, want %q", userID, "user-123")
	}
}

func TestVerifyTokenFailures(t *testing.T) {
	creds := NewCredentialService("secret", time.Hour)

	expired := NewCredentialService("secret", -time.Minute)
	expiredToken, err := expired.IssueToken("user-123")
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	foreign := NewCredentialService("other-secret", time.Hour)
	foreignToken, err := foreign.IssueToken("user-123")
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"malformed", "not.a.token"},
		{"empty", ""},
		{"expired", expiredToken},
		{"wrong secret", foreignToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := creds.VerifyToken(tt.token); err == nil {
				t.Error("VerifyToken() accepted an invalid token")
			}
		})
	}
}
