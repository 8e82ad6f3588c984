package auth

import (
	"errors"
	"testing"
)

func TestJWTManager_GenerateAndValidate(t *testing.T) {
	manager := NewJWTManager("test-secret-key")

	token, err := manager.Generate("user-123")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if token == "" {
		t.Fatal("Generate() returned empty token")
	}

	claims, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("claims.UserID = %v, want user-123", claims.UserID)
	}
	if claims.Subject != "user-123" {
		t.Errorf("claims.Subject = %v, want user-123", claims.Subject)
	}
}

func TestJWTManager_Validate_BadToken(t *testing.T) {
	manager := NewJWTManager("test-secret-key")

	if _, err := manager.Validate("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTManager_Validate_WrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a").Generate("user-123")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := NewJWTManager("secret-b").Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}
