package services

import (
	"context"
	"errors"
	"testing"

	"github.com/artesania/artesania-api/app/apperrors"
	"github.com/artesania/artesania-api/app/auth"
	"github.com/artesania/artesania-api/app/models"
	"github.com/artesania/artesania-api/app/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(repositories.NewUserRepository(db), auth.NewJWTManager("test-secret"))
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newAuthService(db)

	input := RegisterInput{
		FirstName: "Frida",
		LastName:  "Kahlo",
		Email:     "frida@example.com",
		Password:  "secret123",
	}

	user, err := svc.Register(ctx, input)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if user.Role != models.RoleCustomer {
		t.Errorf("expected role forced to customer, got %s", user.Role)
	}
	if user.Password == input.Password {
		t.Error("expected the stored password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		t.Errorf("stored hash does not match the password: %v", err)
	}

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register(ctx, input)
		if !errors.Is(err, apperrors.ErrConflict) {
			t.Errorf("expected ErrConflict, got %v", err)
		}
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newAuthService(db)

	registered, err := svc.Register(ctx, RegisterInput{
		FirstName: "Frida",
		LastName:  "Kahlo",
		Email:     "frida@example.com",
		Password:  "secret123",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	t.Run("valid credentials issue a resolvable token", func(t *testing.T) {
		token, user, err := svc.Login(ctx, "frida@example.com", "secret123")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if token == "" {
			t.Fatal("expected a token")
		}
		if user.ID != registered.ID {
			t.Errorf("expected user %s, got %s", registered.ID, user.ID)
		}

		resolved, err := svc.Authenticate(ctx, token)
		if err != nil {
			t.Fatalf("Authenticate() error = %v", err)
		}
		if resolved.ID != registered.ID {
			t.Errorf("token resolved to %s, want %s", resolved.ID, registered.ID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "frida@example.com", "nope")
		if !errors.Is(err, apperrors.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "unknown@example.com", "secret123")
		if !errors.Is(err, apperrors.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "not-a-token")
		if !errors.Is(err, apperrors.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})
}
