package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/artesania/artesania-api/app/apperrors"
	"github.com/artesania/artesania-api/app/auth"
	"github.com/artesania/artesania-api/app/models"
	"github.com/artesania/artesania-api/app/repositories"
	"golang.org/x/crypto/bcrypt"
)

// RegisterInput carries the profile fields accepted on sign-up. Role is
// deliberately absent: every registration becomes a customer.
type RegisterInput struct {
	FirstName string `json:"firstname" validate:"required,min=2,max=120"`
	LastName  string `json:"lastname" validate:"required,min=2,max=120"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

type AuthService struct {
	userRepo repositories.UserRepositoryImpl
	tokens   *auth.JWTManager
}

func NewAuthService(userRepo repositories.UserRepositoryImpl, tokens *auth.JWTManager) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

// Register creates a customer account. A duplicate email surfaces as
// apperrors.ErrConflict.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	if _, err := s.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, fmt.Errorf("email %s: %w", input.Email, apperrors.ErrConflict)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("look up email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  string(hashed),
		Role:      models.RoleCustomer,
		IsActive:  true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login verifies the credentials and issues a signed one-hour token. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, apperrors.ErrUnauthorized
		}
		return "", nil, fmt.Errorf("look up email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperrors.ErrUnauthorized
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return token, user, nil
}

// Authenticate resolves a bearer token to its user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("resolve token user: %w", err)
	}
	return user, nil
}
