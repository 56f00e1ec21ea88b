package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/octobees/food-finder/internal/auth"
)

// RoleAdmin is the role carried by operator tokens.
const RoleAdmin = "admin"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLoginDisabled      = errors.New("operator login is not configured")
)

// Operator is the single account allowed to read the search history.
type Operator struct {
	Email        string
	PasswordHash string
}

// AuthService validates operator credentials and issues tokens.
type AuthService struct {
	operator Operator
	jwt      *auth.JWTManager
}

// NewAuthService constructs a new AuthService.
func NewAuthService(operator Operator, jwtManager *auth.JWTManager) *AuthService {
	operator.Email = strings.TrimSpace(operator.Email)
	return &AuthService{operator: operator, jwt: jwtManager}
}

// Enabled reports whether an operator account is configured.
func (s *AuthService) Enabled() bool {
	return s.operator.Email != "" && s.operator.PasswordHash != ""
}

// Login validates credentials and returns a JWT.
func (s *AuthService) Login(_ context.Context, email, password string) (string, error) {
	if !s.Enabled() {
		return "", ErrLoginDisabled
	}
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", errors.New("email and password must not be empty")
	}

	emailMatch := subtle.ConstantTimeCompare([]byte(strings.ToLower(email)), []byte(strings.ToLower(s.operator.Email))) == 1
	if err := bcrypt.CompareHashAndPassword([]byte(s.operator.PasswordHash), []byte(password)); err != nil || !emailMatch {
		return "", ErrInvalidCredentials
	}

	return s.jwt.GenerateToken(s.operator.Email, s.operator.Email, RoleAdmin)
}
