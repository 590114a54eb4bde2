package service

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"mentara/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService handles admin and client authentication
type AuthService struct {
	adminUsername string
	adminPassword string
	jwtSecret     []byte
}

// NewAuthService creates a new auth service
func NewAuthService() *AuthService {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "password123"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super-secret-key-change-in-production"
	}

	return &AuthService{
		adminUsername: username,
		adminPassword: password,
		jwtSecret:     []byte(secret),
	}
}

// Login validates admin credentials and returns a token
func (s *AuthService) Login(username, password string) (*model.LoginResponse, error) {
	if username != s.adminUsername || password != s.adminPassword {
		return nil, ErrInvalidCredentials
	}

	adminID := "admin_" + uuid.New().String()[:8]

	claims := &model.AdminClaims{
		AdminID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token:   tokenString,
		AdminID: adminID,
	}, nil
}

// ValidateAdminToken validates an admin JWT and returns claims
func (s *AuthService) ValidateAdminToken(tokenString string) (*model.AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.AdminClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// RegisterClient mints a new client id and a client-scoped token
func (s *AuthService) RegisterClient() (*model.ClientRegisterResponse, error) {
	clientID := "c_" + uuid.New().String()[:8]

	token, err := s.GenerateClientToken(clientID)
	if err != nil {
		return nil, err
	}

	return &model.ClientRegisterResponse{
		ClientID: clientID,
		Token:    token,
	}, nil
}

// GenerateClientToken creates a client-scoped token
func (s *AuthService) GenerateClientToken(clientID string) (string, error) {
	claims := &model.ClientClaims{
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(7 * 24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateClientToken validates a client JWT and returns claims
func (s *AuthService) ValidateClientToken(tokenString string) (*model.ClientClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.ClientClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.ClientClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
