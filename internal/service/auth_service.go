package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/newsroom-api/internal/config"
	"github.com/newsroom-api/internal/models"
	"github.com/newsroom-api/internal/repository"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// RegisterRequest carries a new account registration
type RegisterRequest struct {
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

// authService is the concrete implementation of AuthService
type authService struct {
	users repository.UserRepository
	cfg   *config.AuthConfig
	log   zerolog.Logger
}

// newAuthService creates a new AuthService
func newAuthService(users repository.UserRepository, cfg *config.AuthConfig, log zerolog.Logger) AuthService {
	return &authService{
		users: users,
		cfg:   cfg,
		log:   log.With().Str("service", "auth").Logger(),
	}
}

// Register creates an account with the requested role and issues a token
func (s *authService) Register(ctx context.Context, req *RegisterRequest) (*models.User, string, error) {
	fieldErrs := FieldErrors{}
	if req.Username == "" {
		fieldErrs["username"] = "username is required"
	}
	if len(req.Password) < 8 {
		fieldErrs["password"] = "password must be at least 8 characters"
	}
	if !req.Role.Valid() {
		fieldErrs["role"] = "role must be one of: reader, editor, journalist"
	}
	if len(fieldErrs) > 0 {
		return nil, "", fieldErrs
	}

	exists, err := s.users.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, "", fmt.Errorf("check username: %w", err)
	}
	if exists {
		return nil, "", FieldErrors{"username": "username already exists"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}

	s.log.Info().
		Str("user_id", user.ID).
		Str("role", string(user.Role)).
		Msg("User registered")

	return user, token, nil
}

// Login verifies credentials and issues a token
func (s *authService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return nil, "", Forbidden("Invalid credentials.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", Forbidden("Invalid credentials.")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// UserFromToken verifies the token and loads the account it names
func (s *authService) UserFromToken(ctx context.Context, tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, Forbidden("Invalid or expired token.")
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return nil, Forbidden("Invalid or expired token.")
	}

	user, err := s.users.GetByID(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return nil, Forbidden("Invalid or expired token.")
	}
	return user, nil
}

func (s *authService) issueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
