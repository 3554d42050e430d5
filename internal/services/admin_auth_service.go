package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"mangosense/config"
	"mangosense/internal/domain/user"
	"mangosense/internal/repository"
	mango_errors "mangosense/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// AdminAuthService mints and refreshes the signed token pair used by the
// admin console. Tokens are never stored server-side; validity is purely a
// function of signature and expiry.
type AdminAuthService struct {
	userRepo   repository.UserRepository
	jwtSecret  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAdminAuthService(userRepo repository.UserRepository, cfg *config.Config) *AdminAuthService {
	return &AdminAuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(cfg.JWTSecret),
		accessTTL:  time.Duration(cfg.JWTExpiryMin) * time.Minute,
		refreshTTL: time.Duration(cfg.RefreshExpiry) * 24 * time.Hour,
	}
}

type TokenPair struct {
	Access  string
	Refresh string
}

type TokenClaims struct {
	Email     string `json:"email,omitempty"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// Login authenticates against the shared user store. Valid credentials on an
// account without the superuser flag fail with ErrForbidden rather than
// ErrUnauthorized.
func (s *AdminAuthService) Login(ctx context.Context, username, password string) (TokenPair, user.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return TokenPair{}, user.User{}, mango_errors.ErrInvalidInput
	}

	u, err := s.userRepo.GetByEmail(ctx, username)
	if err != nil {
		if errors.Is(err, mango_errors.ErrNotFound) {
			return TokenPair{}, user.User{}, mango_errors.ErrUnauthorized
		}
		return TokenPair{}, user.User{}, err
	}

	if err := comparePassword(u.PasswordHash, password); err != nil {
		return TokenPair{}, user.User{}, mango_errors.ErrUnauthorized
	}
	if !u.IsActive {
		return TokenPair{}, user.User{}, mango_errors.ErrUnauthorized
	}
	if !u.IsSuperuser {
		return TokenPair{}, user.User{}, mango_errors.ErrForbidden
	}

	access, err := s.mintToken(u, tokenTypeAccess, s.accessTTL)
	if err != nil {
		return TokenPair{}, user.User{}, err
	}
	refresh, err := s.mintToken(u, tokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return TokenPair{}, user.User{}, err
	}

	return TokenPair{Access: access, Refresh: refresh}, u, nil
}

// Refresh derives a new access token from a valid refresh token. The new
// access token carries the same identity with a fresh expiry.
func (s *AdminAuthService) Refresh(refreshToken string) (string, error) {
	claims, err := s.parseToken(refreshToken)
	if err != nil {
		return "", err
	}
	if claims.TokenType != tokenTypeRefresh {
		return "", mango_errors.ErrUnauthorized
	}

	now := time.Now()
	access := TokenClaims{
		Email:     claims.Email,
		TokenType: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.Subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, access).SignedString(s.jwtSecret)
}

// ParseAccessToken verifies an access token and returns its claims.
func (s *AdminAuthService) ParseAccessToken(tokenString string) (TokenClaims, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return TokenClaims{}, err
	}
	if claims.TokenType != tokenTypeAccess {
		return TokenClaims{}, mango_errors.ErrUnauthorized
	}
	return claims, nil
}

func (s *AdminAuthService) mintToken(u user.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		Email:     u.Email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

func (s *AdminAuthService) parseToken(tokenString string) (TokenClaims, error) {
	if tokenString == "" {
		return TokenClaims{}, mango_errors.ErrUnauthorized
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, mango_errors.ErrUnauthorized
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return TokenClaims{}, mango_errors.ErrUnauthorized
	}

	claims, ok := parsed.Claims.(*TokenClaims)
	if !ok || !parsed.Valid {
		return TokenClaims{}, mango_errors.ErrUnauthorized
	}

	return *claims, nil
}
