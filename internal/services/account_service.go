package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"mangosense/internal/domain/user"
	"mangosense/internal/repository"
	mango_errors "mangosense/pkg/errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// SessionStore is the server-side session state behind the login cookie.
// Implemented by the Redis store.
type SessionStore interface {
	Create(ctx context.Context, userID uuid.UUID, email string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}

// AccountService handles registration and cookie-session login for the
// mobile app.
type AccountService struct {
	userRepo repository.UserRepository
	sessions SessionStore
}

func NewAccountService(userRepo repository.UserRepository, sessions SessionStore) *AccountService {
	return &AccountService{userRepo: userRepo, sessions: sessions}
}

// RegisterInput is the normalized registration request. The address is
// validated but intentionally not persisted; there is no profile model yet.
type RegisterInput struct {
	FirstName       string
	LastName        string
	Address         string
	Email           string
	Password        string
	ConfirmPassword string
}

type LoginResult struct {
	User      user.User
	SessionID string
}

// Register validates every field, accumulating all violations into one
// ValidationErrors list, then creates the user record.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (uuid.UUID, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Address = strings.TrimSpace(in.Address)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if in.FirstName == "" || in.LastName == "" || in.Address == "" || in.Email == "" || in.Password == "" {
		return uuid.Nil, mango_errors.ValidationErrors{"All required fields must be provided."}
	}

	var errs mango_errors.ValidationErrors
	errs = append(errs, validateName(in.FirstName, "First name")...)
	errs = append(errs, validateName(in.LastName, "Last name")...)
	errs = append(errs, validateAddress(in.Address)...)

	if !emailPattern.MatchString(in.Email) {
		errs = append(errs, "Invalid email format.")
	} else {
		exists, err := s.userRepo.EmailExists(ctx, in.Email)
		if err != nil {
			return uuid.Nil, err
		}
		if exists {
			errs = append(errs, "An account with this email already exists.")
		}
	}

	if in.ConfirmPassword != "" && in.Password != in.ConfirmPassword {
		errs = append(errs, "Passwords do not match.")
	}
	if len(in.Password) < 8 {
		errs = append(errs, "Password must be at least 8 characters long.")
	}

	if len(errs) > 0 {
		return uuid.Nil, errs
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return uuid.Nil, err
	}

	now := time.Now()
	newUser := &user.User{
		ID:           uuid.New(),
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: hash,
		IsActive:     true,
		IsSuperuser:  false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, newUser); err != nil {
		// A concurrent registration can win the unique index race between
		// the existence check and the insert.
		if errors.Is(err, mango_errors.ErrAlreadyExists) {
			return uuid.Nil, mango_errors.ValidationErrors{"An account with this email already exists."}
		}
		return uuid.Nil, err
	}

	return newUser.ID, nil
}

// Login authenticates by email and password and establishes a session.
func (s *AccountService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if email == "" || password == "" {
		return LoginResult{}, mango_errors.ErrInvalidInput
	}
	if !emailPattern.MatchString(email) {
		return LoginResult{}, mango_errors.ErrInvalidEmail
	}

	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mango_errors.ErrNotFound) {
			return LoginResult{}, mango_errors.ErrUnauthorized
		}
		return LoginResult{}, err
	}

	if err := comparePassword(u.PasswordHash, password); err != nil {
		return LoginResult{}, mango_errors.ErrUnauthorized
	}

	if !u.IsActive {
		return LoginResult{}, mango_errors.ErrInactiveAccount
	}

	sessionID, err := s.sessions.Create(ctx, u.ID, u.Email)
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to create session: %w", err)
	}

	return LoginResult{User: u, SessionID: sessionID}, nil
}

// Logout terminates the session behind the cookie. A missing or expired
// session fails with ErrUnauthorized.
func (s *AccountService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return mango_errors.ErrUnauthorized
	}
	return s.sessions.Delete(ctx, sessionID)
}

func validateName(name, fieldName string) mango_errors.ValidationErrors {
	var errs mango_errors.ValidationErrors
	if len(name) < 2 {
		errs = append(errs, fmt.Sprintf("%s must be at least 2 characters long.", fieldName))
	}
	return errs
}

func validateAddress(address string) mango_errors.ValidationErrors {
	var errs mango_errors.ValidationErrors
	if len(address) < 5 {
		errs = append(errs, "Address must be at least 5 characters long.")
	}
	if len(address) > 200 {
		errs = append(errs, "Address cannot exceed 200 characters.")
	}
	return errs
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
