// Package repository provides persistence for account records.
package repository

import (
	"context"

	"mangosense/internal/domain/user"

	"github.com/google/uuid"
)

// UserRepository is the user-record store consumed by the account and admin
// auth services.
type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	GetByID(ctx context.Context, id uuid.UUID) (user.User, error)
	GetByEmail(ctx context.Context, email string) (user.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}
