package repository

import (
	"context"

	"github.com/google/uuid"
)

// User is a registered account row.
type User struct {
	ID           uuid.UUID
	Name         string
	PhoneNumber  string
	Email        *string
	PasswordHash string
	CreatedAt    string
}

// CreateParams contains parameters for registering a user.
type CreateParams struct {
	Name         string
	PhoneNumber  string
	Email        *string
	PasswordHash string
}

// UserReader provides read operations for user accounts.
type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (User, error)
}

// UserWriter provides write operations for user accounts.
type UserWriter interface {
	Create(ctx context.Context, params CreateParams) (User, error)
}

// Repository combines all user account operations.
type Repository interface {
	UserReader
	UserWriter
}
