package repository

import (
	"context"

	"github.com/google/uuid"
)

// Contact is a phone book entry owned by a registered user.
type Contact struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	PhoneNumber string
	CreatedAt   string
}

// CreateParams holds the fields needed to store a new contact.
type CreateParams struct {
	UserID      uuid.UUID
	Name        string
	PhoneNumber string
}

// Repository defines contact persistence operations.
type Repository interface {
	Create(ctx context.Context, params CreateParams) (Contact, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]Contact, error)
}
