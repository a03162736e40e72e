package repository

import (
	"context"

	"github.com/google/uuid"
)

// Report is one user's spam flag on a phone number.
type Report struct {
	ID          uuid.UUID
	PhoneNumber string
	ReportedBy  uuid.UUID
	CreatedAt   string
}

// Repository provides spam report persistence. One report per
// (phoneNumber, reportedBy) pair; a duplicate returns a Conflict error kind.
type Repository interface {
	Create(ctx context.Context, phoneNumber string, reportedBy uuid.UUID) (Report, error)
	CountByPhoneNumber(ctx context.Context, phoneNumber string) (int, error)
}
