package repository

import (
	"context"

	"github.com/google/uuid"
)

// User is a registered identity as seen by search queries.
type User struct {
	ID          uuid.UUID
	Name        string
	PhoneNumber string
	Email       *string
}

// Contact is an address-book sighting: a name someone saved for a number.
type Contact struct {
	Name        string
	PhoneNumber string
}

// NameReader provides the four name-match queries feeding the search merge.
// The substring variants exclude prefix matches so a row never appears in
// both tiers of the same search.
type NameReader interface {
	FindUsersByNamePrefix(ctx context.Context, prefix string) ([]User, error)
	FindUsersByNameSubstring(ctx context.Context, fragment string) ([]User, error)
	FindContactsByNamePrefix(ctx context.Context, prefix string) ([]Contact, error)
	FindContactsByNameSubstring(ctx context.Context, fragment string) ([]Contact, error)
}

// PhoneReader provides phone-number resolution queries.
type PhoneReader interface {
	FindUserByPhoneNumber(ctx context.Context, phoneNumber string) (User, error)
	FindContactsByPhoneNumber(ctx context.Context, phoneNumber string) ([]Contact, error)
	ContactExists(ctx context.Context, ownerID uuid.UUID, phoneNumber string) (bool, error)
}

// SpamCountReader provides read-only report counts for scoring.
type SpamCountReader interface {
	CountSpamReports(ctx context.Context, phoneNumber string) (int, error)
	CountSpamReportsBatch(ctx context.Context, phoneNumbers []string) (map[string]int, error)
}

// Store combines every read the search core performs.
type Store interface {
	NameReader
	PhoneReader
	SpamCountReader
}
