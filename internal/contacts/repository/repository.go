package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"calldex_backend/platform/apperr"
)

const (
	duplicateContactMessage = "Contact with this phone number already exists"
	uniqueViolationCode     = "23505"
)

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new contact repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// Create inserts a contact. Each owner can store a phone number only once;
// the unique constraint maps to a Conflict kind.
func (r *Repo) Create(ctx context.Context, params CreateParams) (Contact, error) {
	query := `
		INSERT INTO contacts (user_id, name, phone_number)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, name, phone_number, created_at`

	var contact Contact
	var createdAt time.Time

	err := r.pool.QueryRow(ctx, query, params.UserID, params.Name, params.PhoneNumber).Scan(
		&contact.ID, &contact.UserID, &contact.Name, &contact.PhoneNumber, &createdAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return Contact{}, apperr.Conflict(duplicateContactMessage)
		}
		return Contact{}, fmt.Errorf("create contact: %w", err)
	}

	contact.CreatedAt = createdAt.Format(time.RFC3339)
	return contact, nil
}

// ListByOwner returns all contacts stored by a user, newest first.
func (r *Repo) ListByOwner(ctx context.Context, userID uuid.UUID) ([]Contact, error) {
	query := `
		SELECT id, user_id, name, phone_number, created_at
		FROM contacts
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]Contact, 0)
	for rows.Next() {
		var contact Contact
		var createdAt time.Time
		if err := rows.Scan(&contact.ID, &contact.UserID, &contact.Name, &contact.PhoneNumber, &createdAt); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contact.CreatedAt = createdAt.Format(time.RFC3339)
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}

	return contacts, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
