package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"calldex_backend/platform/apperr"
)

const userNotFoundMessage = "user not found"

// Repo implements the Store interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new directory repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Store.
var _ Store = (*Repo)(nil)

// FindUsersByNamePrefix returns registered users whose name starts with the
// prefix, case-insensitively.
func (r *Repo) FindUsersByNamePrefix(ctx context.Context, prefix string) ([]User, error) {
	query := `
		SELECT id, name, phone_number, email
		FROM users
		WHERE name ILIKE $1
		ORDER BY name ASC`

	return r.queryUsers(ctx, "find users by name prefix", query, escapeLike(prefix)+"%")
}

// FindUsersByNameSubstring returns registered users whose name contains the
// fragment but does not start with it.
func (r *Repo) FindUsersByNameSubstring(ctx context.Context, fragment string) ([]User, error) {
	query := `
		SELECT id, name, phone_number, email
		FROM users
		WHERE name ILIKE $1 AND name NOT ILIKE $2
		ORDER BY name ASC`

	escaped := escapeLike(fragment)
	return r.queryUsers(ctx, "find users by name substring", query, "%"+escaped+"%", escaped+"%")
}

// FindContactsByNamePrefix returns contact entries whose saved name starts
// with the prefix, case-insensitively.
func (r *Repo) FindContactsByNamePrefix(ctx context.Context, prefix string) ([]Contact, error) {
	query := `
		SELECT name, phone_number
		FROM contacts
		WHERE name ILIKE $1
		ORDER BY name ASC`

	return r.queryContacts(ctx, "find contacts by name prefix", query, escapeLike(prefix)+"%")
}

// FindContactsByNameSubstring returns contact entries whose saved name
// contains the fragment but does not start with it.
func (r *Repo) FindContactsByNameSubstring(ctx context.Context, fragment string) ([]Contact, error) {
	query := `
		SELECT name, phone_number
		FROM contacts
		WHERE name ILIKE $1 AND name NOT ILIKE $2
		ORDER BY name ASC`

	escaped := escapeLike(fragment)
	return r.queryContacts(ctx, "find contacts by name substring", query, "%"+escaped+"%", escaped+"%")
}

// FindUserByPhoneNumber resolves a phone number to its registered owner.
func (r *Repo) FindUserByPhoneNumber(ctx context.Context, phoneNumber string) (User, error) {
	query := `
		SELECT id, name, phone_number, email
		FROM users
		WHERE phone_number = $1`

	var u User
	err := r.pool.QueryRow(ctx, query, phoneNumber).Scan(&u.ID, &u.Name, &u.PhoneNumber, &u.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, apperr.NotFound(userNotFoundMessage)
		}
		return User{}, fmt.Errorf("find user by phone number: %w", err)
	}

	return u, nil
}

// FindContactsByPhoneNumber returns every address-book entry naming the number.
func (r *Repo) FindContactsByPhoneNumber(ctx context.Context, phoneNumber string) ([]Contact, error) {
	query := `
		SELECT name, phone_number
		FROM contacts
		WHERE phone_number = $1
		ORDER BY name ASC`

	return r.queryContacts(ctx, "find contacts by phone number", query, phoneNumber)
}

// ContactExists reports whether ownerID has saved phoneNumber in their
// contact list. Used by the email privacy check.
func (r *Repo) ContactExists(ctx context.Context, ownerID uuid.UUID, phoneNumber string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM contacts WHERE user_id = $1 AND phone_number = $2
		)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, ownerID, phoneNumber).Scan(&exists); err != nil {
		return false, fmt.Errorf("contact exists: %w", err)
	}

	return exists, nil
}

// CountSpamReports returns the total report count for one phone number.
func (r *Repo) CountSpamReports(ctx context.Context, phoneNumber string) (int, error) {
	query := `SELECT COUNT(*) FROM spam_reports WHERE phone_number = $1`

	var count int
	if err := r.pool.QueryRow(ctx, query, phoneNumber).Scan(&count); err != nil {
		return 0, fmt.Errorf("count spam reports: %w", err)
	}

	return count, nil
}

// CountSpamReportsBatch returns report counts for a set of phone numbers.
// Numbers without reports are absent from the map.
func (r *Repo) CountSpamReportsBatch(ctx context.Context, phoneNumbers []string) (map[string]int, error) {
	counts := make(map[string]int, len(phoneNumbers))
	if len(phoneNumbers) == 0 {
		return counts, nil
	}

	query := `
		SELECT phone_number, COUNT(*)
		FROM spam_reports
		WHERE phone_number = ANY($1)
		GROUP BY phone_number`

	rows, err := r.pool.Query(ctx, query, phoneNumbers)
	if err != nil {
		return nil, fmt.Errorf("count spam reports batch: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var phoneNumber string
		var count int
		if err := rows.Scan(&phoneNumber, &count); err != nil {
			return nil, fmt.Errorf("count spam reports batch: %w", err)
		}
		counts[phoneNumber] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count spam reports batch: %w", err)
	}

	return counts, nil
}

func (r *Repo) queryUsers(ctx context.Context, op, query string, args ...interface{}) ([]User, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.PhoneNumber, &u.Email); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}

func (r *Repo) queryContacts(ctx context.Context, op, query string, args ...interface{}) ([]Contact, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	contacts := make([]Contact, 0)
	for rows.Next() {
		var c Contact
		if err := rows.Scan(&c.Name, &c.PhoneNumber); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return contacts, nil
}

// escapeLike neutralizes LIKE wildcards in user-supplied fragments.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
