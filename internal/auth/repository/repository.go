package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"calldex_backend/platform/apperr"
)

const (
	userNotFoundMessage   = "user not found"
	phoneConflictMessage  = "Phone number already registered"
	uniqueViolationCode   = "23505"
)

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// Create inserts a new user account. A duplicate phone number returns a
// Conflict error kind.
func (r *Repo) Create(ctx context.Context, params CreateParams) (User, error) {
	query := `
		INSERT INTO users (name, phone_number, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, phone_number, email, password_hash, created_at`

	var u User
	var createdAt time.Time

	err := r.pool.QueryRow(ctx, query, params.Name, params.PhoneNumber, params.Email, params.PasswordHash).Scan(
		&u.ID, &u.Name, &u.PhoneNumber, &u.Email, &u.PasswordHash, &createdAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return User{}, apperr.Conflict(phoneConflictMessage)
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}

	u.CreatedAt = createdAt.Format(time.RFC3339)
	return u, nil
}

// GetByID retrieves a user account by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	query := `
		SELECT id, name, phone_number, email, password_hash, created_at
		FROM users
		WHERE id = $1`

	return r.getOne(ctx, query, id)
}

// GetByPhoneNumber retrieves a user account by its phone number.
func (r *Repo) GetByPhoneNumber(ctx context.Context, phoneNumber string) (User, error) {
	query := `
		SELECT id, name, phone_number, email, password_hash, created_at
		FROM users
		WHERE phone_number = $1`

	return r.getOne(ctx, query, phoneNumber)
}

func (r *Repo) getOne(ctx context.Context, query string, arg interface{}) (User, error) {
	var u User
	var createdAt time.Time

	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Name, &u.PhoneNumber, &u.Email, &u.PasswordHash, &createdAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, apperr.NotFound(userNotFoundMessage)
		}
		return User{}, fmt.Errorf("get user: %w", err)
	}

	u.CreatedAt = createdAt.Format(time.RFC3339)
	return u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
