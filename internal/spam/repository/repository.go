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
	duplicateReportMessage = "You have already reported this number as spam"
	uniqueViolationCode    = "23505"
)

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new spam report repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// Create inserts a spam report. The unique constraint enforces one report
// per reporter per number; a violation maps to a Conflict kind rather than
// a pre-read, so concurrent duplicate reports cannot race past the check.
func (r *Repo) Create(ctx context.Context, phoneNumber string, reportedBy uuid.UUID) (Report, error) {
	query := `
		INSERT INTO spam_reports (phone_number, reported_by)
		VALUES ($1, $2)
		RETURNING id, phone_number, reported_by, created_at`

	var report Report
	var createdAt time.Time

	err := r.pool.QueryRow(ctx, query, phoneNumber, reportedBy).Scan(
		&report.ID, &report.PhoneNumber, &report.ReportedBy, &createdAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return Report{}, apperr.Conflict(duplicateReportMessage)
		}
		return Report{}, fmt.Errorf("create spam report: %w", err)
	}

	report.CreatedAt = createdAt.Format(time.RFC3339)
	return report, nil
}

// CountByPhoneNumber returns the total report count for a phone number.
func (r *Repo) CountByPhoneNumber(ctx context.Context, phoneNumber string) (int, error) {
	query := `SELECT COUNT(*) FROM spam_reports WHERE phone_number = $1`

	var count int
	if err := r.pool.QueryRow(ctx, query, phoneNumber).Scan(&count); err != nil {
		return 0, fmt.Errorf("count spam reports: %w", err)
	}

	return count, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
