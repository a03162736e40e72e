package service

import (
	"context"

	"github.com/google/uuid"

	"calldex_backend/internal/spam/repository"
	"calldex_backend/internal/spam/score"
	"calldex_backend/internal/spam/transport"
	"calldex_backend/platform/apperr"
	"calldex_backend/platform/cache"
	"calldex_backend/platform/logger"
	"calldex_backend/platform/phone"
)

const msgReported = "Phone number reported as spam successfully"

// Service provides spam reporting and status lookups.
type Service struct {
	repo   repository.Repository
	counts *cache.Client
	log    *logger.Logger
}

// New creates a new spam service. counts may be nil to run without Redis.
func New(repo repository.Repository, counts *cache.Client, log *logger.Logger) *Service {
	return &Service{repo: repo, counts: counts, log: log}
}

// Report records one user's spam flag on a phone number and returns the new
// total. Reporting the same number twice yields a Conflict error.
func (s *Service) Report(ctx context.Context, phoneNumber string, reportedBy uuid.UUID) (transport.ReportResponse, error) {
	report, err := s.repo.Create(ctx, phoneNumber, reportedBy)
	if err != nil {
		if apperr.GetKind(err) != apperr.KindUnknown {
			return transport.ReportResponse{}, err
		}
		return transport.ReportResponse{}, s.collaboratorFailure("report spam", err)
	}

	s.counts.InvalidateSpamCount(ctx, phoneNumber)

	total, err := s.repo.CountByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		return transport.ReportResponse{}, s.collaboratorFailure("report spam", err)
	}

	s.log.Info("spam report created", "phone_number", phoneNumber, "total_reports", total)
	return transport.ReportResponse{
		Message: msgReported,
		SpamReport: transport.ReportDetails{
			ID:          report.ID,
			PhoneNumber: report.PhoneNumber,
			ReportedAt:  report.CreatedAt,
		},
		TotalSpamReports: total,
	}, nil
}

// Status returns the report count, likelihood, and spam verdict for a phone
// number. Counts are cached briefly; a cold cache reads through to the store.
func (s *Service) Status(ctx context.Context, phoneNumber string) (transport.StatusResponse, error) {
	phoneNumber = phone.FixLeadingSpace(phoneNumber)

	count, hit := s.counts.GetSpamCount(ctx, phoneNumber)
	if !hit {
		var err error
		count, err = s.repo.CountByPhoneNumber(ctx, phoneNumber)
		if err != nil {
			return transport.StatusResponse{}, s.collaboratorFailure("spam status", err)
		}
		s.counts.SetSpamCount(ctx, phoneNumber, count)
	}

	likelihood := score.Likelihood(count)
	return transport.StatusResponse{
		PhoneNumber:    phoneNumber,
		SpamReports:    count,
		SpamLikelihood: likelihood,
		IsSpam:         score.IsSpam(likelihood),
	}, nil
}

func (s *Service) collaboratorFailure(op string, err error) error {
	s.log.DatabaseError(op, err)
	return apperr.Wrap(apperr.KindUnavailable, "spam report store failed", err).WithOp(op)
}
