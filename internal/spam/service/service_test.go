package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"calldex_backend/internal/spam/repository"
	"calldex_backend/platform/apperr"
	"calldex_backend/platform/cache"
	"calldex_backend/platform/logger"
)

type fakeRepo struct {
	reports map[string]map[uuid.UUID]repository.Report
	fail    bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{reports: make(map[string]map[uuid.UUID]repository.Report)}
}

func (f *fakeRepo) Create(_ context.Context, phoneNumber string, reportedBy uuid.UUID) (repository.Report, error) {
	if f.fail {
		return repository.Report{}, errTimeout
	}
	byReporter := f.reports[phoneNumber]
	if byReporter == nil {
		byReporter = make(map[uuid.UUID]repository.Report)
		f.reports[phoneNumber] = byReporter
	}
	if _, ok := byReporter[reportedBy]; ok {
		return repository.Report{}, apperr.Conflict("You have already reported this number as spam")
	}

	report := repository.Report{
		ID:          uuid.New(),
		PhoneNumber: phoneNumber,
		ReportedBy:  reportedBy,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	byReporter[reportedBy] = report
	return report, nil
}

func (f *fakeRepo) CountByPhoneNumber(_ context.Context, phoneNumber string) (int, error) {
	if f.fail {
		return 0, errTimeout
	}
	return len(f.reports[phoneNumber]), nil
}

var errTimeout = context.DeadlineExceeded

func seedReports(repo *fakeRepo, phoneNumber string, n int) {
	for i := 0; i < n; i++ {
		_, _ = repo.Create(context.Background(), phoneNumber, uuid.New())
	}
}

func newTestService(repo repository.Repository, counts *cache.Client) *Service {
	return New(repo, counts, logger.New("development"))
}

func TestReportReturnsNewTotal(t *testing.T) {
	repo := newFakeRepo()
	seedReports(repo, "555", 2)

	svc := newTestService(repo, nil)
	resp, err := svc.Report(context.Background(), "555", uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.TotalSpamReports != 3 {
		t.Fatalf("expected total 3, got %d", resp.TotalSpamReports)
	}
	if resp.SpamReport.PhoneNumber != "555" {
		t.Fatalf("expected report echo for 555, got %q", resp.SpamReport.PhoneNumber)
	}
	if resp.Message == "" {
		t.Fatal("expected confirmation message")
	}
}

func TestReportDuplicateConflicts(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil)
	reporter := uuid.New()

	if _, err := svc.Report(context.Background(), "555", reporter); err != nil {
		t.Fatalf("unexpected error on first report: %v", err)
	}

	_, err := svc.Report(context.Background(), "555", reporter)
	if !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("expected conflict on duplicate report, got %v", err)
	}
}

func TestStatusBelowThreshold(t *testing.T) {
	repo := newFakeRepo()
	seedReports(repo, "555", 3)

	resp, err := newTestService(repo, nil).Status(context.Background(), "555")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.SpamReports != 3 || resp.SpamLikelihood != 30 || resp.IsSpam {
		t.Fatalf("expected 3 reports / 30 / not spam, got %+v", resp)
	}
}

func TestStatusAboveThreshold(t *testing.T) {
	repo := newFakeRepo()
	seedReports(repo, "555", 6)

	resp, err := newTestService(repo, nil).Status(context.Background(), "555")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.SpamLikelihood != 60 || !resp.IsSpam {
		t.Fatalf("expected 60 / spam, got %+v", resp)
	}
}

func TestStatusUnreportedNumber(t *testing.T) {
	resp, err := newTestService(newFakeRepo(), nil).Status(context.Background(), "000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.SpamReports != 0 || resp.SpamLikelihood != 0 || resp.IsSpam {
		t.Fatalf("expected clean status, got %+v", resp)
	}
}

func TestStatusLeadingSpaceBecomesPlus(t *testing.T) {
	repo := newFakeRepo()
	seedReports(repo, "+31612345678", 1)

	resp, err := newTestService(repo, nil).Status(context.Background(), " 31612345678")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.PhoneNumber != "+31612345678" || resp.SpamReports != 1 {
		t.Fatalf("expected leading space treated as '+', got %+v", resp)
	}
}

func TestStatusCacheReadThroughAndInvalidation(t *testing.T) {
	mr := miniredis.RunT(t)
	counts := cache.NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Minute)

	repo := newFakeRepo()
	seedReports(repo, "555", 2)
	svc := newTestService(repo, counts)

	// First read warms the cache.
	resp, err := svc.Status(context.Background(), "555")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.SpamReports != 2 {
		t.Fatalf("expected 2 reports, got %d", resp.SpamReports)
	}

	// A report invalidates the cached count so the next status is fresh.
	if _, err := svc.Report(context.Background(), "555", uuid.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err = svc.Status(context.Background(), "555")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.SpamReports != 3 {
		t.Fatalf("expected invalidated cache to reflect 3 reports, got %d", resp.SpamReports)
	}
}

func TestStatusStoreFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.fail = true

	_, err := newTestService(repo, nil).Status(context.Background(), "555")
	if !apperr.Is(err, apperr.KindUnavailable) {
		t.Fatalf("expected unavailable kind, got %v", err)
	}
}
