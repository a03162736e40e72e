package service

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/google/uuid"

	"calldex_backend/internal/directory/repository"
	"calldex_backend/internal/directory/transport"
	"calldex_backend/internal/spam/score"
	"calldex_backend/platform/apperr"
	"calldex_backend/platform/logger"
	"calldex_backend/platform/phone"
)

// Requester identifies the authenticated caller performing a search.
type Requester struct {
	ID          uuid.UUID
	PhoneNumber string
}

// Service provides caller-identification search over users and contacts.
type Service struct {
	store repository.Store
	log   *logger.Logger
}

// New creates a new directory service.
func New(store repository.Store, log *logger.Logger) *Service {
	return &Service{store: store, log: log}
}

// SearchByName finds identities whose name matches the fragment. Prefix
// matches rank before substring matches, registered users before contact
// sightings, and each phone number appears at most once. Every result
// carries a spam likelihood derived from one batched report-count query.
func (s *Service) SearchByName(ctx context.Context, name string, requester Requester) (transport.NameSearchResponse, error) {
	empty := transport.NameSearchResponse{Results: []transport.NameSearchResult{}, Count: 0}

	name = strings.TrimSpace(name)
	if name == "" {
		return empty, nil
	}

	// The four source queries are independent reads; run them concurrently
	// and fail the whole search if any one fails. No partial results.
	var (
		usersPrefix      []repository.User
		usersContains    []repository.User
		contactsPrefix   []repository.Contact
		contactsContains []repository.Contact
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		usersPrefix, err = s.store.FindUsersByNamePrefix(gctx, name)
		return err
	})
	g.Go(func() error {
		var err error
		usersContains, err = s.store.FindUsersByNameSubstring(gctx, name)
		return err
	})
	g.Go(func() error {
		var err error
		contactsPrefix, err = s.store.FindContactsByNamePrefix(gctx, name)
		return err
	})
	g.Go(func() error {
		var err error
		contactsContains, err = s.store.FindContactsByNameSubstring(gctx, name)
		return err
	})
	if err := g.Wait(); err != nil {
		return empty, s.collaboratorFailure("search by name", err)
	}

	merged := mergeCandidates(
		userCandidates(usersPrefix),
		contactCandidates(contactsPrefix),
		userCandidates(usersContains),
		contactCandidates(contactsContains),
	)
	if len(merged) == 0 {
		return empty, nil
	}

	phoneNumbers := make([]string, len(merged))
	for i, c := range merged {
		phoneNumbers[i] = c.PhoneNumber
	}

	counts, err := s.store.CountSpamReportsBatch(ctx, phoneNumbers)
	if err != nil {
		return empty, s.collaboratorFailure("search by name", err)
	}

	results := make([]transport.NameSearchResult, len(merged))
	for i, c := range merged {
		results[i] = transport.NameSearchResult{
			Name:           c.Name,
			PhoneNumber:    c.PhoneNumber,
			SpamLikelihood: score.Likelihood(counts[c.PhoneNumber]),
			IsRegistered:   c.IsRegistered,
		}
	}

	return transport.NameSearchResponse{Results: results, Count: len(results)}, nil
}

// SearchByPhone resolves one phone number. A registered owner yields exactly
// one result with a privacy-gated email; otherwise every contact sighting of
// the number is returned with a shared spam likelihood and no email. An
// unknown number is an empty result set, not an error.
func (s *Service) SearchByPhone(ctx context.Context, phoneNumber string, requester Requester) (transport.PhoneSearchResponse, error) {
	empty := transport.PhoneSearchResponse{Results: []transport.PhoneSearchResult{}, Count: 0}

	phoneNumber = phone.FixLeadingSpace(phoneNumber)

	user, err := s.store.FindUserByPhoneNumber(ctx, phoneNumber)
	if err == nil {
		return s.resolveRegistered(ctx, user, requester)
	}
	if !apperr.Is(err, apperr.KindNotFound) {
		return empty, s.collaboratorFailure("search by phone", err)
	}

	contacts, err := s.store.FindContactsByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		return empty, s.collaboratorFailure("search by phone", err)
	}
	if len(contacts) == 0 {
		return empty, nil
	}

	count, err := s.store.CountSpamReports(ctx, phoneNumber)
	if err != nil {
		return empty, s.collaboratorFailure("search by phone", err)
	}

	// One shared likelihood for every sighting of the number.
	likelihood := score.Likelihood(count)
	results := make([]transport.PhoneSearchResult, len(contacts))
	for i, c := range contacts {
		results[i] = transport.PhoneSearchResult{
			Name:           c.Name,
			PhoneNumber:    c.PhoneNumber,
			Email:          nil,
			SpamLikelihood: likelihood,
			IsRegistered:   false,
		}
	}

	return transport.PhoneSearchResponse{Results: results, Count: len(results)}, nil
}

func (s *Service) resolveRegistered(ctx context.Context, user repository.User, requester Requester) (transport.PhoneSearchResponse, error) {
	empty := transport.PhoneSearchResponse{Results: []transport.PhoneSearchResult{}, Count: 0}

	disclose, err := s.canDiscloseEmail(ctx, user, requester)
	if err != nil {
		return empty, s.collaboratorFailure("search by phone", err)
	}

	count, err := s.store.CountSpamReports(ctx, user.PhoneNumber)
	if err != nil {
		return empty, s.collaboratorFailure("search by phone", err)
	}

	var email *string
	if disclose {
		email = user.Email
	}

	result := transport.PhoneSearchResult{
		Name:           user.Name,
		PhoneNumber:    user.PhoneNumber,
		Email:          email,
		SpamLikelihood: score.Likelihood(count),
		IsRegistered:   true,
	}

	return transport.PhoneSearchResponse{Results: []transport.PhoneSearchResult{result}, Count: 1}, nil
}

func (s *Service) collaboratorFailure(op string, err error) error {
	s.log.DatabaseError(op, err)
	return apperr.Wrap(apperr.KindUnavailable, "directory lookup failed", err).WithOp(op)
}

func userCandidates(users []repository.User) []candidate {
	out := make([]candidate, len(users))
	for i, u := range users {
		out[i] = candidate{Name: u.Name, PhoneNumber: u.PhoneNumber, IsRegistered: true}
	}
	return out
}

func contactCandidates(contacts []repository.Contact) []candidate {
	out := make([]candidate, len(contacts))
	for i, c := range contacts {
		out[i] = candidate{Name: c.Name, PhoneNumber: c.PhoneNumber, IsRegistered: false}
	}
	return out
}
