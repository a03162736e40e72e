package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/google/uuid"

	"calldex_backend/internal/directory/repository"
	"calldex_backend/platform/apperr"
	"calldex_backend/platform/logger"
)

// fakeStore is an in-memory Store with the same matching semantics as the
// SQL queries: case-insensitive prefix and substring-excluding-prefix tiers,
// ordered by name.
type fakeStore struct {
	users        []repository.User
	contacts     map[uuid.UUID][]repository.Contact
	spamCounts   map[string]int
	failNameRead bool
}

func (f *fakeStore) FindUsersByNamePrefix(_ context.Context, prefix string) ([]repository.User, error) {
	if f.failNameRead {
		return nil, errors.New("connection refused")
	}
	out := make([]repository.User, 0)
	for _, u := range f.users {
		if hasPrefixFold(u.Name, prefix) {
			out = append(out, u)
		}
	}
	sortUsers(out)
	return out, nil
}

func (f *fakeStore) FindUsersByNameSubstring(_ context.Context, fragment string) ([]repository.User, error) {
	if f.failNameRead {
		return nil, errors.New("connection refused")
	}
	out := make([]repository.User, 0)
	for _, u := range f.users {
		if containsFold(u.Name, fragment) && !hasPrefixFold(u.Name, fragment) {
			out = append(out, u)
		}
	}
	sortUsers(out)
	return out, nil
}

func (f *fakeStore) FindContactsByNamePrefix(_ context.Context, prefix string) ([]repository.Contact, error) {
	out := make([]repository.Contact, 0)
	for _, list := range f.contacts {
		for _, c := range list {
			if hasPrefixFold(c.Name, prefix) {
				out = append(out, c)
			}
		}
	}
	sortContacts(out)
	return out, nil
}

func (f *fakeStore) FindContactsByNameSubstring(_ context.Context, fragment string) ([]repository.Contact, error) {
	out := make([]repository.Contact, 0)
	for _, list := range f.contacts {
		for _, c := range list {
			if containsFold(c.Name, fragment) && !hasPrefixFold(c.Name, fragment) {
				out = append(out, c)
			}
		}
	}
	sortContacts(out)
	return out, nil
}

func (f *fakeStore) FindUserByPhoneNumber(_ context.Context, phoneNumber string) (repository.User, error) {
	for _, u := range f.users {
		if u.PhoneNumber == phoneNumber {
			return u, nil
		}
	}
	return repository.User{}, apperr.NotFound("user not found")
}

func (f *fakeStore) FindContactsByPhoneNumber(_ context.Context, phoneNumber string) ([]repository.Contact, error) {
	out := make([]repository.Contact, 0)
	for _, list := range f.contacts {
		for _, c := range list {
			if c.PhoneNumber == phoneNumber {
				out = append(out, c)
			}
		}
	}
	sortContacts(out)
	return out, nil
}

func (f *fakeStore) ContactExists(_ context.Context, ownerID uuid.UUID, phoneNumber string) (bool, error) {
	for _, c := range f.contacts[ownerID] {
		if c.PhoneNumber == phoneNumber {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) CountSpamReports(_ context.Context, phoneNumber string) (int, error) {
	return f.spamCounts[phoneNumber], nil
}

func (f *fakeStore) CountSpamReportsBatch(_ context.Context, phoneNumbers []string) (map[string]int, error) {
	out := make(map[string]int)
	for _, p := range phoneNumbers {
		if n := f.spamCounts[p]; n > 0 {
			out[p] = n
		}
	}
	return out, nil
}

func hasPrefixFold(s, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
}

func containsFold(s, fragment string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(fragment))
}

func sortUsers(users []repository.User) {
	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })
}

func sortContacts(contacts []repository.Contact) {
	sort.Slice(contacts, func(i, j int) bool { return contacts[i].Name < contacts[j].Name })
}

func strPtr(s string) *string { return &s }

func newTestService(store repository.Store) *Service {
	return New(store, logger.New("development"))
}

func TestSearchByNamePrefixBeforeSubstring(t *testing.T) {
	store := &fakeStore{
		users: []repository.User{
			{ID: uuid.New(), Name: "Alice", PhoneNumber: "100"},
			{ID: uuid.New(), Name: "Albert", PhoneNumber: "200"},
			{ID: uuid.New(), Name: "Carlalice", PhoneNumber: "300"},
			{ID: uuid.New(), Name: "Bob", PhoneNumber: "400"},
		},
		contacts:   map[uuid.UUID][]repository.Contact{},
		spamCounts: map[string]int{},
	}

	resp, err := newTestService(store).SearchByName(context.Background(), "Al", Requester{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Albert", "Alice", "Carlalice"}
	if resp.Count != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), resp.Count)
	}
	for i, name := range want {
		if resp.Results[i].Name != name {
			t.Fatalf("position %d: expected %q, got %q", i, name, resp.Results[i].Name)
		}
	}
}

func TestSearchByNameRegisteredWinsOverContact(t *testing.T) {
	owner := uuid.New()
	store := &fakeStore{
		users: []repository.User{
			{ID: uuid.New(), Name: "Alice", PhoneNumber: "100"},
		},
		contacts: map[uuid.UUID][]repository.Contact{
			owner: {{Name: "Ally Saved", PhoneNumber: "100"}},
		},
		spamCounts: map[string]int{},
	}

	resp, err := newTestService(store).SearchByName(context.Background(), "Al", Requester{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Count != 1 {
		t.Fatalf("expected 1 result after dedup, got %d", resp.Count)
	}
	if !resp.Results[0].IsRegistered || resp.Results[0].Name != "Alice" {
		t.Fatalf("expected registered user to win dedup, got %+v", resp.Results[0])
	}
}

func TestSearchByNameSpamLikelihoodFromBatch(t *testing.T) {
	store := &fakeStore{
		users: []repository.User{
			{ID: uuid.New(), Name: "Alice", PhoneNumber: "100"},
			{ID: uuid.New(), Name: "Albert", PhoneNumber: "200"},
		},
		contacts: map[uuid.UUID][]repository.Contact{},
		spamCounts: map[string]int{
			"200": 7,
		},
	}

	resp, err := newTestService(store).SearchByName(context.Background(), "Al", Requester{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byName := map[string]int{}
	for _, r := range resp.Results {
		byName[r.Name] = r.SpamLikelihood
	}
	if byName["Albert"] != 70 {
		t.Fatalf("expected likelihood 70 for Albert, got %d", byName["Albert"])
	}
	if byName["Alice"] != 0 {
		t.Fatalf("expected likelihood 0 for Alice, got %d", byName["Alice"])
	}
}

func TestSearchByNameBlankQuery(t *testing.T) {
	store := &fakeStore{contacts: map[uuid.UUID][]repository.Contact{}, spamCounts: map[string]int{}}

	resp, err := newTestService(store).SearchByName(context.Background(), "   ", Requester{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Count != 0 || resp.Results == nil || len(resp.Results) != 0 {
		t.Fatalf("expected empty response, got %+v", resp)
	}
}

func TestSearchByNameCollaboratorFailure(t *testing.T) {
	store := &fakeStore{
		failNameRead: true,
		contacts:     map[uuid.UUID][]repository.Contact{},
		spamCounts:   map[string]int{},
	}

	_, err := newTestService(store).SearchByName(context.Background(), "Al", Requester{})
	if err == nil {
		t.Fatal("expected error when a source query fails")
	}
	if !apperr.Is(err, apperr.KindUnavailable) {
		t.Fatalf("expected unavailable kind, got %v", err)
	}
}

func TestSearchByPhoneRegisteredWithReciprocalContact(t *testing.T) {
	matchedID := uuid.New()
	requesterID := uuid.New()
	store := &fakeStore{
		users: []repository.User{
			{ID: matchedID, Name: "Alice", PhoneNumber: "555", Email: strPtr("alice@example.com")},
		},
		contacts: map[uuid.UUID][]repository.Contact{
			// Alice has the requester's number saved, so her email is visible.
			matchedID: {{Name: "Friend", PhoneNumber: "777"}},
		},
		spamCounts: map[string]int{"555": 2},
	}

	resp, err := newTestService(store).SearchByPhone(context.Background(), "555", Requester{ID: requesterID, PhoneNumber: "777"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Count != 1 {
		t.Fatalf("expected exactly one result, got %d", resp.Count)
	}
	r := resp.Results[0]
	if !r.IsRegistered || r.Name != "Alice" {
		t.Fatalf("expected registered match, got %+v", r)
	}
	if r.Email == nil || *r.Email != "alice@example.com" {
		t.Fatalf("expected email disclosed, got %v", r.Email)
	}
	if r.SpamLikelihood != 20 {
		t.Fatalf("expected likelihood 20, got %d", r.SpamLikelihood)
	}
}

func TestSearchByPhoneRegisteredWithoutReciprocalContact(t *testing.T) {
	matchedID := uuid.New()
	store := &fakeStore{
		users: []repository.User{
			{ID: matchedID, Name: "Alice", PhoneNumber: "555", Email: strPtr("alice@example.com")},
		},
		contacts:   map[uuid.UUID][]repository.Contact{},
		spamCounts: map[string]int{},
	}

	resp, err := newTestService(store).SearchByPhone(context.Background(), "555", Requester{ID: uuid.New(), PhoneNumber: "777"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Results[0].Email != nil {
		t.Fatalf("expected email withheld, got %v", *resp.Results[0].Email)
	}
}

func TestSearchByPhoneContactSightings(t *testing.T) {
	ownerA := uuid.New()
	ownerB := uuid.New()
	store := &fakeStore{
		contacts: map[uuid.UUID][]repository.Contact{
			ownerA: {{Name: "Plumber", PhoneNumber: "888"}},
			ownerB: {{Name: "Mario", PhoneNumber: "888"}},
		},
		spamCounts: map[string]int{"888": 6},
	}

	resp, err := newTestService(store).SearchByPhone(context.Background(), "888", Requester{ID: uuid.New(), PhoneNumber: "777"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Count != 2 {
		t.Fatalf("expected every sighting returned, got %d", resp.Count)
	}
	for _, r := range resp.Results {
		if r.IsRegistered {
			t.Fatalf("contact sighting marked registered: %+v", r)
		}
		if r.Email != nil {
			t.Fatalf("contact sighting disclosed email: %+v", r)
		}
		if r.SpamLikelihood != 60 {
			t.Fatalf("expected shared likelihood 60, got %d", r.SpamLikelihood)
		}
	}
}

func TestSearchByPhoneUnknownNumber(t *testing.T) {
	store := &fakeStore{
		contacts:   map[uuid.UUID][]repository.Contact{},
		spamCounts: map[string]int{},
	}

	resp, err := newTestService(store).SearchByPhone(context.Background(), "999", Requester{ID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Count != 0 || len(resp.Results) != 0 {
		t.Fatalf("expected empty result set, got %+v", resp)
	}
}

func TestSearchByPhoneLeadingSpaceBecomesPlus(t *testing.T) {
	store := &fakeStore{
		users: []repository.User{
			{ID: uuid.New(), Name: "Intl Caller", PhoneNumber: "+31612345678"},
		},
		contacts:   map[uuid.UUID][]repository.Contact{},
		spamCounts: map[string]int{},
	}

	resp, err := newTestService(store).SearchByPhone(context.Background(), " 31612345678", Requester{ID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Count != 1 || resp.Results[0].PhoneNumber != "+31612345678" {
		t.Fatalf("expected leading space treated as '+', got %+v", resp)
	}
}
