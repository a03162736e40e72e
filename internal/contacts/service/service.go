package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"calldex_backend/internal/contacts/repository"
	"calldex_backend/internal/contacts/transport"
	"calldex_backend/platform/apperr"
	"calldex_backend/platform/logger"
)

const msgContactAdded = "Contact added successfully"

// Service manages users' phone books.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new contacts service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Add stores a contact in the owner's phone book. Adding the same phone
// number twice for one owner yields a Conflict error.
func (s *Service) Add(ctx context.Context, ownerID uuid.UUID, name, phoneNumber string) (transport.CreateResponse, error) {
	contact, err := s.repo.Create(ctx, repository.CreateParams{
		UserID:      ownerID,
		Name:        strings.TrimSpace(name),
		PhoneNumber: strings.TrimSpace(phoneNumber),
	})
	if err != nil {
		if apperr.GetKind(err) != apperr.KindUnknown {
			return transport.CreateResponse{}, err
		}
		return transport.CreateResponse{}, s.collaboratorFailure("add contact", err)
	}

	s.log.Info("contact added", "user_id", ownerID.String())
	return transport.CreateResponse{
		Message: msgContactAdded,
		Contact: toContactResponse(contact),
	}, nil
}

// List returns every contact the owner has stored.
func (s *Service) List(ctx context.Context, ownerID uuid.UUID) (transport.ListResponse, error) {
	contacts, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return transport.ListResponse{}, s.collaboratorFailure("list contacts", err)
	}

	out := make([]transport.ContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		out = append(out, toContactResponse(contact))
	}

	return transport.ListResponse{Contacts: out, Count: len(out)}, nil
}

func toContactResponse(contact repository.Contact) transport.ContactResponse {
	return transport.ContactResponse{
		ID:          contact.ID,
		Name:        contact.Name,
		PhoneNumber: contact.PhoneNumber,
		CreatedAt:   contact.CreatedAt,
	}
}

func (s *Service) collaboratorFailure(op string, err error) error {
	s.log.DatabaseError(op, err)
	return apperr.Wrap(apperr.KindUnavailable, "contact store failed", err).WithOp(op)
}
