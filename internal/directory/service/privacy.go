package service

import (
	"context"

	"calldex_backend/internal/directory/repository"
)

// canDiscloseEmail decides whether a matched registered user's email may be
// shown to the requester. The rule is reciprocal contact presence: the
// matched user must have the requester's own phone number saved in their
// contact list. Contact-only matches never disclose email.
func (s *Service) canDiscloseEmail(ctx context.Context, matched repository.User, requester Requester) (bool, error) {
	if requester.PhoneNumber == "" {
		return false, nil
	}
	return s.store.ContactExists(ctx, matched.ID, requester.PhoneNumber)
}
