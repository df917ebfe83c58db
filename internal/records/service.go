package records

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

// Service wraps the repository with the identity verification and PIN
// commit operations the conversation flow needs.
type Service struct {
	repo Repository
}

// NewService creates a records service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Verify reloads the records snapshot and matches the supplied identity
// tuple against it. The snapshot is read fresh on every call.
func (s *Service) Verify(ctx context.Context, in Input) (Record, bool, error) {
	snapshot, err := s.repo.Load(ctx)
	if err != nil {
		return Record{}, false, err
	}
	rec, ok := Match(snapshot, in)
	return rec, ok, nil
}

// CommitPIN hashes the confirmed PIN and persists it for the account.
func (s *Service) CommitPIN(ctx context.Context, account, pin string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePINHash(ctx, account, hash)
}
