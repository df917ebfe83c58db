package records

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	records []Record
	hashes  map[string][]byte
}

// NewMemoryRepository builds an in-memory records store seeded with the
// provided snapshot. Used in tests and when the service runs without a
// database.
func NewMemoryRepository(seed []Record) Repository {
	recs := make([]Record, len(seed))
	copy(recs, seed)
	return &memoryRepository{records: recs, hashes: make(map[string][]byte)}
}

func (r *memoryRepository) Load(_ context.Context) ([]Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *memoryRepository) UpdatePINHash(_ context.Context, account string, hash []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if NormalizeAccount(rec.Account) == NormalizeAccount(account) {
			r.hashes[rec.Account] = hash
			return nil
		}
	}
	return ErrAccountNotFound
}
