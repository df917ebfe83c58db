package faq

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Entry is one curated question/answer pair in a given language.
type Entry struct {
	Language string
	Category string
	Question string
	Answer   string
}

// Store lists FAQ entries for a language, case-insensitively.
type Store interface {
	ListByLanguage(ctx context.Context, language string) ([]Entry, error)
}

// PostgresStore reads the faq_entries table.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore builds a Postgres-backed FAQ store.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// ListByLanguage selects the entries whose language matches, ignoring case
// and surrounding whitespace.
func (s *PostgresStore) ListByLanguage(ctx context.Context, language string) ([]Entry, error) {
	rows, err := s.db.Query(ctx,
		`SELECT language, category, question, answer FROM faq_entries WHERE lower(trim(language)) = lower($1)`,
		strings.TrimSpace(language))
	if err != nil {
		return nil, fmt.Errorf("load faq: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Language, &e.Category, &e.Question, &e.Answer); err != nil {
			return nil, fmt.Errorf("scan faq entry: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate faq: %w", err)
	}
	return out, nil
}

// MemoryStore is a fixed in-memory FAQ set for tests and database-less runs.
type MemoryStore struct {
	entries []Entry
}

// NewMemoryStore seeds an in-memory FAQ store.
func NewMemoryStore(entries []Entry) *MemoryStore {
	copied := make([]Entry, len(entries))
	copy(copied, entries)
	return &MemoryStore{entries: copied}
}

// ListByLanguage filters the seeded entries by language, ignoring case.
func (s *MemoryStore) ListByLanguage(_ context.Context, language string) ([]Entry, error) {
	want := strings.ToLower(strings.TrimSpace(language))
	var out []Entry
	for _, e := range s.entries {
		if strings.ToLower(strings.TrimSpace(e.Language)) == want {
			out = append(out, e)
		}
	}
	return out, nil
}
