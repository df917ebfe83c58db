package records

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrAccountNotFound indicates a PIN commit targeted an unknown account.
var ErrAccountNotFound = errors.New("account not found")

// Repository reads the client records snapshot and persists PIN changes.
// Load returns a fresh snapshot on every call so that record edits are
// picked up without restarting the service.
type Repository interface {
	Load(ctx context.Context) ([]Record, error)
	UpdatePINHash(ctx context.Context, account string, hash []byte) error
}

// PostgresRepository implements Repository against the clients table.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed records repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Load selects all client records.
func (r *PostgresRepository) Load(ctx context.Context) ([]Record, error) {
	rows, err := r.db.Query(ctx, `SELECT name, account_number, date_of_birth, phone, email, otp FROM clients`)
	if err != nil {
		return nil, fmt.Errorf("load clients: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.Name, &rec.Account, &rec.DOB, &rec.Phone, &rec.Email, &rec.OTP); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate clients: %w", err)
	}
	return out, nil
}

// UpdatePINHash stores the new PIN hash for the given account number.
func (r *PostgresRepository) UpdatePINHash(ctx context.Context, account string, hash []byte) error {
	cmd, err := r.db.Exec(ctx, `UPDATE clients SET pin_hash = $1 WHERE account_number = $2`, hash, account)
	if err != nil {
		return fmt.Errorf("update pin: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrAccountNotFound
	}
	return nil
}
