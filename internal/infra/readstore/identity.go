package readstore

import (
	"context"

	"salon-booking/internal/infra"
	"salon-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CustomerDirectory reads customer snapshots from the shared users table.
type CustomerDirectory struct {
	pool *pgxpool.Pool
}

func NewCustomerDirectory(pool *pgxpool.Pool) *CustomerDirectory {
	return &CustomerDirectory{pool: pool}
}

func (d *CustomerDirectory) CustomerByID(ctx context.Context, id uuid.UUID) (*commands.CustomerSnapshot, error) {
	row := d.pool.QueryRow(ctx, `
SELECT id, is_active
FROM users
WHERE id = $1 AND user_type = 'customer'`, id)

	var snap commands.CustomerSnapshot
	if err := row.Scan(&snap.ID, &snap.Active); err != nil {
		return nil, infra.WrapRepoErr("failed to find customer", err)
	}
	return &snap, nil
}
