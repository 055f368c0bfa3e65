package readstore

import (
	"context"

	"salon-booking/internal/infra"
	"salon-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ServiceCatalog reads price/duration snapshots from the shared services table.
type ServiceCatalog struct {
	pool *pgxpool.Pool
}

func NewServiceCatalog(pool *pgxpool.Pool) *ServiceCatalog {
	return &ServiceCatalog{pool: pool}
}

func (c *ServiceCatalog) ServiceByID(ctx context.Context, id uuid.UUID) (*commands.ServiceSnapshot, error) {
	row := c.pool.QueryRow(ctx, `
SELECT id, name, price_cents, duration_minutes, is_active
FROM services
WHERE id = $1`, id)

	var snap commands.ServiceSnapshot
	err := row.Scan(&snap.ID, &snap.Name, &snap.PriceCents, &snap.DurationMinutes, &snap.Active)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find service", err)
	}
	return &snap, nil
}
