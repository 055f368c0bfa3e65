package readstore

import (
	"context"

	"salon-booking/internal/infra"
	"salon-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StaffDirectory reads staff snapshots from the shared staff table. A staff
// member is bookable only when both the staff row and its user row are active.
type StaffDirectory struct {
	pool *pgxpool.Pool
}

func NewStaffDirectory(pool *pgxpool.Pool) *StaffDirectory {
	return &StaffDirectory{pool: pool}
}

func (d *StaffDirectory) StaffByID(ctx context.Context, id uuid.UUID) (*commands.StaffSnapshot, error) {
	row := d.pool.QueryRow(ctx, `
SELECT st.id, st.is_active AND u.is_active
FROM staff st
JOIN users u ON u.id = st.user_id
WHERE st.id = $1`, id)

	var snap commands.StaffSnapshot
	if err := row.Scan(&snap.ID, &snap.Active); err != nil {
		return nil, infra.WrapRepoErr("failed to find staff member", err)
	}
	return &snap, nil
}
