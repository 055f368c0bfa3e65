package readstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"salon-booking/internal/infra"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AppointmentViewRepo struct {
	pool *pgxpool.Pool
}

func NewAppointmentViewRepo(pool *pgxpool.Pool) *AppointmentViewRepo {
	return &AppointmentViewRepo{pool: pool}
}

const appointmentViewSelect = `
SELECT a.id, a.customer_id, cu.full_name, cu.email,
       a.staff_id, su.full_name, st.position,
       a.service_id, sv.name,
       a.starts_at, a.ends_at, a.duration_minutes,
       a.status, a.price_cents, a.notes, a.staff_notes, a.cancellation_reason,
       a.completed_at, a.created_at, a.updated_at
FROM appointments a
JOIN users cu ON cu.id = a.customer_id
JOIN staff st ON st.id = a.staff_id
JOIN users su ON su.id = st.user_id
JOIN services sv ON sv.id = a.service_id`

const appointmentListSelect = `
SELECT a.id, a.customer_id, a.staff_id, su.full_name, sv.name,
       a.starts_at, a.ends_at, a.status, a.price_cents, a.created_at
FROM appointments a
JOIN staff st ON st.id = a.staff_id
JOIN users su ON su.id = st.user_id
JOIN services sv ON sv.id = a.service_id`

func (r *AppointmentViewRepo) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	row := r.pool.QueryRow(ctx, appointmentViewSelect+" WHERE a.id = $1", id)

	var v queries.AppointmentView
	err := row.Scan(
		&v.ID, &v.CustomerID, &v.CustomerName, &v.CustomerEmail,
		&v.StaffID, &v.StaffName, &v.StaffPosition,
		&v.ServiceID, &v.ServiceName,
		&v.StartsAt, &v.EndsAt, &v.DurationMinutes,
		&v.Status, &v.PriceCents, &v.Notes, &v.StaffNotes, &v.CancellationReason,
		&v.CompletedAt, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find appointment view", err)
	}
	return &v, nil
}

func (r *AppointmentViewRepo) List(ctx context.Context, filters queries.ListFilters) ([]*queries.AppointmentListItem, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filters.CustomerID != nil {
		add("a.customer_id = $%d", *filters.CustomerID)
	}
	if filters.StaffID != nil {
		add("a.staff_id = $%d", *filters.StaffID)
	}
	if filters.Status != nil {
		add("a.status = $%d", *filters.Status)
	}
	if filters.From != nil {
		add("a.starts_at >= $%d", *filters.From)
	}
	if filters.To != nil {
		add("a.starts_at < $%d", *filters.To)
	}

	query := appointmentListSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, filters.Limit, filters.Offset)
	query += fmt.Sprintf(" ORDER BY a.starts_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	defer rows.Close()

	return scanListItems(rows)
}

// FindByStaffAndDay returns the staff member's appointments whose slot
// starts within the UTC day containing the given time, earliest first.
func (r *AppointmentViewRepo) FindByStaffAndDay(ctx context.Context, staffID uuid.UUID, day time.Time) ([]*queries.AppointmentListItem, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	rows, err := r.pool.Query(ctx, appointmentListSelect+`
 WHERE a.staff_id = $1 AND a.starts_at >= $2 AND a.starts_at < $3
 ORDER BY a.starts_at ASC`, staffID, dayStart, dayEnd)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load staff schedule", err)
	}
	defer rows.Close()

	return scanListItems(rows)
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanListItems(rows pgxRows) ([]*queries.AppointmentListItem, error) {
	items := make([]*queries.AppointmentListItem, 0)
	for rows.Next() {
		var item queries.AppointmentListItem
		err := rows.Scan(
			&item.ID, &item.CustomerID, &item.StaffID, &item.StaffName, &item.ServiceName,
			&item.StartsAt, &item.EndsAt, &item.Status, &item.PriceCents, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointment rows", err)
	}
	return items, nil
}
