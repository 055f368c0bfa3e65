package writerepo

import (
	"context"
	"errors"
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AppointmentRepository owns all appointment writes. Create and Update run
// the overlap scan and the row write in one ReadCommitted transaction; the
// partial exclusion constraint on (staff_id, slot) closes the remaining
// race between concurrent writers.
type AppointmentRepository struct {
	pool *pgxpool.Pool
}

func NewAppointmentRepository(pool *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{pool: pool}
}

func (r *AppointmentRepository) Create(ctx context.Context, appt *appointment.Appointment) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if err := r.ensureSlotFree(ctx, tx, appt.StaffID(), appt.Slot(), nil); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO appointments
				(id, customer_id, staff_id, service_id, starts_at, ends_at,
				 duration_minutes, status, price_cents, notes, staff_notes,
				 cancellation_reason, completed_at, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		`,
			appt.ID(), appt.CustomerID(), appt.StaffID(), appt.ServiceID(),
			appt.Slot().Start(), appt.Slot().End(),
			int32(appt.Slot().Duration().Minutes()), appt.Status().String(),
			appt.Price().Cents(), appt.Notes().String(), appt.StaffNotes().String(),
			appt.CancellationReason(), appt.CompletedAt(),
			appt.CreatedAt(), appt.UpdatedAt(),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert appointment", err)
		}
		return nil
	})
}

func (r *AppointmentRepository) Update(ctx context.Context, appt *appointment.Appointment, prevStatus appointment.Status) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if appt.Status().IsActive() {
			id := appt.ID()
			if err := r.ensureSlotFree(ctx, tx, appt.StaffID(), appt.Slot(), &id); err != nil {
				return err
			}
		}

		// The status guard rejects the write when another caller moved the
		// row since it was loaded.
		tag, err := tx.Exec(ctx, `
			UPDATE appointments
			SET starts_at = $3,
				ends_at = $4,
				status = $5,
				notes = $6,
				staff_notes = $7,
				cancellation_reason = $8,
				completed_at = $9,
				updated_at = $10
			WHERE id = $1 AND status = $2
		`,
			appt.ID(), prevStatus.String(),
			appt.Slot().Start(), appt.Slot().End(), appt.Status().String(),
			appt.Notes().String(), appt.StaffNotes().String(),
			appt.CancellationReason(), appt.CompletedAt(), appt.UpdatedAt(),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to update appointment", err)
		}
		if tag.RowsAffected() == 0 {
			return infra.WrapRepoErr("appointment was modified concurrently", nil, infra.KindConflict)
		}
		return nil
	})
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, customer_id, staff_id, service_id, starts_at, ends_at,
			status, price_cents, notes, staff_notes, cancellation_reason,
			completed_at, created_at, updated_at
		FROM appointments
		WHERE id = $1
	`, id)

	return scanAppointment(row)
}

// ensureSlotFree is the application-level overlap scan. It exists for the
// clean Conflict message; the exclusion constraint is the correctness
// backstop under concurrency.
func (r *AppointmentRepository) ensureSlotFree(ctx context.Context, tx pgx.Tx, staffID uuid.UUID, slot appointment.Slot, excludeID *uuid.UUID) error {
	var count int
	err := tx.QueryRow(ctx, `
		SELECT count(*)
		FROM appointments
		WHERE staff_id = $1
			AND status IN ('pending', 'confirmed')
			AND starts_at < $3
			AND ends_at > $2
			AND ($4::uuid IS NULL OR id <> $4)
	`, staffID, slot.Start(), slot.End(), excludeID).Scan(&count)
	if err != nil {
		return infra.WrapRepoErr("failed to scan for slot conflicts", err)
	}
	if count > 0 {
		return infra.WrapRepoErr("staff is not available at this time", nil, infra.KindConflict)
	}
	return nil
}

func (r *AppointmentRepository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit transaction", err)
	}
	return nil
}

func scanAppointment(row pgx.Row) (*appointment.Appointment, error) {
	var (
		id, customerID, staffID, serviceID uuid.UUID
		startsAt, endsAt                   time.Time
		status, notes, staffNotes, reason  string
		priceCents                         int64
		completedAt                        *time.Time
		createdAt, updatedAt               time.Time
	)

	err := row.Scan(
		&id, &customerID, &staffID, &serviceID, &startsAt, &endsAt,
		&status, &priceCents, &notes, &staffNotes, &reason,
		&completedAt, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan appointment", err)
	}

	slot, err := appointment.NewSlot(startsAt, endsAt.Sub(startsAt))
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt appointment slot", err)
	}

	apptStatus, err := appointment.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt appointment status", err)
	}

	price, err := appointment.NewMoney(priceCents)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt appointment price", err)
	}

	customerNotes, err := appointment.NewNotes(notes)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt appointment notes", err)
	}
	adminNotes, err := appointment.NewNotes(staffNotes)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt appointment staff notes", err)
	}

	return appointment.Reconstruct(
		id, customerID, staffID, serviceID,
		slot, apptStatus, price, customerNotes, adminNotes,
		reason, completedAt, createdAt, updatedAt,
	), nil
}
