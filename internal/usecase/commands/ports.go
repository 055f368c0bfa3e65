package commands

import (
	"context"
	"time"

	"salon-booking/internal/domain/appointment"

	"github.com/google/uuid"
)

// Write-side snapshots keep the command layer independent of the read-side
// query types and of the collaborators' own schemas.

type ServiceSnapshot struct {
	ID              uuid.UUID
	Name            string
	PriceCents      int64
	DurationMinutes int
	Active          bool
}

type StaffSnapshot struct {
	ID     uuid.UUID
	Active bool
}

type CustomerSnapshot struct {
	ID     uuid.UUID
	Active bool
}

// CatalogProvider resolves a service to its price/duration snapshot.
type CatalogProvider interface {
	ServiceByID(ctx context.Context, id uuid.UUID) (*ServiceSnapshot, error)
}

// StaffDirectory resolves a staff member's existence and active flag.
type StaffDirectory interface {
	StaffByID(ctx context.Context, id uuid.UUID) (*StaffSnapshot, error)
}

// IdentityProvider resolves a customer's existence and active flag.
type IdentityProvider interface {
	CustomerByID(ctx context.Context, id uuid.UUID) (*CustomerSnapshot, error)
}

// AppointmentRepository persists appointments. Create and Update run the
// overlap scan and the row write inside one transaction; the partial
// exclusion constraint on (staff_id, slot) backstops the scan against
// concurrent writers, surfacing as a Conflict-kind repository error.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *appointment.Appointment) error
	// Update persists the full mutable state of appt. prevStatus is the
	// status the row held when it was loaded; the write is rejected as a
	// conflict when another writer moved it in the meantime.
	Update(ctx context.Context, appt *appointment.Appointment, prevStatus appointment.Status) error
	FindByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error)
}

// Event is a booking-lifecycle notification. Publishing is best-effort:
// failures are logged by the caller and never fail the owning operation.
type Event struct {
	ID            uuid.UUID
	Type          string
	AppointmentID uuid.UUID
	CustomerID    uuid.UUID
	StaffID       uuid.UUID
	Status        string
	StartsAt      time.Time
	OccurredAt    time.Time
}

const (
	EventAppointmentCreated   = "appointment.created"
	EventAppointmentUpdated   = "appointment.updated"
	EventAppointmentCancelled = "appointment.cancelled"
	EventAppointmentCompleted = "appointment.completed"
)

type Notifier interface {
	Publish(ctx context.Context, event Event) error
}
