package appointment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid appointment status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidDuration   = errors.New("duration must be positive")
	ErrInvalidTimeOfDay  = errors.New("time of day out of range")
	ErrDateInPast        = errors.New("appointment date cannot be in the past")
	ErrNotesTooLong      = errors.New("notes exceed maximum length")
	ErrNegativePrice     = errors.New("price cannot be negative")
	ErrTerminalStatus    = errors.New("appointment is in a terminal status")
)

type Appointment struct {
	id                 uuid.UUID
	customerID         uuid.UUID
	staffID            uuid.UUID
	serviceID          uuid.UUID
	slot               Slot
	status             Status
	price              Money
	notes              Notes
	staffNotes         Notes
	cancellationReason string
	completedAt        *time.Time
	createdAt          time.Time
	updatedAt          time.Time
}

// New creates a pending appointment. The price and the slot duration are
// snapshots of the catalog service at booking time.
func New(
	customerID, staffID, serviceID uuid.UUID,
	slot Slot,
	price Money,
	notes Notes,
	now time.Time,
) (*Appointment, error) {
	if err := slot.ValidateNotPastAt(now); err != nil {
		return nil, err
	}
	return &Appointment{
		id:         uuid.New(),
		customerID: customerID,
		staffID:    staffID,
		serviceID:  serviceID,
		slot:       slot,
		status:     StatusPending,
		price:      price,
		notes:      notes,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// Reconstruct rebuilds an appointment from its persisted row without
// re-running creation-time validation.
func Reconstruct(
	id, customerID, staffID, serviceID uuid.UUID,
	slot Slot,
	status Status,
	price Money,
	notes, staffNotes Notes,
	cancellationReason string,
	completedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:                 id,
		customerID:         customerID,
		staffID:            staffID,
		serviceID:          serviceID,
		slot:               slot,
		status:             status,
		price:              price,
		notes:              notes,
		staffNotes:         staffNotes,
		cancellationReason: cancellationReason,
		completedAt:        completedAt,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func (a *Appointment) ID() uuid.UUID              { return a.id }
func (a *Appointment) CustomerID() uuid.UUID      { return a.customerID }
func (a *Appointment) StaffID() uuid.UUID         { return a.staffID }
func (a *Appointment) ServiceID() uuid.UUID       { return a.serviceID }
func (a *Appointment) Slot() Slot                 { return a.slot }
func (a *Appointment) Status() Status             { return a.status }
func (a *Appointment) Price() Money               { return a.price }
func (a *Appointment) Notes() Notes               { return a.notes }
func (a *Appointment) StaffNotes() Notes          { return a.staffNotes }
func (a *Appointment) CancellationReason() string { return a.cancellationReason }
func (a *Appointment) CompletedAt() *time.Time    { return a.completedAt }
func (a *Appointment) CreatedAt() time.Time       { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time       { return a.updatedAt }

func (a *Appointment) IsActive() bool {
	return a.status.IsActive()
}

func (a *Appointment) IsOwnedBy(customerID uuid.UUID) bool {
	return a.customerID == customerID
}

// TransitionTo moves the appointment along the status machine, stamping
// completedAt when it reaches completed.
func (a *Appointment) TransitionTo(next Status, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !a.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	a.status = next
	if next == StatusCompleted {
		at := now
		a.completedAt = &at
	}
	a.updatedAt = now
	return nil
}

func (a *Appointment) Cancel(reason string, now time.Time) error {
	if err := a.TransitionTo(StatusCancelled, now); err != nil {
		return err
	}
	a.cancellationReason = reason
	return nil
}

// Reschedule moves an active appointment to a new slot. Terminal
// appointments are history and cannot move.
func (a *Appointment) Reschedule(slot Slot, now time.Time) error {
	if a.status.IsTerminal() {
		return ErrTerminalStatus
	}
	if err := slot.ValidateNotPastAt(now); err != nil {
		return err
	}
	a.slot = slot
	a.updatedAt = now
	return nil
}

func (a *Appointment) SetNotes(notes Notes, now time.Time) {
	a.notes = notes
	a.updatedAt = now
}

func (a *Appointment) SetStaffNotes(notes Notes, now time.Time) {
	a.staffNotes = notes
	a.updatedAt = now
}
