package commands

import (
	"context"
	"log/slog"
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateAppointmentInput struct {
	CustomerID uuid.UUID
	StaffID    uuid.UUID
	ServiceID  uuid.UUID
	Date       time.Time
	TimeOfDay  time.Duration
	Notes      string
}

// UpdateAppointmentInput is a partial update: nil fields are untouched.
// Status and StaffNotes are admin-only.
type UpdateAppointmentInput struct {
	Date       *time.Time
	TimeOfDay  *time.Duration
	Notes      *string
	StaffNotes *string
	Status     *string
}

type AppointmentCommands interface {
	Create(ctx context.Context, input CreateAppointmentInput, actor user.Principal) (*appointment.Appointment, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateAppointmentInput, actor user.Principal) (*appointment.Appointment, error)
	Cancel(ctx context.Context, id uuid.UUID, reason string, actor user.Principal) (*appointment.Appointment, error)
	Confirm(ctx context.Context, id uuid.UUID, actor user.Principal) (*appointment.Appointment, error)
	Complete(ctx context.Context, id uuid.UUID, actor user.Principal) (*appointment.Appointment, error)
}

type appointmentCommandsImpl struct {
	repo     AppointmentRepository
	catalog  CatalogProvider
	staffDir StaffDirectory
	identity IdentityProvider
	notifier Notifier
	clock    clock.Clock
}

func NewAppointmentCommands(
	repo AppointmentRepository,
	catalog CatalogProvider,
	staffDir StaffDirectory,
	identity IdentityProvider,
	notifier Notifier,
	clock clock.Clock,
) AppointmentCommands {
	return &appointmentCommandsImpl{
		repo:     repo,
		catalog:  catalog,
		staffDir: staffDir,
		identity: identity,
		notifier: notifier,
		clock:    clock,
	}
}

func (c *appointmentCommandsImpl) Create(
	ctx context.Context,
	input CreateAppointmentInput,
	actor user.Principal,
) (*appointment.Appointment, error) {
	// Customers may only book for themselves.
	if !actor.IsAdmin() && input.CustomerID != actor.ID {
		return nil, shared.ErrForbidden
	}

	svc, err := c.resolveService(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}
	if _, err := c.resolveStaff(ctx, input.StaffID); err != nil {
		return nil, err
	}
	if _, err := c.resolveCustomer(ctx, input.CustomerID); err != nil {
		return nil, err
	}

	slot, err := appointment.NewSlotOn(input.Date, input.TimeOfDay, time.Duration(svc.DurationMinutes)*time.Minute)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrInvalidInput)
	}

	price, err := appointment.NewMoney(svc.PriceCents)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrInvalidInput)
	}

	notes, err := appointment.NewNotes(input.Notes)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrInvalidInput)
	}

	appt, err := appointment.New(input.CustomerID, input.StaffID, input.ServiceID, slot, price, notes, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, shared.ErrInvalidInput)
	}

	if err := c.repo.Create(ctx, appt); err != nil {
		return nil, mapRepoErr(err)
	}

	c.publish(ctx, EventAppointmentCreated, appt)
	return appt, nil
}

func (c *appointmentCommandsImpl) Update(
	ctx context.Context,
	id uuid.UUID,
	input UpdateAppointmentInput,
	actor user.Principal,
) (*appointment.Appointment, error) {
	appt, err := c.load(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	// Owners may move or annotate their booking, never drive the status
	// machine. The check runs before any field is applied so a mixed
	// request fails atomically.
	if !actor.IsAdmin() && (input.Status != nil || input.StaffNotes != nil) {
		return nil, shared.ErrForbidden
	}

	prevStatus := appt.Status()
	now := c.clock.Now()

	if input.Date != nil || input.TimeOfDay != nil {
		date := appt.Slot().Date()
		timeOfDay := appt.Slot().TimeOfDay()
		if input.Date != nil {
			date = *input.Date
		}
		if input.TimeOfDay != nil {
			timeOfDay = *input.TimeOfDay
		}
		// The duration snapshot travels with the appointment; the catalog
		// is not consulted again when rescheduling.
		slot, err := appointment.NewSlotOn(date, timeOfDay, appt.Slot().Duration())
		if err != nil {
			return nil, errs.Mark(err, shared.ErrInvalidInput)
		}
		if err := appt.Reschedule(slot, now); err != nil {
			return nil, markRescheduleErr(err)
		}
	}

	if input.Notes != nil {
		notes, err := appointment.NewNotes(*input.Notes)
		if err != nil {
			return nil, errs.Mark(err, shared.ErrInvalidInput)
		}
		appt.SetNotes(notes, now)
	}

	if input.StaffNotes != nil {
		notes, err := appointment.NewNotes(*input.StaffNotes)
		if err != nil {
			return nil, errs.Mark(err, shared.ErrInvalidInput)
		}
		appt.SetStaffNotes(notes, now)
	}

	if input.Status != nil {
		next, err := appointment.NewStatus(*input.Status)
		if err != nil {
			return nil, errs.Mark(err, shared.ErrInvalidInput)
		}
		if err := appt.TransitionTo(next, now); err != nil {
			return nil, errs.Mark(err, shared.ErrInvalidState)
		}
	}

	if err := c.repo.Update(ctx, appt, prevStatus); err != nil {
		return nil, mapRepoErr(err)
	}

	c.publish(ctx, eventTypeForStatus(prevStatus, appt.Status()), appt)
	return appt, nil
}

func (c *appointmentCommandsImpl) Cancel(
	ctx context.Context,
	id uuid.UUID,
	reason string,
	actor user.Principal,
) (*appointment.Appointment, error) {
	appt, err := c.load(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	prevStatus := appt.Status()
	if err := appt.Cancel(reason, c.clock.Now()); err != nil {
		return nil, errs.Mark(err, shared.ErrInvalidState)
	}

	if err := c.repo.Update(ctx, appt, prevStatus); err != nil {
		return nil, mapRepoErr(err)
	}

	c.publish(ctx, EventAppointmentCancelled, appt)
	return appt, nil
}

func (c *appointmentCommandsImpl) Confirm(
	ctx context.Context,
	id uuid.UUID,
	actor user.Principal,
) (*appointment.Appointment, error) {
	return c.transition(ctx, id, appointment.StatusConfirmed, actor)
}

func (c *appointmentCommandsImpl) Complete(
	ctx context.Context,
	id uuid.UUID,
	actor user.Principal,
) (*appointment.Appointment, error) {
	return c.transition(ctx, id, appointment.StatusCompleted, actor)
}

// transition is the admin-only status shortcut behind confirm/complete.
func (c *appointmentCommandsImpl) transition(
	ctx context.Context,
	id uuid.UUID,
	next appointment.Status,
	actor user.Principal,
) (*appointment.Appointment, error) {
	if !actor.IsAdmin() {
		return nil, shared.ErrForbidden
	}

	appt, err := c.load(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	prevStatus := appt.Status()
	if err := appt.TransitionTo(next, c.clock.Now()); err != nil {
		return nil, errs.Mark(err, shared.ErrInvalidState)
	}

	if err := c.repo.Update(ctx, appt, prevStatus); err != nil {
		return nil, mapRepoErr(err)
	}

	c.publish(ctx, eventTypeForStatus(prevStatus, appt.Status()), appt)
	return appt, nil
}

// load fetches the appointment and enforces the owner-or-admin rule common
// to every mutation.
func (c *appointmentCommandsImpl) load(ctx context.Context, id uuid.UUID, actor user.Principal) (*appointment.Appointment, error) {
	appt, err := c.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if !actor.IsAdmin() && !appt.IsOwnedBy(actor.ID) {
		return nil, shared.ErrForbidden
	}
	return appt, nil
}

func (c *appointmentCommandsImpl) resolveService(ctx context.Context, id uuid.UUID) (*ServiceSnapshot, error) {
	svc, err := c.catalog.ServiceByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, shared.ErrNotFound)
		}
		return nil, errs.Mark(err, shared.ErrUnavailable)
	}
	if !svc.Active {
		return nil, errs.Mark(errs.New("service is not active"), shared.ErrInvalidInput)
	}
	return svc, nil
}

func (c *appointmentCommandsImpl) resolveStaff(ctx context.Context, id uuid.UUID) (*StaffSnapshot, error) {
	staff, err := c.staffDir.StaffByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, shared.ErrNotFound)
		}
		return nil, errs.Mark(err, shared.ErrUnavailable)
	}
	if !staff.Active {
		return nil, errs.Mark(errs.New("staff member is not active"), shared.ErrInvalidInput)
	}
	return staff, nil
}

func (c *appointmentCommandsImpl) resolveCustomer(ctx context.Context, id uuid.UUID) (*CustomerSnapshot, error) {
	customer, err := c.identity.CustomerByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, shared.ErrNotFound)
		}
		return nil, errs.Mark(err, shared.ErrUnavailable)
	}
	if !customer.Active {
		return nil, errs.Mark(errs.New("customer account is not active"), shared.ErrInvalidInput)
	}
	return customer, nil
}

// publish emits the lifecycle event best-effort: a broker failure is
// logged and never rolls back the booking.
func (c *appointmentCommandsImpl) publish(ctx context.Context, eventType string, appt *appointment.Appointment) {
	event := Event{
		ID:            uuid.New(),
		Type:          eventType,
		AppointmentID: appt.ID(),
		CustomerID:    appt.CustomerID(),
		StaffID:       appt.StaffID(),
		Status:        appt.Status().String(),
		StartsAt:      appt.Slot().Start(),
		OccurredAt:    c.clock.Now(),
	}

	if err := c.notifier.Publish(context.WithoutCancel(ctx), event); err != nil {
		slog.Warn("failed to publish booking event",
			"event_type", eventType,
			"appointment_id", appt.ID(),
			"error", err)
	}
}

func mapRepoErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, shared.ErrNotFound)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, shared.ErrConflict)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, shared.ErrNotFound)
	default:
		return errs.Mark(err, shared.ErrUnavailable)
	}
}

func markRescheduleErr(err error) error {
	if errs.Is(err, appointment.ErrTerminalStatus) {
		return errs.Mark(err, shared.ErrInvalidState)
	}
	return errs.Mark(err, shared.ErrInvalidInput)
}

func eventTypeForStatus(prev, next appointment.Status) string {
	if prev == next {
		return EventAppointmentUpdated
	}
	switch next {
	case appointment.StatusCancelled:
		return EventAppointmentCancelled
	case appointment.StatusCompleted:
		return EventAppointmentCompleted
	default:
		return EventAppointmentUpdated
	}
}
