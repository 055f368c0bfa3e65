package queries

import (
	"context"
	"time"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Read models (DTOs for the read side)

type AppointmentView struct {
	ID                 uuid.UUID  `json:"id"`
	CustomerID         uuid.UUID  `json:"customer_id"`
	CustomerName       string     `json:"customer_name"`
	CustomerEmail      string     `json:"customer_email"`
	StaffID            uuid.UUID  `json:"staff_id"`
	StaffName          string     `json:"staff_name"`
	StaffPosition      string     `json:"staff_position"`
	ServiceID          uuid.UUID  `json:"service_id"`
	ServiceName        string     `json:"service_name"`
	StartsAt           time.Time  `json:"starts_at"`
	EndsAt             time.Time  `json:"ends_at"`
	DurationMinutes    int32      `json:"duration_minutes"`
	Status             string     `json:"status"`
	PriceCents         int64      `json:"price_cents"`
	Notes              string     `json:"notes,omitempty"`
	StaffNotes         string     `json:"staff_notes,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type AppointmentListItem struct {
	ID          uuid.UUID `json:"id"`
	CustomerID  uuid.UUID `json:"customer_id"`
	StaffID     uuid.UUID `json:"staff_id"`
	StaffName   string    `json:"staff_name"`
	ServiceName string    `json:"service_name"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Status      string    `json:"status"`
	PriceCents  int64     `json:"price_cents"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListFilters struct {
	CustomerID *uuid.UUID
	StaffID    *uuid.UUID
	Status     *string
	From       *time.Time
	To         *time.Time
	Limit      int32
	Offset     int32
}

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

func ValidateLimit(limit int32) int32 {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actor user.Principal) (*AppointmentView, error)
	List(ctx context.Context, filters ListFilters, actor user.Principal) ([]*AppointmentListItem, error)
	StaffSchedule(ctx context.Context, staffID uuid.UUID, day time.Time, actor user.Principal) ([]*AppointmentListItem, error)
}

type AppointmentViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	List(ctx context.Context, filters ListFilters) ([]*AppointmentListItem, error)
	FindByStaffAndDay(ctx context.Context, staffID uuid.UUID, day time.Time) ([]*AppointmentListItem, error)
}

type appointmentQueriesImpl struct {
	repo AppointmentViewRepo
}

func NewAppointmentQueries(repo AppointmentViewRepo) AppointmentQueries {
	return &appointmentQueriesImpl{repo: repo}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actor user.Principal) (*AppointmentView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, shared.ErrNotFound)
		}
		return nil, errs.Mark(err, shared.ErrUnavailable)
	}
	if !actor.IsAdmin() && view.CustomerID != actor.ID {
		return nil, shared.ErrForbidden
	}
	return view, nil
}

// List silently narrows non-admin callers to their own appointments
// regardless of the filters they asked for.
func (q *appointmentQueriesImpl) List(ctx context.Context, filters ListFilters, actor user.Principal) ([]*AppointmentListItem, error) {
	if !actor.IsAdmin() {
		id := actor.ID
		filters.CustomerID = &id
	}
	filters.Limit = ValidateLimit(filters.Limit)
	if filters.Offset < 0 {
		filters.Offset = 0
	}

	items, err := q.repo.List(ctx, filters)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrUnavailable)
	}
	return items, nil
}

func (q *appointmentQueriesImpl) StaffSchedule(ctx context.Context, staffID uuid.UUID, day time.Time, actor user.Principal) ([]*AppointmentListItem, error) {
	if !actor.IsAdmin() {
		return nil, shared.ErrForbidden
	}

	items, err := q.repo.FindByStaffAndDay(ctx, staffID, day)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrUnavailable)
	}
	return items, nil
}
