package request

import (
	"strings"
	"time"

	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

var (
	ErrInvalidDate       = errs.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidTime       = errs.New("time must be formatted as HH:MM")
	ErrInvalidCustomerID = errs.New("customer_id must be a valid UUID")
	ErrInvalidStaffID    = errs.New("staff_id must be a valid UUID")
)

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

func parseTimeOfDay(s string) (time.Duration, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return 0, ErrInvalidTime
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

type CreateAppointmentRequest struct {
	CustomerID uuid.UUID `json:"customer_id" binding:"required"`
	StaffID    uuid.UUID `json:"staff_id" binding:"required"`
	ServiceID  uuid.UUID `json:"service_id" binding:"required"`
	Date       string    `json:"date" binding:"required"`
	Time       string    `json:"time" binding:"required"`
	Notes      *string   `json:"notes,omitempty"`
}

func (r CreateAppointmentRequest) ToInput() (commands.CreateAppointmentInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return commands.CreateAppointmentInput{}, err
	}
	timeOfDay, err := parseTimeOfDay(r.Time)
	if err != nil {
		return commands.CreateAppointmentInput{}, err
	}

	notes := ""
	if r.Notes != nil {
		notes = strings.TrimSpace(*r.Notes)
	}

	return commands.CreateAppointmentInput{
		CustomerID: r.CustomerID,
		StaffID:    r.StaffID,
		ServiceID:  r.ServiceID,
		Date:       date,
		TimeOfDay:  timeOfDay,
		Notes:      notes,
	}, nil
}

type UpdateAppointmentRequest struct {
	Date       *string `json:"date,omitempty"`
	Time       *string `json:"time,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	StaffNotes *string `json:"staff_notes,omitempty"`
	Status     *string `json:"status,omitempty"`
}

func (r UpdateAppointmentRequest) ToInput() (commands.UpdateAppointmentInput, error) {
	var input commands.UpdateAppointmentInput

	if r.Date != nil {
		date, err := parseDate(*r.Date)
		if err != nil {
			return commands.UpdateAppointmentInput{}, err
		}
		input.Date = &date
	}
	if r.Time != nil {
		timeOfDay, err := parseTimeOfDay(*r.Time)
		if err != nil {
			return commands.UpdateAppointmentInput{}, err
		}
		input.TimeOfDay = &timeOfDay
	}
	input.Notes = r.Notes
	input.StaffNotes = r.StaffNotes
	input.Status = r.Status

	return input, nil
}

type CancelAppointmentRequest struct {
	Reason *string `json:"reason,omitempty"`
}

func (r CancelAppointmentRequest) GetReason() string {
	if r.Reason == nil {
		return ""
	}
	return strings.TrimSpace(*r.Reason)
}

// The id filters bind as strings: gin's form mapper cannot set a
// uuid.UUID, so parsing happens in ToFilters like the dates.
type ListAppointmentsQuery struct {
	CustomerID *string `form:"customer_id"`
	StaffID    *string `form:"staff_id"`
	Status     *string `form:"status"`
	From       *string `form:"from"`
	To         *string `form:"to"`
	Limit      int32   `form:"limit"`
	Offset     int32   `form:"offset"`
}

func parseOptionalID(s *string, invalidErr error) (*uuid.UUID, error) {
	if s == nil {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, invalidErr
	}
	return &id, nil
}

func (q ListAppointmentsQuery) ToFilters() (queries.ListFilters, error) {
	filters := queries.ListFilters{
		Status: q.Status,
		Limit:  q.Limit,
		Offset: q.Offset,
	}

	customerID, err := parseOptionalID(q.CustomerID, ErrInvalidCustomerID)
	if err != nil {
		return queries.ListFilters{}, err
	}
	filters.CustomerID = customerID

	staffID, err := parseOptionalID(q.StaffID, ErrInvalidStaffID)
	if err != nil {
		return queries.ListFilters{}, err
	}
	filters.StaffID = staffID

	if q.From != nil {
		from, err := parseDate(*q.From)
		if err != nil {
			return queries.ListFilters{}, err
		}
		filters.From = &from
	}
	if q.To != nil {
		to, err := parseDate(*q.To)
		if err != nil {
			return queries.ListFilters{}, err
		}
		// Inclusive end date: cover the whole day.
		end := to.Add(24 * time.Hour)
		filters.To = &end
	}

	return filters, nil
}
