package response

import (
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentResponse struct {
	ID                 uuid.UUID  `json:"id"`
	CustomerID         uuid.UUID  `json:"customerId"`
	CustomerName       string     `json:"customerName,omitempty"`
	CustomerEmail      string     `json:"customerEmail,omitempty"`
	StaffID            uuid.UUID  `json:"staffId"`
	StaffName          string     `json:"staffName,omitempty"`
	StaffPosition      string     `json:"staffPosition,omitempty"`
	ServiceID          uuid.UUID  `json:"serviceId"`
	ServiceName        string     `json:"serviceName,omitempty"`
	StartsAt           time.Time  `json:"startsAt"`
	EndsAt             time.Time  `json:"endsAt"`
	DurationMinutes    int32      `json:"durationMinutes"`
	Status             string     `json:"status"`
	PriceCents         int64      `json:"priceCents"`
	Notes              string     `json:"notes,omitempty"`
	StaffNotes         string     `json:"staffNotes,omitempty"`
	CancellationReason string     `json:"cancellationReason,omitempty"`
	CompletedAt        *time.Time `json:"completedAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

type AppointmentListResponse struct {
	ID          uuid.UUID `json:"id"`
	CustomerID  uuid.UUID `json:"customerId"`
	StaffID     uuid.UUID `json:"staffId"`
	StaffName   string    `json:"staffName"`
	ServiceName string    `json:"serviceName"`
	StartsAt    time.Time `json:"startsAt"`
	EndsAt      time.Time `json:"endsAt"`
	Status      string    `json:"status"`
	PriceCents  int64     `json:"priceCents"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FromAppointment renders command results, which carry no joined names.
func FromAppointment(a *appointment.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                 a.ID(),
		CustomerID:         a.CustomerID(),
		StaffID:            a.StaffID(),
		ServiceID:          a.ServiceID(),
		StartsAt:           a.Slot().Start(),
		EndsAt:             a.Slot().End(),
		DurationMinutes:    int32(a.Slot().Duration().Minutes()),
		Status:             a.Status().String(),
		PriceCents:         a.Price().Cents(),
		Notes:              a.Notes().String(),
		StaffNotes:         a.StaffNotes().String(),
		CancellationReason: a.CancellationReason(),
		CompletedAt:        a.CompletedAt(),
		CreatedAt:          a.CreatedAt(),
		UpdatedAt:          a.UpdatedAt(),
	}
}

func FromAppointmentView(v *queries.AppointmentView) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                 v.ID,
		CustomerID:         v.CustomerID,
		CustomerName:       v.CustomerName,
		CustomerEmail:      v.CustomerEmail,
		StaffID:            v.StaffID,
		StaffName:          v.StaffName,
		StaffPosition:      v.StaffPosition,
		ServiceID:          v.ServiceID,
		ServiceName:        v.ServiceName,
		StartsAt:           v.StartsAt,
		EndsAt:             v.EndsAt,
		DurationMinutes:    v.DurationMinutes,
		Status:             v.Status,
		PriceCents:         v.PriceCents,
		Notes:              v.Notes,
		StaffNotes:         v.StaffNotes,
		CancellationReason: v.CancellationReason,
		CompletedAt:        v.CompletedAt,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

func FromAppointmentListItem(item *queries.AppointmentListItem) *AppointmentListResponse {
	return &AppointmentListResponse{
		ID:          item.ID,
		CustomerID:  item.CustomerID,
		StaffID:     item.StaffID,
		StaffName:   item.StaffName,
		ServiceName: item.ServiceName,
		StartsAt:    item.StartsAt,
		EndsAt:      item.EndsAt,
		Status:      item.Status,
		PriceCents:  item.PriceCents,
		CreatedAt:   item.CreatedAt,
	}
}

func FromAppointmentListItems(items []*queries.AppointmentListItem) []*AppointmentListResponse {
	responses := make([]*AppointmentListResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, FromAppointmentListItem(item))
	}
	return responses
}
