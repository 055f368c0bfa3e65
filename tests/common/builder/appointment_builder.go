//go:build unit || e2e

package builder

import (
	"time"

	domappt "salon-booking/internal/domain/appointment"
	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	CustomerID      uuid.UUID
	CustomerName    string
	CustomerEmail   string
	StaffID         uuid.UUID
	StaffName       string
	ServiceID       uuid.UUID
	ServiceName     string
	Date            time.Time
	TimeOfDay       time.Duration
	DurationMinutes int
	Status          domappt.Status
	PriceCents      int64
	Notes           string
	Now             time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return &AppointmentBuilder{
		CustomerID:      uuid.New(),
		CustomerName:    "Taro Yamada",
		CustomerEmail:   "customer@example.com",
		StaffID:         uuid.New(),
		StaffName:       "Hanako Suzuki",
		ServiceID:       uuid.New(),
		ServiceName:     "Cut & Blow Dry",
		Date:            now.AddDate(0, 0, 7),
		TimeOfDay:       10 * time.Hour,
		DurationMinutes: 60,
		Status:          domappt.StatusPending,
		PriceCents:      450000,
		Notes:           "First visit",
		Now:             now,
	}
}

// Build methods

func (b *AppointmentBuilder) BuildSlot() (domappt.Slot, error) {
	return domappt.NewSlotOn(b.Date, b.TimeOfDay, time.Duration(b.DurationMinutes)*time.Minute)
}

func (b *AppointmentBuilder) BuildDomain() (*domappt.Appointment, error) {
	slot, err := b.BuildSlot()
	if err != nil {
		return nil, err
	}
	price, err := domappt.NewMoney(b.PriceCents)
	if err != nil {
		return nil, err
	}
	notes, err := domappt.NewNotes(b.Notes)
	if err != nil {
		return nil, err
	}
	return domappt.New(b.CustomerID, b.StaffID, b.ServiceID, slot, price, notes, b.Now)
}

// BuildDomainWithStatus reconstructs a persisted appointment in the given
// status, bypassing creation-time validation like the domain layer does
// when loading rows.
func (b *AppointmentBuilder) BuildDomainWithStatus(status domappt.Status) *domappt.Appointment {
	slot, _ := b.BuildSlot()
	price, _ := domappt.NewMoney(b.PriceCents)
	notes, _ := domappt.NewNotes(b.Notes)
	return domappt.Reconstruct(
		uuid.New(), b.CustomerID, b.StaffID, b.ServiceID,
		slot, status, price, notes, domappt.Notes{}, "", nil, b.Now, b.Now,
	)
}

func (b *AppointmentBuilder) BuildCreateInput() commands.CreateAppointmentInput {
	return commands.CreateAppointmentInput{
		CustomerID: b.CustomerID,
		StaffID:    b.StaffID,
		ServiceID:  b.ServiceID,
		Date:       b.Date,
		TimeOfDay:  b.TimeOfDay,
		Notes:      b.Notes,
	}
}

func (b *AppointmentBuilder) BuildCreateRequestDTO() reqdto.CreateAppointmentRequest {
	notes := b.Notes
	return reqdto.CreateAppointmentRequest{
		CustomerID: b.CustomerID,
		StaffID:    b.StaffID,
		ServiceID:  b.ServiceID,
		Date:       b.Date.Format("2006-01-02"),
		Time:       time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC).Add(b.TimeOfDay).Format("15:04"),
		Notes:      &notes,
	}
}

func (b *AppointmentBuilder) BuildServiceSnapshot() *commands.ServiceSnapshot {
	return &commands.ServiceSnapshot{
		ID:              b.ServiceID,
		Name:            b.ServiceName,
		PriceCents:      b.PriceCents,
		DurationMinutes: b.DurationMinutes,
		Active:          true,
	}
}

func (b *AppointmentBuilder) BuildStaffSnapshot() *commands.StaffSnapshot {
	return &commands.StaffSnapshot{ID: b.StaffID, Active: true}
}

func (b *AppointmentBuilder) BuildCustomerSnapshot() *commands.CustomerSnapshot {
	return &commands.CustomerSnapshot{ID: b.CustomerID, Active: true}
}

func (b *AppointmentBuilder) BuildView() *queries.AppointmentView {
	slot, _ := b.BuildSlot()
	return &queries.AppointmentView{
		ID:              uuid.New(),
		CustomerID:      b.CustomerID,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		StaffID:         b.StaffID,
		StaffName:       b.StaffName,
		ServiceID:       b.ServiceID,
		ServiceName:     b.ServiceName,
		StartsAt:        slot.Start(),
		EndsAt:          slot.End(),
		DurationMinutes: int32(b.DurationMinutes),
		Status:          b.Status.String(),
		PriceCents:      b.PriceCents,
		Notes:           b.Notes,
		CreatedAt:       b.Now,
		UpdatedAt:       b.Now,
	}
}

func (b *AppointmentBuilder) BuildListItem() *queries.AppointmentListItem {
	slot, _ := b.BuildSlot()
	return &queries.AppointmentListItem{
		ID:          uuid.New(),
		CustomerID:  b.CustomerID,
		StaffID:     b.StaffID,
		StaffName:   b.StaffName,
		ServiceName: b.ServiceName,
		StartsAt:    slot.Start(),
		EndsAt:      slot.End(),
		Status:      b.Status.String(),
		PriceCents:  b.PriceCents,
		CreatedAt:   b.Now,
	}
}

// Fluent builder methods

func (b *AppointmentBuilder) WithCustomerID(id uuid.UUID) *AppointmentBuilder {
	b.CustomerID = id
	return b
}

func (b *AppointmentBuilder) WithStaffID(id uuid.UUID) *AppointmentBuilder {
	b.StaffID = id
	return b
}

func (b *AppointmentBuilder) WithServiceID(id uuid.UUID) *AppointmentBuilder {
	b.ServiceID = id
	return b
}

func (b *AppointmentBuilder) WithDate(date time.Time) *AppointmentBuilder {
	b.Date = date
	return b
}

func (b *AppointmentBuilder) WithTimeOfDay(timeOfDay time.Duration) *AppointmentBuilder {
	b.TimeOfDay = timeOfDay
	return b
}

func (b *AppointmentBuilder) WithDurationMinutes(minutes int) *AppointmentBuilder {
	b.DurationMinutes = minutes
	return b
}

func (b *AppointmentBuilder) WithStatus(status domappt.Status) *AppointmentBuilder {
	b.Status = status
	return b
}

func (b *AppointmentBuilder) WithPriceCents(cents int64) *AppointmentBuilder {
	b.PriceCents = cents
	return b
}

func (b *AppointmentBuilder) WithNotes(notes string) *AppointmentBuilder {
	b.Notes = notes
	return b
}

func (b *AppointmentBuilder) WithNow(now time.Time) *AppointmentBuilder {
	b.Now = now
	return b
}
