//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.AppointmentBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewAppointmentBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestAppointment(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewAppointmentBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, appointment.StatusPending, actual.Status())
		assert.False(t, actual.CreatedAt().IsZero())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
		assert.Nil(t, actual.CompletedAt())
		assert.Equal(t, int64(450000), actual.Price().Cents())
		assert.Equal(t, "First visit", actual.Notes().String())
		assert.Equal(t, 60*time.Minute, actual.Slot().Duration())
	})

	t.Run("slot validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "date before today",
				mutate: func(b *builder.AppointmentBuilder) {
					b.WithDate(b.Now.AddDate(0, 0, -1))
				},
				errIs: appointment.ErrDateInPast,
			},
			{
				name: "same day booking is allowed",
				mutate: func(b *builder.AppointmentBuilder) {
					b.WithDate(b.Now)
				},
			},
			{
				name: "negative time of day",
				mutate: func(b *builder.AppointmentBuilder) {
					b.WithTimeOfDay(-time.Hour)
				},
				errIs: appointment.ErrInvalidTimeOfDay,
			},
			{
				name: "time of day past midnight",
				mutate: func(b *builder.AppointmentBuilder) {
					b.WithTimeOfDay(24 * time.Hour)
				},
				errIs: appointment.ErrInvalidTimeOfDay,
			},
			{
				name: "last bookable minute of the day",
				mutate: func(b *builder.AppointmentBuilder) {
					b.WithTimeOfDay(23*time.Hour + 59*time.Minute)
				},
			},
			{
				name: "zero duration",
				mutate: func(b *builder.AppointmentBuilder) {
					b.WithDurationMinutes(0)
				},
				errIs: appointment.ErrInvalidDuration,
			},
			{
				name: "negative duration",
				mutate: func(b *builder.AppointmentBuilder) {
					b.WithDurationMinutes(-30)
				},
				errIs: appointment.ErrInvalidDuration,
			},
		})
	})

	t.Run("notes validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "maximum length notes",
				mutate: func(b *builder.AppointmentBuilder) {
					long := make([]byte, appointment.MaxNotesLength)
					for i := range long {
						long[i] = 'a'
					}
					b.WithNotes(string(long))
				},
			},
			{
				name: "notes exceed maximum length",
				mutate: func(b *builder.AppointmentBuilder) {
					long := make([]byte, appointment.MaxNotesLength+1)
					for i := range long {
						long[i] = 'a'
					}
					b.WithNotes(string(long))
				},
				errIs: appointment.ErrNotesTooLong,
			},
			{
				name: "empty notes",
				mutate: func(b *builder.AppointmentBuilder) {
					b.WithNotes("")
				},
			},
		})
	})

	t.Run("price validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "free service",
				mutate: func(b *builder.AppointmentBuilder) {
					b.WithPriceCents(0)
				},
			},
			{
				name: "negative price",
				mutate: func(b *builder.AppointmentBuilder) {
					b.WithPriceCents(-100)
				},
				errIs: appointment.ErrNegativePrice,
			},
		})
	})

	t.Run("notes trimming", func(t *testing.T) {
		actual, err := builder.NewAppointmentBuilder().WithNotes("  trimmed note  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "trimmed note", actual.Notes().String())
	})
}

func TestAppointmentTransitions(t *testing.T) {
	allStatuses := []appointment.Status{
		appointment.StatusPending,
		appointment.StatusConfirmed,
		appointment.StatusCompleted,
		appointment.StatusCancelled,
		appointment.StatusNoShow,
	}

	allowed := map[appointment.Status][]appointment.Status{
		appointment.StatusPending:   {appointment.StatusConfirmed, appointment.StatusCancelled, appointment.StatusNoShow},
		appointment.StatusConfirmed: {appointment.StatusCompleted, appointment.StatusCancelled, appointment.StatusNoShow},
		appointment.StatusCompleted: {},
		appointment.StatusCancelled: {},
		appointment.StatusNoShow:    {},
	}

	isAllowed := func(from, to appointment.Status) bool {
		for _, s := range allowed[from] {
			if s == to {
				return true
			}
		}
		return false
	}

	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			t.Run(from.String()+" to "+to.String(), func(t *testing.T) {
				appt := builder.NewAppointmentBuilder().BuildDomainWithStatus(from)
				err := appt.TransitionTo(to, now)

				if isAllowed(from, to) {
					require.NoError(t, err)
					assert.Equal(t, to, appt.Status())
					return
				}
				require.ErrorIs(t, err, appointment.ErrInvalidTransition)
				assert.Equal(t, from, appt.Status())
			})
		}
	}

	t.Run("completion stamps completed_at", func(t *testing.T) {
		appt := builder.NewAppointmentBuilder().BuildDomainWithStatus(appointment.StatusConfirmed)
		require.Nil(t, appt.CompletedAt())

		require.NoError(t, appt.TransitionTo(appointment.StatusCompleted, now))
		require.NotNil(t, appt.CompletedAt())
		assert.Equal(t, now, *appt.CompletedAt())
		assert.Equal(t, now, appt.UpdatedAt())
	})

	t.Run("cancellation records reason", func(t *testing.T) {
		appt := builder.NewAppointmentBuilder().BuildDomainWithStatus(appointment.StatusPending)

		require.NoError(t, appt.Cancel("customer request", now))
		assert.Equal(t, appointment.StatusCancelled, appt.Status())
		assert.Equal(t, "customer request", appt.CancellationReason())
	})

	t.Run("cancelling a completed appointment fails", func(t *testing.T) {
		appt := builder.NewAppointmentBuilder().BuildDomainWithStatus(appointment.StatusCompleted)

		err := appt.Cancel("too late", now)
		require.ErrorIs(t, err, appointment.ErrInvalidTransition)
		assert.Empty(t, appt.CancellationReason())
	})
}

func TestAppointmentReschedule(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	t.Run("moves the slot and keeps the duration", func(t *testing.T) {
		appt := builder.NewAppointmentBuilder().BuildDomainWithStatus(appointment.StatusPending)
		originalDuration := appt.Slot().Duration()

		newSlot, err := appointment.NewSlotOn(now.AddDate(0, 0, 3), 14*time.Hour, originalDuration)
		require.NoError(t, err)

		require.NoError(t, appt.Reschedule(newSlot, now))
		assert.Equal(t, newSlot.Start(), appt.Slot().Start())
		assert.Equal(t, originalDuration, appt.Slot().Duration())
		assert.Equal(t, now, appt.UpdatedAt())
	})

	t.Run("terminal appointments cannot be rescheduled", func(t *testing.T) {
		for _, status := range []appointment.Status{
			appointment.StatusCompleted,
			appointment.StatusCancelled,
			appointment.StatusNoShow,
		} {
			appt := builder.NewAppointmentBuilder().BuildDomainWithStatus(status)
			newSlot, err := appointment.NewSlotOn(now.AddDate(0, 0, 3), 14*time.Hour, time.Hour)
			require.NoError(t, err)

			err = appt.Reschedule(newSlot, now)
			require.ErrorIs(t, err, appointment.ErrTerminalStatus, "status %s", status)
		}
	})

	t.Run("rescheduling into the past fails", func(t *testing.T) {
		appt := builder.NewAppointmentBuilder().BuildDomainWithStatus(appointment.StatusPending)
		pastSlot, err := appointment.NewSlotOn(now.AddDate(0, 0, -2), 10*time.Hour, time.Hour)
		require.NoError(t, err)

		err = appt.Reschedule(pastSlot, now)
		require.ErrorIs(t, err, appointment.ErrDateInPast)
	})
}

func TestSlotOverlaps(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	slotAt := func(timeOfDay time.Duration, duration time.Duration) appointment.Slot {
		s, err := appointment.NewSlotOn(day, timeOfDay, duration)
		require.NoError(t, err)
		return s
	}

	base := slotAt(10*time.Hour, time.Hour)

	cases := []struct {
		name     string
		other    appointment.Slot
		overlaps bool
	}{
		{"identical slot", slotAt(10*time.Hour, time.Hour), true},
		{"contained slot", slotAt(10*time.Hour+15*time.Minute, 30*time.Minute), true},
		{"partial overlap at start", slotAt(9*time.Hour+30*time.Minute, time.Hour), true},
		{"partial overlap at end", slotAt(10*time.Hour+30*time.Minute, time.Hour), true},
		{"back to back before", slotAt(9*time.Hour, time.Hour), false},
		{"back to back after", slotAt(11*time.Hour, time.Hour), false},
		{"disjoint", slotAt(15*time.Hour, time.Hour), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, base.Overlaps(tc.other))
			assert.Equal(t, tc.overlaps, tc.other.Overlaps(base))
		})
	}
}

func TestStatusParsing(t *testing.T) {
	for _, valid := range []string{"pending", "confirmed", "completed", "cancelled", "no-show"} {
		status, err := appointment.NewStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, status.String())
	}

	for _, invalid := range []string{"", "unknown", "PENDING", "noshow"} {
		_, err := appointment.NewStatus(invalid)
		require.ErrorIs(t, err, appointment.ErrInvalidStatus, "input %q", invalid)
	}
}
