package appointment

import (
	"fmt"
	"strings"
	"time"
)

const MaxNotesLength = 500

// Slot is the half-open interval [start, start+duration) occupied by one
// appointment for one staff member.
type Slot struct {
	start time.Time
	end   time.Time
}

func NewSlot(start time.Time, duration time.Duration) (Slot, error) {
	if duration <= 0 {
		return Slot{}, ErrInvalidDuration
	}
	return Slot{start: start, end: start.Add(duration)}, nil
}

// NewSlotOn builds a slot from the booking date, the time of day and the
// service duration, all interpreted in UTC.
func NewSlotOn(date time.Time, timeOfDay time.Duration, duration time.Duration) (Slot, error) {
	if timeOfDay < 0 || timeOfDay >= 24*time.Hour {
		return Slot{}, ErrInvalidTimeOfDay
	}
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return NewSlot(day.Add(timeOfDay), duration)
}

func (s Slot) Start() time.Time {
	return s.start
}

func (s Slot) End() time.Time {
	return s.end
}

func (s Slot) Duration() time.Duration {
	return s.end.Sub(s.start)
}

func (s Slot) Date() time.Time {
	return time.Date(s.start.Year(), s.start.Month(), s.start.Day(), 0, 0, 0, 0, time.UTC)
}

// TimeOfDay is the offset of the slot start from midnight UTC.
func (s Slot) TimeOfDay() time.Duration {
	return s.start.Sub(s.Date())
}

// Overlaps is the half-open interval test: adjacent slots do not overlap.
func (s Slot) Overlaps(other Slot) bool {
	return s.start.Before(other.end) && other.start.Before(s.end)
}

// ValidateNotPastAt rejects slots whose date is strictly before the current
// date. Same-day bookings are allowed regardless of time of day.
func (s Slot) ValidateNotPastAt(now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if s.Date().Before(today) {
		return ErrDateInPast
	}
	return nil
}

func (s Slot) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", s.start.Format(time.RFC3339), s.end.Format(time.RFC3339))
}

type Notes struct {
	value string
}

func NewNotes(value string) (Notes, error) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) > MaxNotesLength {
		return Notes{}, ErrNotesTooLong
	}
	return Notes{value: trimmed}, nil
}

func (n Notes) String() string {
	return n.value
}

func (n Notes) IsEmpty() bool {
	return n.value == ""
}

// Money is the price snapshot captured from the catalog at creation time.
// It is never recomputed after that.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}
