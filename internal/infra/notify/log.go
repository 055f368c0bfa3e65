package notify

import (
	"context"
	"log/slog"

	"salon-booking/internal/usecase/commands"
)

// LogNotifier is the no-broker fallback: it records events in the
// application log and always succeeds.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Publish(_ context.Context, event commands.Event) error {
	slog.Info("booking event",
		"event_id", event.ID,
		"event_type", event.Type,
		"appointment_id", event.AppointmentID,
		"status", event.Status,
	)
	return nil
}
