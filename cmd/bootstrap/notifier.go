package bootstrap

import (
	"context"
	"log/slog"

	"salon-booking/internal/infra/notify"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewNotifier,
	),
)

// NewNotifier wires the Kafka publisher when brokers are configured and
// falls back to log-only notifications otherwise.
func NewNotifier(lc fx.Lifecycle, cfg config.Config) commands.Notifier {
	brokers := cfg.Kafka.BrokerList()
	if len(brokers) == 0 {
		slog.Info("No Kafka brokers configured, booking events will be logged only")
		return notify.NewLogNotifier()
	}

	notifier := notify.NewKafkaNotifier(brokers, cfg.Kafka.Topic)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return notifier.Close()
		},
	})

	slog.Info("Kafka notifier initialized", "brokers", brokers, "topic", cfg.Kafka.Topic)
	return notifier
}
