package components

import (
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/usecase"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewAppointmentCommands,
		queries.NewAppointmentQueries,
		usecase.NewTokenValidator,
	),
)
