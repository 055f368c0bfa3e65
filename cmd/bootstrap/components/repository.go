package components

import (
	"context"

	"salon-booking/internal/infra/readstore"
	"salon-booking/internal/infra/writerepo"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			writerepo.NewAppointmentRepository,
			fx.As(new(commands.AppointmentRepository)),
		),
		fx.Annotate(
			readstore.NewStaffDirectory,
			fx.As(new(commands.StaffDirectory)),
		),
		fx.Annotate(
			readstore.NewCustomerDirectory,
			fx.As(new(commands.IdentityProvider)),
		),
		fx.Annotate(
			readstore.NewAppointmentViewRepo,
			fx.As(new(queries.AppointmentViewRepo)),
		),
		NewCatalogProvider,
	),
)

// NewCatalogProvider layers the Redis read cache over the database
// catalog when a cache address is configured.
func NewCatalogProvider(lc fx.Lifecycle, pool *pgxpool.Pool, cfg config.Config) commands.CatalogProvider {
	catalog := readstore.NewServiceCatalog(pool)
	if cfg.Redis.Addr == "" {
		return catalog
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
	})
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	return readstore.NewCachedServiceCatalog(catalog, rdb, cfg.Redis.CacheTTL)
}
