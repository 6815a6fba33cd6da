package components

import (
	"reservation-engine/internal/infra/cache"
	"reservation-engine/internal/infra/readstore"
	sqlc "reservation-engine/internal/infra/sqlc/generated"
	"reservation-engine/internal/infra/uow"
	"reservation-engine/internal/pkg/config"
	"reservation-engine/internal/pkg/metrics"
	"reservation-engine/internal/usecase/queries"
	"reservation-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	cacheModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Cart
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CartViewQueries)),
		),
		fx.Annotate(
			readstore.NewCartReadStore,
			fx.As(new(queries.CartReadStore)),
		),
		// Order
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OrderViewQueries)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Participation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ParticipationViewQueries)),
		),
		fx.Annotate(
			readstore.NewParticipationReadStore,
			fx.As(new(queries.ParticipationReadStore)),
		),
		// Availability: the uncached store is only consumed by the cache below
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AvailabilityQueries)),
		),
		readstore.NewAvailabilityReadStore,
	),
)

var cacheModule = fx.Module("persistence/cache",
	fx.Provide(
		fx.Annotate(
			NewAvailabilityCache,
			fx.As(new(queries.AvailabilityReadStore)),
			fx.As(new(shared.AvailabilityInvalidator)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewAvailabilityCache(store *readstore.AvailabilityReadStore, client *redis.Client, cfg config.Config, m *metrics.Metrics) *cache.AvailabilityCache {
	return cache.NewAvailabilityCache(store, client, cfg.Redis.CacheTTL, m)
}
