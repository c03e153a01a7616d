package components

import (
	"rental-marketplace/internal/infra/readstore"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/infra/uow"
	"rental-marketplace/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Property
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PropertyReadQueries)),
		),
		fx.Annotate(
			readstore.NewPropertyReadStore,
			fx.As(new(queries.PropertyReadStore)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Payment
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PaymentReadQueries)),
		),
		fx.Annotate(
			readstore.NewPaymentReadStore,
			fx.As(new(queries.PaymentReadStore)),
		),
		// Review
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReviewReadQueries)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
	),
)

// Repositories are built per transaction by the unit of work.
var unitOfWorkModule = fx.Module("persistence/uow",
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
