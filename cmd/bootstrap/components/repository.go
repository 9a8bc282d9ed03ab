package components

import (
	"agrispray/internal/infra/docstore"
	"agrispray/internal/infra/repository"
	"agrispray/internal/usecase/commands"
	"agrispray/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		docstore.NewHub,
		NewDocumentStore,
		fx.Annotate(
			repository.NewRequestRepository,
			fx.As(new(commands.RequestRepository)),
			fx.As(new(queries.RequestReadRepo)),
			fx.As(new(queries.RequestWatchRepo)),
		),
		fx.Annotate(
			repository.NewAddressRepository,
			fx.As(new(commands.AddressRepository)),
			fx.As(new(queries.AddressReadRepo)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserWriteRepo)),
			fx.As(new(queries.UserReadRepo)),
		),
		fx.Annotate(
			repository.NewOtpRepository,
			fx.As(new(commands.OtpRepository)),
		),
	),
)

func NewDocumentStore(pool *pgxpool.Pool, hub *docstore.Hub) docstore.Store {
	return docstore.NewPostgresStore(pool, hub)
}
