package components

import (
	"household-services/internal/infra/repository"
	"household-services/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.UserQueries)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		// Service
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.ServiceQueries)),
		),
		fx.Annotate(
			repository.NewServiceRepository,
			fx.As(new(usecase.ServiceRepository)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.BookingQueries)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
		),
	),
)
