package components

import (
	"household-services/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseAuthModule,
	usecaseCommandsModule,
)

var usecaseAuthModule = fx.Module("usecase/auth",
	fx.Provide(
		usecase.NewCredentialVerifier,
		usecase.NewRoleGate,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		usecase.NewBookingUseCase,
		usecase.NewServiceUseCase,
		usecase.NewAnnouncementUseCase,
	),
)
