package components

import (
	"household-services/internal/handler"
	"household-services/internal/handler/api"
	"household-services/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewServiceHandler,
		api.NewAnnouncementHandler,
		api.NewRealtimeHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
