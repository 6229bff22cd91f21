package api

import (
	"log/slog"
	"net/http"

	"household-services/internal/handler/httperr"
	"household-services/internal/handler/middleware"
	"household-services/internal/infra/realtime"
	"household-services/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type RealtimeHandler struct {
	registry *realtime.Registry
	upgrader websocket.Upgrader
	cfg      config.RealtimeConfig
	logger   *slog.Logger
}

func NewRealtimeHandler(registry *realtime.Registry, cfg config.Config, logger *slog.Logger) *RealtimeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RealtimeHandler{
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     middleware.NewOriginChecker(cfg.CORS),
		},
		cfg:    cfg.Realtime,
		logger: logger,
	}
}

// @Summary Realtime channel
// @Description Upgrade to a websocket. Send {"event":"join","subjectId":"<your user id>"} to receive notifications.
// @Tags realtime
// @Security BearerAuth
// @Param access_token query string false "Credential for clients that cannot set headers"
// @Success 101
// @Failure 401 {object} httperr.Response
// @Router /ws [get]
func (h *RealtimeHandler) Connect(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	ws, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		h.logger.Warn("Websocket upgrade failed",
			"request_id", middleware.GetRequestID(c),
			"error", err.Error())
		return
	}

	session := realtime.NewSession(ws, identity, h.registry, h.cfg, h.logger)
	session.Run(c.Request.Context())
}
