package bootstrap

import (
	"log/slog"

	"household-services/internal/pkg/clock"
	"household-services/internal/pkg/config"
	"household-services/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTVerifier,
	),
)

// NewJWTVerifier starts even without a secret so the failure is visible per request
// as a server configuration error rather than as a crash loop.
func NewJWTVerifier(cfg config.Config, clk clock.Clock, logger *slog.Logger) *jwt.Verifier {
	verifier := jwt.NewVerifier(cfg.JWT.Secret, cfg.JWT.Leeway, clk)
	if !verifier.Configured() {
		logger.Error("JWT_SECRET is not set; every authenticated request will fail",
			"kind", "server_misconfigured")
	}
	return verifier
}
