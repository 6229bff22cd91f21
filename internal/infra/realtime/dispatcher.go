package realtime

import (
	"context"
	"fmt"
	"log/slog"

	"household-services/internal/domain/notification"
)

// Dispatcher delivers events at most once to whoever is connected right now.
type Dispatcher struct {
	registry *Registry
	logger   *slog.Logger
}

func NewDispatcher(registry *Registry, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		registry: registry,
		logger:   logger,
	}
}

// Dispatch returns once every resolved connection has been attempted. Failures on one
// connection are logged and never reach the caller or the other connections.
func (d *Dispatcher) Dispatch(ctx context.Context, event notification.Event) {
	if err := event.Validate(); err != nil {
		d.logger.WarnContext(ctx, "Dropping malformed notification", "error", err.Error())
		return
	}

	targets := d.registry.snapshot(event.Target)
	if len(targets) == 0 {
		d.logger.DebugContext(ctx, "No live connections for notification",
			"target", event.Target, "kind", event.Kind.String())
		return
	}

	frame, err := EncodeEvent(event)
	if err != nil {
		d.logger.ErrorContext(ctx, "Failed to encode notification",
			"target", event.Target, "kind", event.Kind.String(), "error", err.Error())
		return
	}

	failed := 0
	for _, conn := range targets {
		if err := deliver(conn, frame); err != nil {
			failed++
			d.logger.WarnContext(ctx, "Notification delivery failed",
				"target", event.Target,
				"kind", event.Kind.String(),
				"connection_id", conn.ID(),
				"error", err.Error(),
			)
		}
	}

	d.logger.DebugContext(ctx, "Notification dispatched",
		"target", event.Target,
		"kind", event.Kind.String(),
		"attempted", len(targets),
		"failed", failed,
	)
}

func deliver(conn Conn, frame []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during send: %v", r)
		}
	}()
	return conn.Send(frame)
}
