package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"household-services/internal/domain/auth"
	"household-services/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var (
	ErrConnectionClosed = errors.New("connection closed")
	ErrSendBufferFull   = errors.New("send buffer full")
)

// Session is one authenticated websocket. Only writePump writes to the socket; everything
// else enqueues through Send.
type Session struct {
	id       string
	ws       *websocket.Conn
	identity auth.Identity
	registry *Registry
	cfg      config.RealtimeConfig
	logger   *slog.Logger

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func NewSession(ws *websocket.Conn, identity auth.Identity, registry *Registry, cfg config.RealtimeConfig, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	cfg = cfg.Normalized()
	id := uuid.NewString()
	return &Session{
		id:       id,
		ws:       ws,
		identity: identity,
		registry: registry,
		cfg:      cfg,
		logger:   logger.With("connection_id", id, "user_id", identity.Subject()),
		send:     make(chan []byte, cfg.SendBuffer),
		done:     make(chan struct{}),
	}
}

func (s *Session) ID() string {
	return s.id
}

// Send never blocks: a slow client loses the frame instead of stalling the dispatcher.
func (s *Session) Send(frame []byte) error {
	select {
	case <-s.done:
		return ErrConnectionClosed
	default:
	}

	select {
	case s.send <- frame:
		return nil
	case <-s.done:
		return ErrConnectionClosed
	default:
		return ErrSendBufferFull
	}
}

// Close unsubscribes exactly once, however many times and from wherever it is called.
// The socket itself is closed by writePump after it has sent the close frame.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
		s.registry.Unsubscribe(s.id)
		s.logger.Info("Realtime connection closed")
	})
	return nil
}

// Run blocks until the client goes away, the context ends or the registry shuts down.
func (s *Session) Run(ctx context.Context) {
	if err := s.registry.Attach(s); err != nil {
		s.logger.Warn("Realtime registry refused connection", "error", err.Error())
		_ = s.Close()
		_ = s.ws.Close()
		return
	}
	s.logger.Info("Realtime connection opened")

	go func() {
		select {
		case <-ctx.Done():
			_ = s.Close()
		case <-s.done:
		}
	}()
	go s.writePump()

	s.readPump()
	_ = s.Close()
}

func (s *Session) readPump() {
	if s.cfg.MaxMessageSize > 0 {
		s.ws.SetReadLimit(s.cfg.MaxMessageSize)
	}
	_ = s.ws.SetReadDeadline(time.Now().Add(s.cfg.PongWait))
	s.ws.SetPongHandler(func(string) error {
		return s.ws.SetReadDeadline(time.Now().Add(s.cfg.PongWait))
	})

	for {
		_, data, err := s.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("Realtime connection dropped", "error", err.Error())
			}
			return
		}
		s.handleMessage(data)
	}
}

func (s *Session) handleMessage(data []byte) {
	var in inboundFrame
	if err := json.Unmarshal(data, &in); err != nil {
		s.reply(controlFrame{Event: EventError, Message: "malformed message"})
		return
	}

	switch in.Event {
	case EventJoin, EventJoinLegacy:
		s.join(in.SubjectID)
	default:
		s.reply(controlFrame{Event: EventError, Message: "unsupported event"})
	}
}

// join only lets a client listen to its own subject.
func (s *Session) join(subjectID string) {
	if subjectID != s.identity.Subject() {
		s.logger.Warn("Realtime join refused", "requested_subject", subjectID)
		s.reply(controlFrame{Event: EventError, Message: "cannot join another user's channel"})
		return
	}

	if err := s.registry.Subscribe(subjectID, s); err != nil {
		s.logger.Warn("Realtime join failed", "error", err.Error())
		s.reply(controlFrame{Event: EventError, Message: "join failed"})
		return
	}

	// Close may have unsubscribed between the identity check and Subscribe.
	select {
	case <-s.done:
		s.registry.Unsubscribe(s.id)
		return
	default:
	}

	s.logger.Debug("Realtime subject joined")
	s.reply(controlFrame{Event: EventJoined, SubjectID: subjectID})
}

func (s *Session) reply(f controlFrame) {
	if err := s.Send(encodeControl(f)); err != nil {
		s.logger.Debug("Realtime reply dropped", "event", f.Event, "error", err.Error())
	}
}

func (s *Session) writePump() {
	ticker := time.NewTicker(s.cfg.PingPeriod())
	defer func() {
		ticker.Stop()
		_ = s.Close()
		_ = s.ws.Close()
	}()

	for {
		select {
		case frame := <-s.send:
			_ = s.ws.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
			if err := s.ws.WriteMessage(websocket.TextMessage, frame); err != nil {
				s.logger.Warn("Realtime write failed", "error", err.Error())
				return
			}
		case <-ticker.C:
			_ = s.ws.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
			if err := s.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-s.done:
			deadline := time.Now().Add(s.cfg.WriteTimeout)
			_ = s.ws.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
			return
		}
	}
}
