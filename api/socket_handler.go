package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/hanksha/car-rental-booking-backend/presence"
)

const (
	eventAuthenticate  = "authenticate"
	eventAuthenticated = "authenticated"
	eventConnected     = "connected"
	eventError         = "error"
	eventPing          = "ping"
	eventPong          = "pong"
)

type PresenceRegistry interface {
	Authenticate(conn presence.Conn, userID string)
	Disconnect(conn presence.Conn)
}

type SocketHandler struct {
	registry PresenceRegistry
	verifier *TokenVerifier
	upgrader websocket.Upgrader
	pongWait time.Duration
	logger   *slog.Logger
}

// A zero pongWait means presence.DefaultPongWait.
func NewSocketHandler(registry PresenceRegistry, verifier *TokenVerifier, pongWait time.Duration) *SocketHandler {
	return &SocketHandler{
		registry: registry,
		verifier: verifier,
		pongWait: pongWait,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		logger: slog.Default().With("component", "socket"),
	}
}

func (h *SocketHandler) Register(r gin.IRoutes) {
	r.GET("/ws", h.Serve)
}

func (h *SocketHandler) Serve(c *gin.Context) {
	raw, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)

	if err != nil {
		h.logger.Warn("websocket upgrade failed", "err", err)
		return
	}

	conn := presence.NewWSConn(raw, h.pongWait)
	done := make(chan struct{})

	defer func() {
		close(done)
		h.registry.Disconnect(conn)
		conn.Close()
	}()

	go h.keepAlive(conn, done)

	if err := conn.Send(eventConnected, gin.H{"requiresAuth": true}); err != nil {
		return
	}

	for {
		frame, err := conn.ReadFrame()

		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("socket closed", "conn", conn.ID(), "err", err)
			}
			return
		}

		switch frame.Event {
		case eventAuthenticate:
			user, err := h.verifier.Verify(frame.Token)

			if err != nil {
				h.logger.Info("socket authentication rejected", "conn", conn.ID(), "err", err)
				conn.Send(eventError, gin.H{"error": "invalid authentication"})
				continue
			}

			h.registry.Authenticate(conn, user.ID)
			conn.Send(eventAuthenticated, gin.H{"userId": user.ID})
		case eventPing:
			conn.Send(eventPong, nil)
		default:
			conn.Send(eventError, gin.H{"error": "unknown event"})
		}
	}
}

func (h *SocketHandler) keepAlive(conn *presence.WSConn, done <-chan struct{}) {
	ticker := time.NewTicker(conn.PingPeriod())
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.Ping(); err != nil {
				h.logger.Debug("socket ping failed", "conn", conn.ID(), "err", err)
				return
			}
		}
	}
}
