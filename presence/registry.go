package presence

import (
	"log/slog"
	"sync"

	"github.com/hanksha/car-rental-booking-backend/metrics"
)

// Conn implementations must be comparable.
type Conn interface {
	ID() string
	Send(event string, payload any) error
	Close() error
}

type Registry struct {
	mu     sync.RWMutex
	byUser map[string]map[Conn]struct{}
	byConn map[Conn]string
	logger *slog.Logger
}

func NewRegistry() *Registry {
	return &Registry{
		byUser: make(map[string]map[Conn]struct{}),
		byConn: make(map[Conn]string),
		logger: slog.Default().With("component", "presence"),
	}
}

func (r *Registry) Authenticate(conn Conn, userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.byConn[conn]; ok {
		if current == userID {
			return
		}
		r.removeLocked(conn, current)
	}

	conns, ok := r.byUser[userID]
	if !ok {
		conns = make(map[Conn]struct{})
		r.byUser[userID] = conns
	}

	conns[conn] = struct{}{}
	r.byConn[conn] = userID
	metrics.LiveConnections.Set(float64(len(r.byConn)))
}

func (r *Registry) Disconnect(conn Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	userID, ok := r.byConn[conn]
	if !ok {
		return
	}

	r.removeLocked(conn, userID)
	metrics.LiveConnections.Set(float64(len(r.byConn)))
}

func (r *Registry) removeLocked(conn Conn, userID string) {
	delete(r.byConn, conn)

	conns := r.byUser[userID]
	delete(conns, conn)

	if len(conns) == 0 {
		delete(r.byUser, userID)
	}
}

// Emit returns how many sends succeeded.
func (r *Registry) Emit(userID, event string, payload any) int {
	r.mu.RLock()
	conns := make([]Conn, 0, len(r.byUser[userID]))
	for conn := range r.byUser[userID] {
		conns = append(conns, conn)
	}
	r.mu.RUnlock()

	delivered := 0

	for _, conn := range conns {
		if err := conn.Send(event, payload); err != nil {
			r.logger.Warn("live delivery failed", "user", userID, "conn", conn.ID(), "event", event, "err", err)
			continue
		}
		delivered++
	}

	return delivered
}

func (r *Registry) Online(userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byUser[userID]) > 0
}

func (r *Registry) Connections(userID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byUser[userID])
}

func (r *Registry) Close() {
	r.mu.Lock()
	conns := make([]Conn, 0, len(r.byConn))
	for conn := range r.byConn {
		conns = append(conns, conn)
	}
	r.byUser = make(map[string]map[Conn]struct{})
	r.byConn = make(map[Conn]string)
	metrics.LiveConnections.Set(0)
	r.mu.Unlock()

	for _, conn := range conns {
		if err := conn.Close(); err != nil {
			r.logger.Debug("failed to close connection", "conn", conn.ID(), "err", err)
		}
	}
}
