package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// session binds an opaque client-presented token to a user id. Only the id
// is stored; the full principal is re-fetched from the store on every
// request.
type session struct {
	userID    int
	createdAt time.Time
}

// SessionManager owns the server-side session records. Sessions expire
// after a fixed TTL and are removed by a periodic sweep, independently of
// explicit logout. State is per-process; there is no cross-instance
// sharing.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]session
	ttl      time.Duration
	logger   *zap.Logger

	sweepStop chan struct{}
	sweepOnce sync.Once
}

// NewSessionManager builds a manager with the given session TTL.
func NewSessionManager(ttl time.Duration, logger *zap.Logger) *SessionManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionManager{
		sessions:  make(map[string]session),
		ttl:       ttl,
		logger:    logger,
		sweepStop: make(chan struct{}),
	}
}

// Create records a session for the user and returns the opaque token the
// client presents on subsequent requests.
func (m *SessionManager) Create(userID int) string {
	token := uuid.NewString()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[token] = session{userID: userID, createdAt: time.Now()}
	return token
}

// Resolve returns the user id bound to the token. Unknown and expired
// tokens resolve to anonymous (ok=false), never an error.
func (m *SessionManager) Resolve(token string) (int, bool) {
	if token == "" {
		return 0, false
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[token]
	if !ok {
		return 0, false
	}
	if time.Since(sess.createdAt) > m.ttl {
		delete(m.sessions, token)
		return 0, false
	}
	return sess.userID, true
}

// Destroy clears the session binding. Destroying an unknown or already
// cleared token is not an error; logout is idempotent.
func (m *SessionManager) Destroy(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}

// Sweep removes sessions older than the TTL and returns how many were
// pruned.
func (m *SessionManager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	pruned := 0
	for token, sess := range m.sessions {
		if time.Since(sess.createdAt) > m.ttl {
			delete(m.sessions, token)
			pruned++
		}
	}
	return pruned
}

// StartSweeper prunes expired sessions every interval until Stop is called.
func (m *SessionManager) StartSweeper(interval time.Duration) {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				pruned := m.Sweep()
				if pruned > 0 && m.logger != nil {
					m.logger.Info("expired sessions pruned", zap.Int("count", pruned))
				}
			case <-m.sweepStop:
				return
			}
		}
	}()
}

// Stop terminates the sweeper goroutine.
func (m *SessionManager) Stop() {
	m.sweepOnce.Do(func() { close(m.sweepStop) })
}

// Len reports the number of live session records.
func (m *SessionManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
