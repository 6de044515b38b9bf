package sessions

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is the server-held proof of authentication behind one cookie
// token.
type Session struct {
	Token     string
	UserId    int64
	Username  string
	ExpiresAt time.Time
}

type Store interface {
	Create(userId int64, username string) (Session, error)
	Get(token string) (Session, bool)
	Delete(token string) error
}

// MemoryStore keeps sessions in process memory. Expired entries are
// dropped lazily on lookup.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	ttl      time.Duration
	now      func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (m *MemoryStore) Create(userId int64, username string) (Session, error) {
	session := Session{
		Token:     uuid.NewString(),
		UserId:    userId,
		Username:  username,
		ExpiresAt: m.now().Add(m.ttl),
	}

	m.mu.Lock()
	m.sessions[session.Token] = session
	m.mu.Unlock()
	return session, nil
}

func (m *MemoryStore) Get(token string) (Session, bool) {
	m.mu.RLock()
	session, ok := m.sessions[token]
	m.mu.RUnlock()
	if !ok {
		return Session{}, false
	}

	if m.now().After(session.ExpiresAt) {
		m.mu.Lock()
		delete(m.sessions, token)
		m.mu.Unlock()
		return Session{}, false
	}
	return session, true
}

func (m *MemoryStore) Delete(token string) error {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
	return nil
}
