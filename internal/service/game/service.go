package game

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/iamasit07/power-connect-four/internal/domain"
	"github.com/iamasit07/power-connect-four/pkg/uid"
)

// SessionManager manages active game sessions
type SessionManager struct {
	Session  map[string]*Session // gameID → Session
	mu       sync.RWMutex
	logMoves bool
	now      func() time.Time
}

func NewSessionManager(logMoves bool) *SessionManager {
	return &SessionManager{
		Session:  make(map[string]*Session),
		logMoves: logMoves,
		now:      time.Now,
	}
}

func (sm *SessionManager) CreateSession() *Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	session := newSession(uid.GenerateGameID(), sm.logMoves, sm.now)
	sm.Session[session.GameID] = session

	log.Printf("[SESSION] Created session %s", session.GameID)
	return session
}

func (sm *SessionManager) GetSession(gameID string) (*Session, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.Session[gameID]
	return session, exists
}

func (sm *SessionManager) RemoveSession(gameID string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.Session[gameID]; !exists {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, gameID)
	}

	log.Printf("[SESSION] Removing session %s", gameID)
	delete(sm.Session, gameID)
	return nil
}

// Count returns the number of live sessions.
func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return len(sm.Session)
}

// CleanupFinishedSessions drops sessions that finished more than maxAge ago
// and returns how many were removed.
func (sm *SessionManager) CleanupFinishedSessions(maxAge time.Duration) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	count := 0
	now := sm.now()
	for gameID, session := range sm.Session {
		finishedAt, finished := session.FinishedAt()
		if finished && now.Sub(finishedAt) > maxAge {
			delete(sm.Session, gameID)
			count++
		}
	}

	if count > 0 {
		log.Printf("[SESSION] Memory cleanup: Removed %d finished game sessions", count)
	}
	return count
}
