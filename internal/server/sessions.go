package server

import (
	"time"

	"github.com/neo/passmeter_backend/internal/logging"
)

// storeGeneratedPassword remembers the last generated password for a session
func (s *Server) storeGeneratedPassword(sessionID, password string) {
	s.sessionMutex.Lock()
	s.sessions[sessionID] = generatedPassword{
		password:  password,
		timestamp: time.Now(),
	}
	s.sessionMutex.Unlock()

	logging.LogSessionEvent("password_stored", sessionID, nil)
}

// lookupGeneratedPassword returns the last generated password for a session
func (s *Server) lookupGeneratedPassword(sessionID string) (string, bool) {
	s.sessionMutex.RLock()
	entry, exists := s.sessions[sessionID]
	s.sessionMutex.RUnlock()

	if !exists || time.Since(entry.timestamp) > s.config.SessionTTL {
		return "", false
	}
	return entry.password, true
}

// cleanupSessions removes expired session entries
func (s *Server) cleanupSessions() {
	s.sessionMutex.Lock()
	defer s.sessionMutex.Unlock()

	threshold := time.Now().Add(-s.config.SessionTTL)
	for id, entry := range s.sessions {
		if entry.timestamp.Before(threshold) {
			delete(s.sessions, id)
		}
	}
}
