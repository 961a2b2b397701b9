package triage

import "sync"

// sessionLocks serializes calls per session. The engine's contract assumes
// at most one in-flight call per session; the HTTP layer enforces that here
// so two overlapping requests cannot race on the same context.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: make(map[string]*sync.Mutex)}
}

func (s *sessionLocks) lock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	l, ok := s.locks[sessionID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[sessionID] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l
}
