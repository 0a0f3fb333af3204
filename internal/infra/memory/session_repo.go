package memory

import (
	"sync"

	"github.com/Artem-be/HRTest/internal/usecase"
)

// SessionRepo — анкеты в памяти; теряются при рестарте процесса.
type SessionRepo struct {
	mu       sync.RWMutex
	sessions map[int64]*usecase.Session
}

func NewSessionRepo() *SessionRepo {
	return &SessionRepo{sessions: make(map[int64]*usecase.Session)}
}

func (r *SessionRepo) Get(userID int64) (*usecase.Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[userID]
	r.mu.RUnlock()
	if !ok {
		return &usecase.Session{Step: usecase.StepIdle}, nil
	}
	cp := *s
	return &cp, nil
}

func (r *SessionRepo) Put(userID int64, s *usecase.Session) error {
	cp := *s
	r.mu.Lock()
	r.sessions[userID] = &cp
	r.mu.Unlock()
	return nil
}

func (r *SessionRepo) Clear(userID int64) error {
	r.mu.Lock()
	delete(r.sessions, userID)
	r.mu.Unlock()
	return nil
}
