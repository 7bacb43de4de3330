package repository

import (
	"context"
	"sync"
	"time"

	"gearshift/internal/state"
)

type session struct {
	mu      sync.Mutex
	state   state.State
	touched time.Time
}

type SessionRepositoryImpl struct {
	mu       sync.RWMutex
	sessions map[string]*session
	newState func() state.State
	now      func() time.Time
}

// NewSessionRepository keeps page state per session in memory. newState
// builds the state a session starts with.
func NewSessionRepository(newState func() state.State, now func() time.Time) *SessionRepositoryImpl {
	return &SessionRepositoryImpl{
		sessions: make(map[string]*session),
		newState: newState,
		now:      now,
	}
}

// lookup returns the session, creating a fresh one on first use.
func (r *SessionRepositoryImpl) lookup(sessionID string) *session {
	r.mu.RLock()
	s, ok := r.sessions[sessionID]
	r.mu.RUnlock()
	if ok {
		return s
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok = r.sessions[sessionID]; ok {
		return s
	}
	s = &session{state: r.newState(), touched: r.now()}
	r.sessions[sessionID] = s
	return s
}

func (r *SessionRepositoryImpl) Get(ctx context.Context, sessionID string) (state.State, error) {
	if err := ctx.Err(); err != nil {
		return state.State{}, err
	}
	if sessionID == "" {
		return state.State{}, ErrEmptySessionID
	}

	s := r.lookup(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touched = r.now()
	return s.state, nil
}

// Update runs fn under the session lock, so transitions of one session never interleave.
func (r *SessionRepositoryImpl) Update(ctx context.Context, sessionID string, fn UpdateFunc) (state.State, error) {
	if err := ctx.Err(); err != nil {
		return state.State{}, err
	}
	if sessionID == "" {
		return state.State{}, ErrEmptySessionID
	}

	s := r.lookup(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touched = r.now()
	next, err := fn(s.state)
	if err != nil {
		return s.state, err
	}
	s.state = next
	return next, nil
}

// EvictIdle drops sessions not touched since cutoff and returns how many went away.
func (r *SessionRepositoryImpl) EvictIdle(ctx context.Context, cutoff time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, s := range r.sessions {
		if ctx.Err() != nil {
			break
		}
		s.mu.Lock()
		idle := s.touched.Before(cutoff)
		s.mu.Unlock()
		if idle {
			delete(r.sessions, id)
			evicted++
		}
	}
	return evicted
}

func (r *SessionRepositoryImpl) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
