package repository

import (
	"context"
	"errors"
	"time"

	"gearshift/internal/state"
)

var ErrEmptySessionID = errors.New("session id is empty")

// UpdateFunc computes the next state of a session. Returning an error
// discards the result and keeps the current state.
type UpdateFunc func(current state.State) (state.State, error)

type SessionRepository interface {
	Get(ctx context.Context, sessionID string) (state.State, error)
	Update(ctx context.Context, sessionID string, fn UpdateFunc) (state.State, error)
	EvictIdle(ctx context.Context, cutoff time.Time) int
	Count() int
}

type Repository struct {
	Session SessionRepository
}

func NewRepository(newState func() state.State) *Repository {
	return &Repository{
		Session: NewSessionRepository(newState, time.Now),
	}
}
