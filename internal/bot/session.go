package bot

import (
	"sync"

	"team-tracker/internal/parser"
)

// sessionState is the per-user conversation state.
type sessionState int

const (
	stateIdle sessionState = iota
	stateAwaitingLate
)

// intake says how a free-text message is interpreted.
type intake int

const (
	intakeUnrecognized intake = iota
	intakeTask
	intakeLate
)

// route decides how text is handled in state and returns the state that
// follows. A pending tardiness prompt is consumed by the next message whatever
// it contains.
func route(state sessionState, text string) (intake, sessionState) {
	if state == stateAwaitingLate {
		return intakeLate, stateIdle
	}
	if parser.IsTaskMessage(text) {
		return intakeTask, stateIdle
	}
	return intakeUnrecognized, stateIdle
}

// sessionStore keeps conversation state per Telegram user id.
type sessionStore struct {
	mu     sync.Mutex
	states map[int64]sessionState
}

func newSessionStore() *sessionStore {
	return &sessionStore{states: make(map[int64]sessionState)}
}

func (s *sessionStore) get(userID int64) sessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[userID]
}

func (s *sessionStore) set(userID int64, state sessionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if state == stateIdle {
		delete(s.states, userID)
		return
	}
	s.states[userID] = state
}

// consume routes a free-text message and stores the next state before the
// message is processed, so a failed intake never leaves the prompt pending.
func (s *sessionStore) consume(userID int64, text string) intake {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, state := route(s.states[userID], text)
	if state == stateIdle {
		delete(s.states, userID)
	} else {
		s.states[userID] = state
	}
	return next
}
