// Package hub keeps the live sessions of a host process. Every session is
// driven by at most one event at a time.
package hub

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/logger"
	"github.com/google/uuid"

	"github.com/mind-engage/mindengage-rounds/internal/exercise"
	"github.com/mind-engage/mindengage-rounds/internal/journal"
	"github.com/mind-engage/mindengage-rounds/internal/session"
)

var (
	ErrNoSession   = errors.New("session not found")
	ErrUnknownKind = errors.New("unknown exercise kind")
)

type entry struct {
	mu       sync.Mutex
	s        *session.Session
	lastSeen time.Time
}

type Hub struct {
	exercises exercise.Registry
	journal   journal.Journal
	now       func() time.Time

	mu       sync.RWMutex
	sessions map[string]*entry
}

type Option func(*Hub)

func WithJournal(j journal.Journal) Option { return func(h *Hub) { h.journal = j } }

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option { return func(h *Hub) { h.now = now } }

func New(reg exercise.Registry, opts ...Option) *Hub {
	h := &Hub{
		exercises: reg,
		journal:   journal.Nop{},
		now:       time.Now,
		sessions:  map[string]*entry{},
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

func (h *Hub) Kinds() []string { return h.exercises.Kinds() }

// Create starts a session of the given kind and returns its ID.
func (h *Hub) Create(kind string) (string, session.View, error) {
	ex, ok := h.exercises[kind]
	if !ok {
		return "", session.View{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	id := uuid.NewString()
	e := &entry{s: session.New(ex), lastSeen: h.now()}

	h.mu.Lock()
	h.sessions[id] = e
	h.mu.Unlock()

	logger.Infof("session %s created (%s)", id, kind)
	return id, e.s.View(), nil
}

// do runs fn with the session locked and returns the view afterwards.
func (h *Hub) do(id string, fn func(s *session.Session) error) (session.View, error) {
	h.mu.RLock()
	e, ok := h.sessions[id]
	h.mu.RUnlock()
	if !ok {
		return session.View{}, ErrNoSession
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastSeen = h.now()
	if err := fn(e.s); err != nil {
		return session.View{}, err
	}
	return e.s.View(), nil
}

func (h *Hub) View(id string) (session.View, error) {
	return h.do(id, func(*session.Session) error { return nil })
}

func (h *Hub) SetField(id, name, raw string) (session.View, error) {
	return h.do(id, func(s *session.Session) error { return s.Form().SetField(name, raw) })
}

func (h *Hub) SetChecked(id, name string, checked bool) (session.View, error) {
	return h.do(id, func(s *session.Session) error { return s.Form().SetChecked(name, checked) })
}

// Submit submits the current form and journals the finished round.
func (h *Hub) Submit(ctx context.Context, id string) (session.View, error) {
	return h.do(id, func(s *session.Session) error {
		if err := s.Form().Submit(); err != nil {
			return err
		}
		h.record(ctx, id, s)
		return nil
	})
}

func (h *Hub) NewItem(id string) (session.View, error) {
	return h.do(id, func(s *session.Session) error {
		s.RequestNewItem()
		return nil
	})
}

func (h *Hub) Drop(id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.sessions[id]; !ok {
		return ErrNoSession
	}
	delete(h.sessions, id)
	return nil
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

func (h *Hub) record(ctx context.Context, id string, s *session.Session) {
	sub, ok := s.Submission()
	if !ok {
		return
	}
	e := journal.Entry{
		SessionID: id,
		Kind:      s.Kind(),
		Round:     s.Round(),
		Prompt:    sub.Item().Prompt,
		Fields:    sub.Fields(),
		CreatedAt: h.now(),
	}
	if c, ok := s.Result(); ok {
		e.Verdict = string(c.Verdict)
	}
	if err := h.journal.Append(ctx, e); err != nil {
		logger.Errorf("journal append for session %s: %v", id, err)
	}
}

// Sweep drops sessions idle for longer than idle and returns how many went.
func (h *Hub) Sweep(idle time.Duration) int {
	cutoff := h.now().Add(-idle)
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for id, e := range h.sessions {
		e.mu.Lock()
		stale := e.lastSeen.Before(cutoff)
		e.mu.Unlock()
		if stale {
			delete(h.sessions, id)
			n++
		}
	}
	return n
}

// Run sweeps every interval until ctx is done.
func (h *Hub) Run(ctx context.Context, every, idle time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := h.Sweep(idle); n > 0 {
				logger.Infof("swept %d idle sessions", n)
			}
		}
	}
}
