// Package session owns the round lifecycle: draw an item, collect one
// submission through a form, show the result, start over.
package session

import (
	"github.com/mind-engage/mindengage-rounds/internal/exercise"
	"github.com/mind-engage/mindengage-rounds/internal/form"
	"github.com/mind-engage/mindengage-rounds/internal/item"
	"github.com/mind-engage/mindengage-rounds/internal/present"
)

type State string

const (
	NoResult  State = "no_result"
	HasResult State = "has_result"
)

// Session is driven by one event at a time. It only ever sees finished
// submissions, never the form's draft.
type Session struct {
	ex    exercise.Exercise
	state State
	round int
	item  item.Item
	form  *form.Form
	sub   *form.Submission
}

func New(ex exercise.Exercise) *Session {
	s := &Session{ex: ex}
	s.startRound()
	return s
}

func (s *Session) startRound() {
	s.round++
	s.state = NoResult
	s.sub = nil
	s.item = s.ex.Source().Next()
	round := s.round
	s.form = form.New(s.ex.Schema(), s.item, func(sub form.Submission) {
		// forms from earlier rounds are discarded
		if round == s.round {
			s.onFormSubmit(sub)
		}
	})
}

func (s *Session) onFormSubmit(sub form.Submission) {
	s.sub = &sub
	s.state = HasResult
}

// RequestNewItem discards any result and starts the next round with a fresh
// item and form. It is legal in either state.
func (s *Session) RequestNewItem() { s.startRound() }

func (s *Session) Kind() string { return s.ex.Kind() }

func (s *Session) State() State { return s.state }

func (s *Session) Round() int { return s.round }

func (s *Session) Item() item.Item { return s.item }

// Form is the form for the current round.
func (s *Session) Form() *form.Form { return s.form }

func (s *Session) Submission() (form.Submission, bool) {
	if s.sub == nil {
		return form.Submission{}, false
	}
	return *s.sub, true
}

// Result renders the current submission, if there is one.
func (s *Session) Result() (present.Card, bool) {
	if s.sub == nil {
		return present.Card{}, false
	}
	return s.ex.Present(s.sub.Item(), *s.sub), true
}

type View struct {
	Kind   string        `json:"kind"`
	Round  int           `json:"round"`
	State  State         `json:"state"`
	Form   form.View     `json:"form"`
	Result *present.Card `json:"result,omitempty"`
}

func (s *Session) View() View {
	v := View{Kind: s.ex.Kind(), Round: s.round, State: s.state, Form: s.form.View()}
	if c, ok := s.Result(); ok {
		v.Result = &c
	}
	return v
}
