package exercise

import (
	"sort"

	"github.com/mind-engage/mindengage-rounds/internal/form"
	"github.com/mind-engage/mindengage-rounds/internal/item"
	"github.com/mind-engage/mindengage-rounds/internal/present"
)

// Exercise is one instantiation of the form-and-review round.
type Exercise interface {
	Kind() string
	Schema() form.Schema
	Source() item.Source
	Present(it item.Item, sub form.Submission) present.Card
}

// Registry maps a kind name to its exercise.
type Registry map[string]Exercise

func NewRegistry(exs ...Exercise) Registry {
	r := Registry{}
	for _, e := range exs {
		r[e.Kind()] = e
	}
	return r
}

func (r Registry) Kinds() []string {
	out := make([]string, 0, len(r))
	for k := range r {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
