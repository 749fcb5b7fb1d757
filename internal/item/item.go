package item

import (
	"errors"
	"math/rand"
	"sync"
	"time"
)

// ErrEmptyCatalog is returned when a catalog is built without items.
var ErrEmptyCatalog = errors.New("item catalog is empty")

// Item is the record a user responds to in one round. For the greeting card
// exercise it is the zero Item.
type Item struct {
	ID            string `json:"id,omitempty" yaml:"id,omitempty"`
	Prompt        string `json:"question" yaml:"question"`
	CorrectAnswer string `json:"answer" yaml:"answer"`
}

// Source hands out the Item for the next round.
type Source interface {
	Next() Item
}

// Catalog draws uniformly from a fixed, non-empty list of items.
type Catalog struct {
	items []Item

	mu  sync.Mutex
	rnd *rand.Rand
}

type Option func(*Catalog)

// WithRand replaces the random source, mostly for tests.
func WithRand(r *rand.Rand) Option { return func(c *Catalog) { c.rnd = r } }

func NewCatalog(items []Item, opts ...Option) (*Catalog, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		items: append([]Item(nil), items...),
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

func (c *Catalog) Next() Item {
	c.mu.Lock()
	i := c.rnd.Intn(len(c.items))
	c.mu.Unlock()
	return c.items[i]
}

func (c *Catalog) Len() int { return len(c.items) }

func (c *Catalog) At(i int) Item { return c.items[i] }

// Constant always returns the same item.
type Constant Item

func (c Constant) Next() Item { return Item(c) }
