// Package journal keeps an append-only record of completed rounds. Sessions
// never read it back; it exists for operators.
package journal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mind-engage/mindengage-rounds/internal/db"
)

var ErrUnknownDriver = errors.New("unknown journal driver")

type Entry struct {
	Seq       int64          `json:"seq"`
	SessionID string         `json:"session_id"`
	Kind      string         `json:"kind"`
	Round     int            `json:"round"`
	Prompt    string         `json:"prompt,omitempty"`
	Fields    map[string]any `json:"fields"`
	Verdict   string         `json:"verdict,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

type Journal interface {
	Append(ctx context.Context, e Entry) error
	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]Entry, error)
	Close() error
}

// Open picks a backend by driver name: sqlite, postgres, bolt or none.
func Open(ctx context.Context, driver, dsn string) (Journal, error) {
	switch driver {
	case "sqlite", "postgres":
		h, err := db.Open(ctx, db.Driver(driver), dsn)
		if err != nil {
			return nil, fmt.Errorf("journal %s: %w", driver, err)
		}
		return NewSQL(h), nil
	case "bolt":
		if dsn == "" {
			dsn = "rounds.bolt"
		}
		return OpenBolt(dsn)
	case "none", "":
		return Nop{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}

// Nop drops every entry.
type Nop struct{}

func (Nop) Append(context.Context, Entry) error          { return nil }
func (Nop) Recent(context.Context, int) ([]Entry, error) { return nil, nil }
func (Nop) Close() error                                 { return nil }
