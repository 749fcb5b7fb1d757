package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

type SQL struct{ db *sql.DB }

// NewSQL expects the round_log table to exist (see db.EnsureSchema).
func NewSQL(db *sql.DB) *SQL { return &SQL{db: db} }

func (s *SQL) Append(ctx context.Context, e Entry) error {
	fj, err := json.Marshal(e.Fields)
	if err != nil {
		return err
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO round_log (session_id, kind, round, prompt, fields_json, verdict, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		e.SessionID, e.Kind, e.Round, e.Prompt, string(fj), e.Verdict, e.CreatedAt.Unix())
	return err
}

func (s *SQL) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT seq, session_id, kind, round, prompt, fields_json, verdict, created_at
		 FROM round_log ORDER BY seq DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e       Entry
			fj      string
			created int64
		)
		if err := rows.Scan(&e.Seq, &e.SessionID, &e.Kind, &e.Round, &e.Prompt, &fj, &e.Verdict, &created); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(fj), &e.Fields); err != nil {
			return nil, err
		}
		e.CreatedAt = time.Unix(created, 0)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *SQL) Close() error { return s.db.Close() }
