package journal

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/mind-engage/mindengage-rounds/internal/db"
)

func exercise(t *testing.T, j Journal) {
	t.Helper()
	ctx := context.Background()
	at := time.Unix(1700000000, 0)
	entries := []Entry{
		{SessionID: "s1", Kind: "trivia", Round: 1, Prompt: "2+2?", Fields: map[string]any{"name": "Ada", "answer": "4"}, Verdict: "match", CreatedAt: at},
		{SessionID: "s1", Kind: "trivia", Round: 2, Prompt: "3+3?", Fields: map[string]any{"name": "Ada", "answer": "7"}, Verdict: "no_match", CreatedAt: at.Add(time.Minute)},
		{SessionID: "s2", Kind: "greeting", Round: 1, Fields: map[string]any{"senderName": "Bo", "includesPersonalNote": true}, CreatedAt: at.Add(2 * time.Minute)},
	}
	for _, e := range entries {
		if err := j.Append(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := j.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	want := []Entry{entries[2], entries[1]}
	opts := []cmp.Option{
		cmpopts.IgnoreFields(Entry{}, "Seq"),
		cmp.Comparer(func(a, b time.Time) bool { return a.Equal(b) }),
	}
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Errorf("recent (-want +got):\n%s", diff)
	}
	if got[0].Seq <= got[1].Seq {
		t.Errorf("sequence not increasing: %d then %d", got[1].Seq, got[0].Seq)
	}

	all, err := j.Recent(ctx, 10)
	if err != nil || len(all) != 3 {
		t.Fatalf("recent(10) = %d entries, %v", len(all), err)
	}
}

func TestSQLJournal(t *testing.T) {
	h, err := db.Open(context.Background(), db.DriverSQLite, "file:journal_test?mode=memory&cache=shared")
	if err != nil {
		t.Fatal(err)
	}
	j := NewSQL(h)
	defer j.Close()
	exercise(t, j)
}

func TestBoltJournal(t *testing.T) {
	j, err := OpenBolt(filepath.Join(t.TempDir(), "rounds.bolt"))
	if err != nil {
		t.Fatal(err)
	}
	defer j.Close()
	exercise(t, j)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	j, err := Open(ctx, "none", "")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := j.(Nop); !ok {
		t.Errorf("none driver gave %T", j)
	}

	bj, err := Open(ctx, "bolt", filepath.Join(t.TempDir(), "j.bolt"))
	if err != nil {
		t.Fatal(err)
	}
	bj.Close()

	if _, err := Open(ctx, "mongo", ""); !errors.Is(err, ErrUnknownDriver) {
		t.Fatalf("want ErrUnknownDriver, got %v", err)
	}
}
