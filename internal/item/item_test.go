package item_test

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mind-engage/mindengage-rounds/internal/item"
)

func TestNewCatalogEmpty(t *testing.T) {
	if _, err := item.NewCatalog(nil); !errors.Is(err, item.ErrEmptyCatalog) {
		t.Fatalf("want ErrEmptyCatalog, got %v", err)
	}
	if _, err := item.NewCatalog([]item.Item{}); !errors.Is(err, item.ErrEmptyCatalog) {
		t.Fatalf("want ErrEmptyCatalog, got %v", err)
	}
}

func TestCatalogNextMembership(t *testing.T) {
	items := []item.Item{
		{ID: "a", Prompt: "2+2?", CorrectAnswer: "4"},
		{ID: "b", Prompt: "3+3?", CorrectAnswer: "6"},
		{ID: "c", Prompt: "capital of France?", CorrectAnswer: "Paris"},
	}
	c, err := item.NewCatalog(items, item.WithRand(rand.New(rand.NewSource(7))))
	if err != nil {
		t.Fatal(err)
	}
	seen := map[string]bool{}
	for i := 0; i < 300; i++ {
		got := c.Next()
		found := false
		for _, it := range items {
			if it == got {
				found = true
			}
		}
		if !found {
			t.Fatalf("Next returned %+v, not in catalog", got)
		}
		seen[got.ID] = true
	}
	if len(seen) != len(items) {
		t.Errorf("expected every item to be drawn at least once in 300 draws, saw %v", seen)
	}
}

func TestCatalogSingleIsConstant(t *testing.T) {
	only := item.Item{Prompt: "2+2?", CorrectAnswer: "4"}
	c, err := item.NewCatalog([]item.Item{only})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 20; i++ {
		if got := c.Next(); got != only {
			t.Fatalf("draw %d: got %+v", i, got)
		}
	}
}

func TestCatalogCopiesInput(t *testing.T) {
	items := []item.Item{{Prompt: "p", CorrectAnswer: "a"}}
	c, _ := item.NewCatalog(items)
	items[0].CorrectAnswer = "changed"
	if c.At(0).CorrectAnswer != "a" || c.Len() != 1 {
		t.Fatalf("catalog shares caller slice: %+v", c.At(0))
	}
}

func TestConstant(t *testing.T) {
	var src item.Source = item.Constant{}
	if got := src.Next(); got != (item.Item{}) {
		t.Fatalf("got %+v", got)
	}
}

func TestLoad(t *testing.T) {
	want := []item.Item{{Prompt: "2+2?", CorrectAnswer: "4"}, {ID: "x", Prompt: "Sky?", CorrectAnswer: "blue"}}

	t.Run("json", func(t *testing.T) {
		in := `[{"question":"2+2?","answer":"4"},{"id":"x","question":"Sky?","answer":"blue"}]`
		got, err := item.Load(strings.NewReader(in), item.FormatJSON)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
	})
	t.Run("yaml", func(t *testing.T) {
		in := "- question: 2+2?\n  answer: \"4\"\n- id: x\n  question: Sky?\n  answer: blue\n"
		got, err := item.Load(strings.NewReader(in), item.FormatYAML)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
	})
	t.Run("bad json", func(t *testing.T) {
		if _, err := item.Load(strings.NewReader("{"), item.FormatJSON); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestOpenCatalog(t *testing.T) {
	c, err := item.OpenCatalog("")
	if err != nil {
		t.Fatalf("embedded catalog: %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("embedded catalog is empty")
	}

	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(empty, []byte("[]"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := item.OpenCatalog(empty); !errors.Is(err, item.ErrEmptyCatalog) {
		t.Fatalf("want ErrEmptyCatalog, got %v", err)
	}

	if _, err := item.OpenCatalog(filepath.Join(dir, "questions.txt")); err == nil {
		t.Fatal("expected unsupported extension error")
	}
}
