// Package cli is the terminal host: it reads events from a line-oriented
// input and renders views as plain text.
package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/mind-engage/mindengage-rounds/internal/config"
	"github.com/mind-engage/mindengage-rounds/internal/exercise"
	"github.com/mind-engage/mindengage-rounds/internal/form"
	"github.com/mind-engage/mindengage-rounds/internal/grading"
	"github.com/mind-engage/mindengage-rounds/internal/item"
	"github.com/mind-engage/mindengage-rounds/internal/session"
)

const usage = "usage: roundctl trivia|greeting|temp|timer [flags]"

// term wraps the input and decides whether prompts are shown.
type term struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

func newTerm(in io.Reader, out io.Writer) *term {
	t := &term{in: bufio.NewReader(in), out: out}
	if f, ok := in.(*os.File); ok {
		t.interactive = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return t
}

func (t *term) prompt(label string) {
	if t.interactive {
		fmt.Fprintf(t.out, "%s: ", label)
	}
}

// readLine returns io.EOF only when no more input is left.
func (t *term) readLine() (string, error) {
	s, err := t.in.ReadString('\n')
	if err == io.EOF && s != "" {
		err = nil
	}
	return strings.TrimRight(s, "\r\n"), err
}

// Run dispatches one subcommand.
func Run(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	if len(args) == 0 {
		return errors.New(usage)
	}
	t := newTerm(in, out)
	cfg := config.FromEnv()
	switch args[0] {
	case "trivia":
		return runTrivia(ctx, args[1:], t, cfg)
	case "greeting":
		return runGreeting(ctx, args[1:], t)
	case "temp":
		return runTemp(ctx, t)
	case "timer":
		return runTimer(ctx, args[1:], t)
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

func runTrivia(ctx context.Context, args []string, t *term, cfg config.Config) error {
	fs := flag.NewFlagSet("trivia", flag.ContinueOnError)
	fs.SetOutput(t.out)
	catalog := fs.String("catalog", cfg.CatalogPath, "question catalog (.json or .yaml)")
	rounds := fs.Int("rounds", 1, "number of rounds to play")
	policy := fs.String("match", cfg.MatchPolicy, "answer matching: exact|normalized|fuzzy")
	maxName := fs.Int("name-max", cfg.NameMaxLen, "longest name kept")
	overflow := fs.String("name-overflow", cfg.NameOverflow, "overlong name handling: reset|warn")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := grading.ParsePolicy(*policy)
	if err != nil {
		return err
	}
	o, err := form.ParseOverflow(*overflow)
	if err != nil {
		return err
	}
	src, err := item.OpenCatalog(*catalog)
	if err != nil {
		return err
	}
	ex := exercise.NewTrivia(src, exercise.TriviaOptions{
		NameMaxLen:   *maxName,
		NameOverflow: o,
		Policy:       p,
	})
	return play(ctx, t, session.New(ex), *rounds, triviaInputs)
}

func runGreeting(ctx context.Context, args []string, t *term) error {
	fs := flag.NewFlagSet("greeting", flag.ContinueOnError)
	fs.SetOutput(t.out)
	if err := fs.Parse(args); err != nil {
		return err
	}
	return play(ctx, t, session.New(exercise.NewGreeting()), 1, greetingInputs)
}

// fillFunc collects one draft from the terminal.
type fillFunc func(t *term, f *form.Form) error

func play(ctx context.Context, t *term, s *session.Session, rounds int, fill fillFunc) error {
	for i := 0; i < rounds; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 {
			s.RequestNewItem()
			fmt.Fprintln(t.out)
		}
		if err := fill(t, s.Form()); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if err := s.Form().Submit(); err != nil {
			return err
		}
		card, _ := s.Result()
		for _, l := range card.Lines() {
			fmt.Fprintln(t.out, l)
		}
	}
	return nil
}

func setFrom(t *term, f *form.Form, name, label string) error {
	t.prompt(label)
	line, err := t.readLine()
	if err != nil {
		return err
	}
	if err := f.SetField(name, line); err != nil {
		return err
	}
	if w := f.Warning(); w != nil {
		fmt.Fprintln(t.out, w.Message)
	}
	return nil
}

func triviaInputs(t *term, f *form.Form) error {
	fmt.Fprintln(t.out, f.Item().Prompt)
	if err := setFrom(t, f, exercise.FieldName, "Your Name"); err != nil {
		return err
	}
	return setFrom(t, f, exercise.FieldAnswer, "Your Answer")
}

func greetingInputs(t *term, f *form.Form) error {
	steps := []struct{ name, label string }{
		{exercise.FieldRecipient, "Recipient's Name"},
		{exercise.FieldSender, "Sender's Name"},
		{exercise.FieldMessage, "Message"},
		{exercise.FieldOccasion, "Occasion (" + strings.Join(exercise.Occasions, "/") + ", blank for " + exercise.Occasions[0] + ")"},
		{exercise.FieldPersonalNote, "Include Personal Note (y/n)"},
	}
	for _, st := range steps {
		t.prompt(st.label)
		line, err := t.readLine()
		if err != nil {
			return err
		}
		switch st.name {
		case exercise.FieldOccasion:
			if line == "" {
				continue
			}
		case exercise.FieldPersonalNote:
			err = f.SetChecked(st.name, strings.HasPrefix(strings.ToLower(line), "y"))
			if err != nil {
				return err
			}
			continue
		}
		if err := f.SetField(st.name, line); err != nil {
			return err
		}
	}
	return nil
}
