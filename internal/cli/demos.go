package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mind-engage/mindengage-rounds/internal/demo"
)

// runTemp reads "+", "-" or "q" per line.
func runTemp(ctx context.Context, t *term) error {
	tmp := demo.NewTemperature()
	show := func() {
		fmt.Fprintf(t.out, "Temperature in fahrenheit: %d\nTemperature in celsius: %d\n", tmp.Fahrenheit(), tmp.Celsius())
	}
	show()
	for ctx.Err() == nil {
		t.prompt("+/-/q")
		line, err := t.readLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch strings.TrimSpace(line) {
		case "+":
			tmp.Inc()
		case "-":
			tmp.Dec()
		case "q":
			return nil
		default:
			continue
		}
		show()
	}
	return ctx.Err()
}

// runTimer ticks a stopwatch. A "p" line toggles pause, "q" stops.
func runTimer(ctx context.Context, args []string, t *term) error {
	fs := flag.NewFlagSet("timer", flag.ContinueOnError)
	fs.SetOutput(t.out)
	every := fs.Duration("tick", time.Second, "tick interval")
	limit := fs.Duration("for", 0, "stop after this long (0 runs until q or interrupt)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *every <= 0 {
		return fmt.Errorf("tick must be positive, got %s", *every)
	}
	if *limit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *limit)
		defer cancel()
	}

	lines := make(chan string)
	go func() {
		defer close(lines)
		for {
			l, err := t.readLine()
			if err != nil {
				return
			}
			select {
			case lines <- strings.TrimSpace(l):
			case <-ctx.Done():
				return
			}
		}
	}()

	sw := demo.NewStopwatch()
	tk := time.NewTicker(*every)
	defer tk.Stop()
	for {
		select {
		case <-ctx.Done():
			fmt.Fprintf(t.out, "stopped at %d seconds\n", sw.Seconds())
			return nil
		case <-tk.C:
			if sw.Running() {
				sw.Tick()
				fmt.Fprintf(t.out, "%d seconds have passed.\n", sw.Seconds())
			}
		case l, ok := <-lines:
			if !ok {
				lines = nil
				continue
			}
			switch l {
			case "p":
				sw.Toggle()
				fmt.Fprintf(t.out, "[%s]\n", sw.Button())
			case "q":
				fmt.Fprintf(t.out, "stopped at %d seconds\n", sw.Seconds())
				return nil
			}
		}
	}
}
