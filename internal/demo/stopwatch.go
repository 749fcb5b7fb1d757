package demo

// Stopwatch counts seconds while running. The host delivers ticks; the
// stopwatch has no clock of its own.
type Stopwatch struct {
	seconds int
	running bool
}

// NewStopwatch starts running.
func NewStopwatch() *Stopwatch { return &Stopwatch{running: true} }

func (s *Stopwatch) Tick() {
	if s.running {
		s.seconds++
	}
}

func (s *Stopwatch) Toggle() { s.running = !s.running }

func (s *Stopwatch) Running() bool { return s.running }

func (s *Stopwatch) Seconds() int { return s.seconds }

// Button is the label of the pause/resume control.
func (s *Stopwatch) Button() string {
	if s.running {
		return "Pause"
	}
	return "Resume"
}
