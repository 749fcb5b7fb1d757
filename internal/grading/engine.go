package grading

import "fmt"

type Verdict string

const (
	Match   Verdict = "match"
	NoMatch Verdict = "no_match"
	Close   Verdict = "close"
)

// Policy names a comparison strategy.
type Policy string

const (
	PolicyExact      Policy = "exact"
	PolicyNormalized Policy = "normalized"
	PolicyFuzzy      Policy = "fuzzy"
)

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyExact, PolicyNormalized, PolicyFuzzy:
		return p, nil
	case "":
		return PolicyExact, nil
	default:
		return "", fmt.Errorf("unknown match policy %q", s)
	}
}

// Result is the outcome of comparing one response with its expected answer.
type Result struct {
	Verdict  Verdict
	Feedback []string
}

// Strategy compares a response against the expected answer. Implementations
// must be pure.
type Strategy interface {
	Grade(expected, got string) Result
}

// Grader routes by policy to the correct Strategy.
type Grader interface {
	Grade(p Policy, expected, got string) Result
}

type defaultGrader struct {
	strategies map[Policy]Strategy
}

func (g *defaultGrader) Grade(p Policy, expected, got string) Result {
	s, ok := g.strategies[p]
	if !ok {
		s = g.strategies[PolicyExact]
	}
	return s.Grade(expected, got)
}

type Option func(*config)

type config struct {
	MaxEditDistance int
}

func WithMaxEditDistance(n int) Option { return func(c *config) { c.MaxEditDistance = n } }

// NewDefaultGrader installs the built-in strategies. Unknown policies fall
// back to exact matching.
func NewDefaultGrader(opts ...Option) Grader {
	cfg := &config{MaxEditDistance: 1}
	for _, o := range opts {
		o(cfg)
	}
	return &defaultGrader{
		strategies: map[Policy]Strategy{
			PolicyExact:      exactStrategy{},
			PolicyNormalized: normalizedStrategy{},
			PolicyFuzzy:      fuzzyStrategy{maxEdit: cfg.MaxEditDistance},
		},
	}
}

// exactStrategy is case-sensitive and does not trim.
type exactStrategy struct{}

func (exactStrategy) Grade(expected, got string) Result {
	if got == expected {
		return Result{Verdict: Match}
	}
	return Result{Verdict: NoMatch}
}

type normalizedStrategy struct{}

func (normalizedStrategy) Grade(expected, got string) Result {
	if normalize(expected) == normalize(got) {
		return Result{Verdict: Match}
	}
	return Result{Verdict: NoMatch}
}

type fuzzyStrategy struct{ maxEdit int }

func (s fuzzyStrategy) Grade(expected, got string) Result {
	ne, ng := normalize(expected), normalize(got)
	if ne == ng {
		return Result{Verdict: Match}
	}
	if s.maxEdit > 0 && ng != "" && levenshtein(ne, ng) <= s.maxEdit {
		return Result{Verdict: Close, Feedback: []string{"close match (fuzzy)"}}
	}
	return Result{Verdict: NoMatch}
}
