package exercise

import (
	"fmt"

	"github.com/mind-engage/mindengage-rounds/internal/form"
	"github.com/mind-engage/mindengage-rounds/internal/grading"
	"github.com/mind-engage/mindengage-rounds/internal/item"
	"github.com/mind-engage/mindengage-rounds/internal/present"
)

const (
	KindTrivia = "trivia"

	FieldName   = "name"
	FieldAnswer = "answer"

	// DefaultNameMaxLen is the longest name the trivia form keeps.
	DefaultNameMaxLen = 10
)

const (
	msgWellDone = "Well done!"
	msgBadLuck  = "Bad luck, try again"
	msgClose    = "So close, check your spelling"
)

type TriviaOptions struct {
	NameMaxLen   int
	NameOverflow form.Overflow
	Policy       grading.Policy
	Grader       grading.Grader
}

// Trivia asks a random question from a catalog and checks the answer.
type Trivia struct {
	source item.Source
	schema form.Schema
	policy grading.Policy
	grader grading.Grader
}

func NewTrivia(src item.Source, o TriviaOptions) *Trivia {
	if o.NameMaxLen == 0 {
		o.NameMaxLen = DefaultNameMaxLen
	}
	if o.NameOverflow == "" {
		o.NameOverflow = form.OverflowReset
	}
	if o.Policy == "" {
		o.Policy = grading.PolicyExact
	}
	if o.Grader == nil {
		o.Grader = grading.NewDefaultGrader()
	}
	return &Trivia{
		source: src,
		policy: o.Policy,
		grader: o.Grader,
		schema: form.Schema{
			Name: KindTrivia,
			Fields: []form.Field{
				{Name: FieldName, Label: "Your Name", Kind: form.KindText, MaxLen: o.NameMaxLen, Overflow: o.NameOverflow},
				{Name: FieldAnswer, Label: "Your Answer", Kind: form.KindText},
			},
		},
	}
}

func (t *Trivia) Kind() string        { return KindTrivia }
func (t *Trivia) Schema() form.Schema { return t.schema }
func (t *Trivia) Source() item.Source { return t.source }

func (t *Trivia) Present(it item.Item, sub form.Submission) present.Card {
	res := t.grader.Grade(t.policy, it.CorrectAnswer, sub.String(FieldAnswer))
	msg := msgBadLuck
	switch res.Verdict {
	case grading.Match:
		msg = msgWellDone
	case grading.Close:
		msg = msgClose
	}
	return present.Card{
		Kind:     KindTrivia,
		Title:    it.Prompt,
		Subtitle: fmt.Sprintf("%s's results:", sub.String(FieldName)),
		Body: []string{
			"The correct answer: " + it.CorrectAnswer,
			"Your answer: " + sub.String(FieldAnswer),
		},
		Footer:  []string{it.Prompt},
		Message: msg,
		Verdict: res.Verdict,
	}
}
