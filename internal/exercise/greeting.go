package exercise

import (
	"github.com/mind-engage/mindengage-rounds/internal/form"
	"github.com/mind-engage/mindengage-rounds/internal/item"
	"github.com/mind-engage/mindengage-rounds/internal/present"
)

const (
	KindGreeting = "greeting"

	FieldRecipient    = "recipientName"
	FieldSender       = "senderName"
	FieldMessage      = "message"
	FieldOccasion     = "occasion"
	FieldPersonalNote = "includesPersonalNote"

	personalNote = "Personal Note: Have a wonderful day!"
)

var Occasions = []string{"Birthday", "Anniversary", "Holiday"}

// Greeting builds a greeting card. It has no question, so its item is the
// zero Item.
type Greeting struct {
	schema form.Schema
}

func NewGreeting() *Greeting {
	return &Greeting{schema: form.Schema{
		Name: KindGreeting,
		Fields: []form.Field{
			{Name: FieldRecipient, Label: "Recipient's Name", Kind: form.KindText},
			{Name: FieldSender, Label: "Sender's Name", Kind: form.KindText},
			{Name: FieldMessage, Label: "Message", Kind: form.KindTextArea},
			{Name: FieldOccasion, Label: "Occasion", Kind: form.KindSelect, Options: Occasions, Default: Occasions[0]},
			{Name: FieldPersonalNote, Label: "Include Personal Note", Kind: form.KindCheckbox, Default: false},
		},
	}}
}

func (g *Greeting) Kind() string        { return KindGreeting }
func (g *Greeting) Schema() form.Schema { return g.schema }
func (g *Greeting) Source() item.Source { return item.Constant{} }

func (g *Greeting) Present(_ item.Item, sub form.Submission) present.Card {
	c := present.Card{
		Kind:     KindGreeting,
		Title:    "Greeting Card",
		Subtitle: sub.String(FieldOccasion),
		Body:     []string{sub.String(FieldMessage)},
		Footer:   []string{"From: " + sub.String(FieldSender)},
	}
	if sub.Bool(FieldPersonalNote) {
		c.Footer = append(c.Footer, personalNote)
	}
	return c
}
