// Package present holds the display payload produced at the end of a round.
package present

import "github.com/mind-engage/mindengage-rounds/internal/grading"

// Card is what a host renders once a round has a submission. It is derived
// from the item and the submission every time and never stored.
type Card struct {
	Kind     string          `json:"kind"`
	Title    string          `json:"title"`
	Subtitle string          `json:"subtitle,omitempty"`
	Body     []string        `json:"body,omitempty"`
	Footer   []string        `json:"footer,omitempty"`
	Message  string          `json:"message,omitempty"`
	Verdict  grading.Verdict `json:"verdict,omitempty"`
}

// Lines flattens the card in reading order for text hosts.
func (c Card) Lines() []string {
	out := []string{c.Title}
	if c.Subtitle != "" {
		out = append(out, c.Subtitle)
	}
	out = append(out, c.Body...)
	out = append(out, c.Footer...)
	if c.Message != "" {
		out = append(out, c.Message)
	}
	return out
}
