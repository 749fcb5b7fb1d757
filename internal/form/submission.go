package form

import (
	"encoding/json"

	"github.com/mind-engage/mindengage-rounds/internal/item"
)

// Submission is the snapshot of a draft taken at submit time. It is never
// modified after creation.
type Submission struct {
	item   item.Item
	fields map[string]any
}

func (s Submission) Item() item.Item { return s.item }

// String returns a text field, or "" when absent.
func (s Submission) String(name string) string {
	v, _ := s.fields[name].(string)
	return v
}

// Bool returns a checkbox field, or false when absent.
func (s Submission) Bool(name string) bool {
	v, _ := s.fields[name].(bool)
	return v
}

// Fields returns a copy of all submitted values.
func (s Submission) Fields() map[string]any {
	out := make(map[string]any, len(s.fields))
	for k, v := range s.fields {
		out[k] = v
	}
	return out
}

func (s Submission) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Item   item.Item      `json:"item"`
		Fields map[string]any `json:"fields"`
	}{s.item, s.fields})
}
