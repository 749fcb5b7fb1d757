package form

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/mind-engage/mindengage-rounds/internal/item"
)

var (
	ErrUnknownField = errors.New("unknown field")
	ErrInvalidValue = errors.New("invalid field value")
	ErrSubmitted    = errors.New("form already submitted")
)

type State string

const (
	StateEditing   State = "editing"
	StateSubmitted State = "submitted"
)

// ValidationWarning reports a value that was dropped at change time.
type ValidationWarning struct {
	Field   string `json:"field"`
	MaxLen  int    `json:"max_len"`
	Message string `json:"message"`
}

func (w ValidationWarning) Error() string { return w.Message }

// Form collects one Draft for one round. It is not safe for concurrent use;
// callers dispatch events one at a time.
type Form struct {
	schema   Schema
	item     item.Item
	onSubmit func(Submission)

	state   State
	draft   map[string]any
	warning *ValidationWarning
}

// New starts a form in the Editing state with a draft seeded from field
// defaults. onSubmit may be nil.
func New(schema Schema, it item.Item, onSubmit func(Submission)) *Form {
	d := make(map[string]any, len(schema.Fields))
	for _, f := range schema.Fields {
		d[f.Name] = f.zero()
	}
	return &Form{schema: schema, item: it, onSubmit: onSubmit, state: StateEditing, draft: d}
}

func (f *Form) State() State { return f.state }

func (f *Form) Item() item.Item { return f.item }

// Warning returns the warning raised by the last change, if any.
func (f *Form) Warning() *ValidationWarning { return f.warning }

// Value returns the current draft value of a field.
func (f *Form) Value(name string) (any, bool) {
	v, ok := f.draft[name]
	return v, ok
}

// SetField applies one change event. Values longer than the field's MaxLen
// reset the field to "" instead of being kept or truncated.
func (f *Form) SetField(name, raw string) error {
	fd, err := f.editable(name)
	if err != nil {
		return err
	}
	f.warning = nil
	if fd.Kind == KindCheckbox {
		b, err := parseCheck(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		f.draft[name] = b
		return nil
	}
	if fd.MaxLen > 0 && textLen(raw) > fd.MaxLen {
		f.draft[name] = ""
		if fd.Overflow == OverflowWarn {
			f.warning = &ValidationWarning{
				Field:   name,
				MaxLen:  fd.MaxLen,
				Message: fmt.Sprintf("%s must be at most %d characters", labelOr(fd), fd.MaxLen),
			}
		}
		return nil
	}
	f.draft[name] = raw
	return nil
}

// SetChecked applies a checkbox change event.
func (f *Form) SetChecked(name string, checked bool) error {
	fd, err := f.editable(name)
	if err != nil {
		return err
	}
	if fd.Kind != KindCheckbox {
		return fmt.Errorf("%s is not a checkbox: %w", name, ErrInvalidValue)
	}
	f.warning = nil
	f.draft[name] = checked
	return nil
}

// Submit snapshots the draft and hands it to the onSubmit callback. The form
// is finished afterwards.
func (f *Form) Submit() error {
	if f.state == StateSubmitted {
		return ErrSubmitted
	}
	sub := Submission{item: f.item, fields: make(map[string]any, len(f.draft))}
	for k, v := range f.draft {
		sub.fields[k] = v
	}
	f.state = StateSubmitted
	if f.onSubmit != nil {
		f.onSubmit(sub)
	}
	return nil
}

func (f *Form) editable(name string) (Field, error) {
	if f.state == StateSubmitted {
		return Field{}, ErrSubmitted
	}
	fd, ok := f.schema.Field(name)
	if !ok {
		return Field{}, fmt.Errorf("%q: %w", name, ErrUnknownField)
	}
	return fd, nil
}

func parseCheck(raw string) (bool, error) {
	s := strings.TrimSpace(raw)
	switch strings.ToLower(s) {
	case "":
		return false, nil
	case "on":
		return true, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, ErrInvalidValue
	}
	return b, nil
}

func labelOr(f Field) string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// textLen counts UTF-16 code units, the length a browser text input reports.
func textLen(s string) int {
	return len(utf16.Encode([]rune(s)))
}
