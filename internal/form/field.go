package form

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindText     Kind = "text"
	KindTextArea Kind = "textarea"
	KindSelect   Kind = "select"
	KindCheckbox Kind = "checkbox"
)

// Overflow decides what a field does with a value longer than MaxLen. The
// value is dropped either way; OverflowWarn also reports it.
type Overflow string

const (
	OverflowReset Overflow = "reset"
	OverflowWarn  Overflow = "warn"
)

// ParseOverflow maps "" to OverflowReset and rejects unknown names.
func ParseOverflow(s string) (Overflow, error) {
	switch o := Overflow(s); o {
	case OverflowReset, OverflowWarn:
		return o, nil
	case "":
		return OverflowReset, nil
	default:
		return "", fmt.Errorf("unknown overflow policy %q", s)
	}
}

type Field struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Kind    Kind     `json:"kind"`
	Default any      `json:"default,omitempty"` // string, or bool for checkboxes
	Options []string `json:"options,omitempty"`

	// MaxLen counts UTF-16 code units; 0 means unlimited.
	MaxLen   int      `json:"max_len,omitempty"`
	Overflow Overflow `json:"overflow,omitempty"`
}

func (f Field) zero() any {
	if f.Kind == KindCheckbox {
		if b, ok := f.Default.(bool); ok {
			return b
		}
		return false
	}
	if s, ok := f.Default.(string); ok {
		return s
	}
	return ""
}

type Schema struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func (s Schema) Validate() error {
	seen := map[string]bool{}
	var errs []error
	for _, f := range s.Fields {
		if f.Name == "" {
			errs = append(errs, errors.New("field with empty name"))
			continue
		}
		if seen[f.Name] {
			errs = append(errs, fmt.Errorf("duplicate field %q", f.Name))
		}
		seen[f.Name] = true
		switch f.Kind {
		case KindText, KindTextArea:
		case KindSelect:
			if d, ok := f.Default.(string); ok && !contains(f.Options, d) {
				errs = append(errs, fmt.Errorf("field %q: default %q not among options", f.Name, d))
			}
		case KindCheckbox:
			if _, ok := f.Default.(bool); f.Default != nil && !ok {
				errs = append(errs, fmt.Errorf("field %q: checkbox default must be bool", f.Name))
			}
		default:
			errs = append(errs, fmt.Errorf("field %q: unknown kind %q", f.Name, f.Kind))
		}
		if f.MaxLen < 0 {
			errs = append(errs, fmt.Errorf("field %q: negative max length", f.Name))
		}
		if _, err := ParseOverflow(string(f.Overflow)); err != nil {
			errs = append(errs, fmt.Errorf("field %q: %w", f.Name, err))
		}
	}
	return errors.Join(errs...)
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
