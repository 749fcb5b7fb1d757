package form

type FieldView struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Kind    Kind     `json:"kind"`
	Value   any      `json:"value"`
	Options []string `json:"options,omitempty"`
}

type View struct {
	Schema  string             `json:"schema"`
	Prompt  string             `json:"prompt,omitempty"`
	State   State              `json:"state"`
	Fields  []FieldView        `json:"fields"`
	Warning *ValidationWarning `json:"warning,omitempty"`
}

// View projects the current form state for rendering.
func (f *Form) View() View {
	v := View{
		Schema:  f.schema.Name,
		Prompt:  f.item.Prompt,
		State:   f.state,
		Fields:  make([]FieldView, 0, len(f.schema.Fields)),
		Warning: f.warning,
	}
	for _, fd := range f.schema.Fields {
		v.Fields = append(v.Fields, FieldView{
			Name:    fd.Name,
			Label:   fd.Label,
			Kind:    fd.Kind,
			Value:   f.draft[fd.Name],
			Options: fd.Options,
		})
	}
	return v
}
