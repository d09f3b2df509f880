package domain

import "strings"

// DefaultTemplatePart is the text used for a template part nobody configured.
const DefaultTemplatePart TemplatePart = "Invoice <INV_NO> from <FROM_CO>"

// TemplatePart is free text that may contain placeholder tokens such as <INV_NO>.
type TemplatePart string

// Replacement pairs a placeholder token with the value that replaces it.
type Replacement struct {
	Placeholder string
	Value       string
}

// Materialize replaces every occurrence of each placeholder, in order.
func (p TemplatePart) Materialize(replacements []Replacement) string {
	raw := string(p)
	for _, r := range replacements {
		if r.Placeholder == "" {
			continue
		}
		raw = strings.ReplaceAll(raw, r.Placeholder, r.Value)
	}
	return raw
}

func (p TemplatePart) String() string { return string(p) }

// Template holds the subject and body formats of outgoing emails.
type Template struct {
	SubjectFormat TemplatePart `json:"subject_format"`
	BodyFormat    TemplatePart `json:"body_format"`
}

// DefaultTemplate returns a template with both parts set to DefaultTemplatePart.
func DefaultTemplate() Template {
	return Template{SubjectFormat: DefaultTemplatePart, BodyFormat: DefaultTemplatePart}
}

// Materialize returns the subject and body with replacements applied.
func (t Template) Materialize(replacements []Replacement) (subject, body string) {
	return t.SubjectFormat.Materialize(replacements), t.BodyFormat.Materialize(replacements)
}
