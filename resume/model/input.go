package model

import "strings"

// TemplateStyle selects the presentation markers applied when rendering a
// resume. It controls formatting only, never which fields appear or their
// order.
type TemplateStyle string

const (
	StyleClassic  TemplateStyle = "Classic"
	StyleModern   TemplateStyle = "Modern"
	StyleCreative TemplateStyle = "Creative"
)

// Styles lists the supported template styles in display order.
func Styles() []TemplateStyle {
	return []TemplateStyle{StyleClassic, StyleModern, StyleCreative}
}

// ParseTemplateStyle coerces a raw form value into a TemplateStyle. The
// second return reports whether raw named a known style; anything else,
// including the empty string, falls back to Classic rather than failing.
func ParseTemplateStyle(raw string) (TemplateStyle, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "classic":
		return StyleClassic, true
	case "modern":
		return StyleModern, true
	case "creative":
		return StyleCreative, true
	default:
		return StyleClassic, false
	}
}

// ResumeInput is the flat record collected by the form. Every text field may
// be empty; coercion of the raw style value happens at the boundary via
// ParseTemplateStyle, never inside the formatter.
type ResumeInput struct {
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Phone      string        `json:"phone"`
	Skills     string        `json:"skills"`
	Experience string        `json:"experience"`
	Education  string        `json:"education"`
	Style      TemplateStyle `json:"templateStyle"`
}
