package contract

import (
	"strings"

	"resume-builder/resume/model"
	"resume-builder/resume/skills"
)

// MissingFields reports which input fields were left empty, in a fixed
// field order. Presence is the only check: empty fields are still rendered,
// so callers use this to surface hints, never to reject input.
func MissingFields(input model.ResumeInput) []string {
	missing := make([]string, 0, 6)
	if !hasValue(input.Name) {
		missing = append(missing, "name")
	}
	if !hasValue(input.Email) {
		missing = append(missing, "email")
	}
	if !hasValue(input.Phone) {
		missing = append(missing, "phone")
	}
	if len(skills.Split(input.Skills)) == 0 {
		missing = append(missing, "skills")
	}
	if !hasValue(input.Experience) {
		missing = append(missing, "experience")
	}
	if !hasValue(input.Education) {
		missing = append(missing, "education")
	}
	return missing
}

func hasValue(value string) bool {
	return strings.TrimSpace(value) != ""
}
