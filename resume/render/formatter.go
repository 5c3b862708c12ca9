package render

import (
	"strings"
	"unicode/utf8"

	"resume-builder/resume/model"
	"resume-builder/resume/skills"
)

// Format renders the input as a single plain-text resume document. The
// output always contains, in order, a header (name plus contact line) and
// the Skills, Experience, and Education sections, each under a
// style-specific heading. Empty fields render as empty content under their
// heading. Format is pure and keeps no state between calls; an unmapped
// style renders as Classic.
func Format(input model.ResumeInput) string {
	st := styleFor(input.Style)

	blocks := []string{
		header(input),
		section(st, "Skills", skillsContent(input.Skills, st)),
		section(st, "Experience", input.Experience),
		section(st, "Education", input.Education),
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

func header(input model.ResumeInput) string {
	return input.Name + "\n" + ContactLine(input.Email, input.Phone)
}

// ContactLine joins the non-empty contact parts into a single line.
func ContactLine(email, phone string) string {
	parts := make([]string, 0, 2)
	if email != "" {
		parts = append(parts, email)
	}
	if phone != "" {
		parts = append(parts, phone)
	}
	return strings.Join(parts, ContactSeparator)
}

func section(st SectionStyle, name, content string) string {
	head := heading(st, name)
	if content == "" {
		return head
	}
	return head + "\n" + content
}

func heading(st SectionStyle, name string) string {
	title := name
	if st.UppercaseHeading {
		title = strings.ToUpper(title)
	}
	line := st.HeadingPrefix + title + st.HeadingSuffix
	if st.Underline != "" {
		line += "\n" + strings.Repeat(st.Underline, utf8.RuneCountInString(line))
	}
	return line
}

func skillsContent(raw string, st SectionStyle) string {
	tokens := skills.Split(raw)
	if len(tokens) == 0 {
		return ""
	}
	if st.Bullet == "" {
		return skills.Join(tokens)
	}
	lines := make([]string, len(tokens))
	for i, token := range tokens {
		lines[i] = st.Bullet + token
	}
	return strings.Join(lines, "\n")
}
