package render

import "resume-builder/resume/model"

// SectionStyle captures the markers a template style applies around section
// headings and skill entries.
type SectionStyle struct {
	HeadingPrefix    string
	HeadingSuffix    string
	UppercaseHeading bool
	Underline        string // repeated under the heading when non-empty
	Bullet           string // per-skill marker; empty renders one comma-joined line
}

// StyleMap centralizes the markers for each template style. Styles change
// presentation only; section content and order are fixed by Format.
var StyleMap = map[model.TemplateStyle]SectionStyle{
	model.StyleClassic: {
		HeadingSuffix: ":",
	},
	model.StyleModern: {
		UppercaseHeading: true,
		Underline:        "-",
		Bullet:           "- ",
	},
	model.StyleCreative: {
		HeadingPrefix: "✦ ",
		HeadingSuffix: " ✦",
		Bullet:        "★ ",
	},
}

// ContactSeparator joins the email and phone parts of the contact line.
const ContactSeparator = " | "

func styleFor(style model.TemplateStyle) SectionStyle {
	if st, ok := StyleMap[style]; ok {
		return st
	}
	return StyleMap[model.StyleClassic]
}
