package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("39")).
	Padding(0, 1).
	Border(lipgloss.RoundedBorder())

// renderdemo prints a sample resume in every template style so marker
// changes can be eyeballed. The lipgloss chrome decorates the demo only;
// the resume text itself is the formatter's plain output.
func main() {
	input := sampleInput()
	for _, style := range model.Styles() {
		input.Style = style
		fmt.Println(bannerStyle.Render(string(style)))
		fmt.Println(render.Format(input))
	}
}

func sampleInput() model.ResumeInput {
	return model.ResumeInput{
		Name:       "Jordan Lee",
		Email:      "jordan.lee@example.com",
		Phone:      "+1-555-0102",
		Skills:     "Go, PostgreSQL, Docker, Kubernetes",
		Experience: "Senior Backend Engineer at Acme Logistics (2021-present)\nBackend Engineer at Blue Harbor Systems (2018-2021)",
		Education:  "BSc Computer Science, University of Texas at Austin",
	}
}
