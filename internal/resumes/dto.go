package resumes

// FormatRequest carries the raw form fields. Every field may be empty; the
// style value is coerced at this boundary, never inside the formatter.
type FormatRequest struct {
	Name          string `json:"name" form:"name"`
	Email         string `json:"email" form:"email"`
	Phone         string `json:"phone" form:"phone"`
	Skills        string `json:"skills" form:"skills"`
	Experience    string `json:"experience" form:"experience"`
	Education     string `json:"education" form:"education"`
	TemplateStyle string `json:"templateStyle" form:"templateStyle"`
}

// FormatResponse returns the rendered resume. TemplateStyle echoes the
// effective style after any fallback to Classic.
type FormatResponse struct {
	FormatID      string   `json:"formatId"`
	TemplateStyle string   `json:"templateStyle"`
	MissingFields []string `json:"missingFields"`
	Resume        string   `json:"resume"`
}
