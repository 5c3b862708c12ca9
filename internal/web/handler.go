package web

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/resume/model"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Templates parses the embedded page templates for gin's HTML renderer.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))
}

// Handler serves the resume form page. It mirrors the form boundary: field
// values flow from the request into the formatter and the result string back
// into the output block, with no state kept between requests.
type Handler struct {
	svc *resumes.Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *resumes.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the page routes on the engine root.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.index)
	r.POST("/generate", h.generate)
}

type page struct {
	Form        resumes.FormatRequest
	Styles      []model.TemplateStyle
	Selected    model.TemplateStyle
	Resume      string
	MissingLine string
}

func (h *Handler) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.tmpl", page{
		Styles:   model.Styles(),
		Selected: model.StyleClassic,
	})
}

func (h *Handler) generate(c *gin.Context) {
	var req resumes.FormatRequest
	if err := c.ShouldBind(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid form submission", nil)
		return
	}

	result := h.svc.Format(req)
	c.Set("formatId", result.FormatID)
	c.Set("templateStyle", string(result.Style))

	c.HTML(http.StatusOK, "index.tmpl", page{
		Form:        req,
		Styles:      model.Styles(),
		Selected:    result.Style,
		Resume:      result.Resume,
		MissingLine: strings.Join(result.Missing, ", "),
	})
}
