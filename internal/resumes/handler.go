package resumes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/respond"
)

// Handler exposes the format endpoint.
type Handler struct {
	svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers resume routes on the group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/format", h.format)
}

func (h *Handler) format(c *gin.Context) {
	var req FormatRequest
	if err := c.ShouldBind(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	result := h.svc.Format(req)
	c.Set("formatId", result.FormatID)
	c.Set("templateStyle", string(result.Style))

	respond.JSON(c, http.StatusOK, FormatResponse{
		FormatID:      result.FormatID,
		TemplateStyle: string(result.Style),
		MissingFields: result.Missing,
		Resume:        result.Resume,
	})
}
