package resumes

import (
	"strings"

	"github.com/google/uuid"

	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/resume/contract"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

// FormatResult is the outcome of one format invocation.
type FormatResult struct {
	FormatID string
	Style    model.TemplateStyle
	Fallback bool
	Missing  []string
	Resume   string
}

// Service turns raw form fields into a rendered resume. It holds no state;
// each invocation is independent and safe for concurrent callers.
type Service struct{}

// NewService constructs a Service.
func NewService() *Service {
	return &Service{}
}

// Format coerces the request into a ResumeInput, renders it, and records
// telemetry. It never fails: every request value, including all-empty
// input, produces a document.
func (s *Service) Format(req FormatRequest) FormatResult {
	start := metrics.NowMillis()

	style, known := model.ParseTemplateStyle(req.TemplateStyle)
	fallback := !known && strings.TrimSpace(req.TemplateStyle) != ""
	input := model.ResumeInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Skills:     req.Skills,
		Experience: req.Experience,
		Education:  req.Education,
		Style:      style,
	}

	result := FormatResult{
		FormatID: uuid.NewString(),
		Style:    style,
		Fallback: fallback,
		Missing:  contract.MissingFields(input),
		Resume:   render.Format(input),
	}

	metrics.IncFormatRequest()
	if fallback {
		metrics.IncTemplateFallback()
	}
	metrics.ObserveFormatDurationMs(metrics.NowMillis() - start)

	telemetry.Info("resume.format", map[string]any{
		"format_id":      result.FormatID,
		"template_style": string(style),
		"fallback":       fallback,
		"missing_fields": len(result.Missing),
		"output_bytes":   len(result.Resume),
	})

	return result
}
