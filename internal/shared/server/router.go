package server

import (
	"github.com/gin-gonic/gin"

	"resume-builder/internal/resumes"
	"resume-builder/internal/services/health"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/web"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigins),
	)
	r.SetHTMLTemplate(web.Templates())

	formatSvc := resumes.NewService()
	resumeHandler := resumes.NewHandler(formatSvc)
	webHandler := web.NewHandler(formatSvc)
	healthSvc := health.NewService()

	limiter := middleware.NewRateLimiter(nil)
	formatRule := middleware.RateLimitRule{Rate: cfg.FormatRatePerSec, Burst: cfg.FormatBurst}

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.OK(c, healthSvc.Status())
	})
	limited := api.Group("")
	limited.Use(middleware.RateLimit(formatRule, limiter))
	resumeHandler.RegisterRoutes(limited)

	r.GET("/metrics", metrics.Handler())
	webHandler.RegisterRoutes(r)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
