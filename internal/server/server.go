package server

import (
	"net/http"
	"time"

	"github.com/ZanzyTHEbar/career-compass/internal/assessment"
	"github.com/ZanzyTHEbar/career-compass/internal/cache"
	apperrors "github.com/ZanzyTHEbar/career-compass/internal/errors"
	"github.com/ZanzyTHEbar/career-compass/internal/middleware"
	"github.com/ZanzyTHEbar/career-compass/internal/monitoring"
	"github.com/ZanzyTHEbar/career-compass/internal/questionnaires"
	"github.com/ZanzyTHEbar/career-compass/internal/ratelimit"
	"github.com/ZanzyTHEbar/career-compass/internal/security"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/ZanzyTHEbar/career-compass/docs"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// Options wires the server's collaborators. Registry, Metrics and Logger are
// required; a nil Cache or Limiter disables that feature.
type Options struct {
	Registry *questionnaires.Registry
	Cache    *cache.ResultCache
	Limiter  *ratelimit.RateLimiter
	Metrics  *monitoring.Metrics
	Logger   *monitoring.Logger
	Security security.SecurityConfig
}

// Server exposes the assessment engines over HTTP. It keeps no answer state
// between requests.
type Server struct {
	registry *questionnaires.Registry
	cache    *cache.ResultCache
	limiter  *ratelimit.RateLimiter
	metrics  *monitoring.Metrics
	logger   *monitoring.Logger
	security *security.SecurityMiddleware
	compress *middleware.CompressionMiddleware
}

// New creates a server from its options
func New(opts Options) *Server {
	return &Server{
		registry: opts.Registry,
		cache:    opts.Cache,
		limiter:  opts.Limiter,
		metrics:  opts.Metrics,
		logger:   opts.Logger,
		security: security.NewSecurityMiddleware(opts.Security),
		compress: middleware.NewCompressionMiddleware(middleware.DefaultCompressionConfig()),
	}
}

// EngineOptions returns the engine options that route engine diagnostics to
// the service logger and metrics
func EngineOptions(logger *monitoring.Logger, metrics *monitoring.Metrics) []assessment.EngineOption {
	return []assessment.EngineOption{
		assessment.WithLogger(logger.Logger),
		assessment.WithObserver(func(res assessment.Result, issues []assessment.Issue) {
			kinds := make([]string, len(issues))
			for i, is := range issues {
				kinds[i] = string(is.Kind)
			}
			metrics.RecordAssessment(res.Questionnaire, res.Complete, kinds)
		}),
	}
}

// Router builds the gin engine with every middleware and route
func (s *Server) Router() *gin.Engine {
	r := gin.New()

	r.Use(s.compress.Handler())
	r.Use(apperrors.RecoveryHandler())
	r.Use(monitoring.RequestIDMiddleware())
	r.Use(monitoring.MonitoringMiddleware(s.metrics, s.logger))
	r.Use(monitoring.SecurityMonitoringMiddleware(s.logger))
	r.Use(apperrors.ErrorHandler())
	r.Use(s.security.Handlers()...)

	r.GET("/health", s.health)
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	if s.limiter != nil {
		api.Use(s.limiter.IPRateLimitMiddleware())
	}
	api.GET("/questionnaires", s.listQuestionnaires)
	api.GET("/questionnaires/:id", s.getQuestionnaire)
	api.POST("/questionnaires/:id/results", s.submitAnswers)

	r.GET("/cache/stats", s.cacheStats)

	return r
}

// health godoc
// @Summary      Service health
// @Tags         system
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /health [get]
func (s *Server) health(c *gin.Context) {
	resp := HealthResponse{
		Status:         "ok",
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		Version:        Version,
		Questionnaires: s.registry.IDs(),
		Metrics:        s.metrics.GetStats(),
		Compression:    s.compress.GetStats(),
	}
	if s.limiter != nil {
		resp.RateLimit = s.limiter.GetStats()
	}
	c.JSON(http.StatusOK, resp)
}

// cacheStats godoc
// @Summary      Result cache statistics
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /cache/stats [get]
func (s *Server) cacheStats(c *gin.Context) {
	if s.cache == nil {
		c.JSON(http.StatusOK, gin.H{"enabled": false})
		return
	}
	stats := s.cache.Stats()
	stats["enabled"] = true
	c.JSON(http.StatusOK, stats)
}
