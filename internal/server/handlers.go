package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ZanzyTHEbar/career-compass/internal/assessment"
	"github.com/ZanzyTHEbar/career-compass/internal/cache"
	apperrors "github.com/ZanzyTHEbar/career-compass/internal/errors"
	"github.com/ZanzyTHEbar/career-compass/internal/questionnaires"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status         string                 `json:"status"`
	Timestamp      string                 `json:"timestamp"`
	Version        string                 `json:"version"`
	Questionnaires []string               `json:"questionnaires"`
	Metrics        map[string]interface{} `json:"metrics"`
	Compression    map[string]interface{} `json:"compression"`
	RateLimit      map[string]interface{} `json:"rate_limit,omitempty"`
}

// ListResponse is the body of GET /api/questionnaires
type ListResponse struct {
	Questionnaires []questionnaires.Summary `json:"questionnaires"`
}

// QuestionnaireResponse describes one questionnaire as presented to a client.
// Option value tables are never exposed.
type QuestionnaireResponse struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Categories  []assessment.Category `json:"categories"`
	Questions   []assessment.Question `json:"questions"`
}

// AssessRequest is the body of POST /api/questionnaires/{id}/results
type AssessRequest struct {
	Answers []assessment.Answer `json:"answers" binding:"required"`
}

// listQuestionnaires godoc
// @Summary      List questionnaires
// @Tags         questionnaires
// @Produce      json
// @Success      200  {object}  ListResponse
// @Failure      429  {object}  apperrors.ErrorResponse
// @Router       /api/questionnaires [get]
func (s *Server) listQuestionnaires(c *gin.Context) {
	c.JSON(http.StatusOK, ListResponse{Questionnaires: s.registry.List()})
}

// getQuestionnaire godoc
// @Summary      Get a questionnaire's questions
// @Tags         questionnaires
// @Produce      json
// @Param        id   path      string  true  "Questionnaire id"
// @Success      200  {object}  QuestionnaireResponse
// @Failure      404  {object}  apperrors.ErrorResponse
// @Router       /api/questionnaires/{id} [get]
func (s *Server) getQuestionnaire(c *gin.Context) {
	engine, ok := s.engine(c)
	if !ok {
		return
	}

	q := engine.Questionnaire()
	c.JSON(http.StatusOK, QuestionnaireResponse{
		ID:          q.ID,
		Title:       q.Title,
		Description: q.Description,
		Categories:  q.Scale.Categories,
		Questions:   q.Bank.Questions(),
	})
}

// submitAnswers godoc
// @Summary      Score an answer set
// @Description  Scores the answers against the questionnaire and returns the full result. Unknown question ids and unusable values are tolerated.
// @Tags         questionnaires
// @Accept       json
// @Produce      json
// @Param        id       path      string         true  "Questionnaire id"
// @Param        request  body      AssessRequest  true  "Answers"
// @Success      200      {object}  assessment.Result
// @Failure      400      {object}  apperrors.ErrorResponse
// @Failure      404      {object}  apperrors.ErrorResponse
// @Failure      429      {object}  apperrors.ErrorResponse
// @Router       /api/questionnaires/{id}/results [post]
func (s *Server) submitAnswers(c *gin.Context) {
	engine, ok := s.engine(c)
	if !ok {
		return
	}

	var req AssessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Abort(c, bindError(err))
		return
	}

	// Hits replay the stored result. The engine observer, and with it the
	// assessment and issue metrics, only sees evaluations.
	start := time.Now()
	key := cache.Key(engine.ID(), req.Answers)
	if s.cache != nil {
		if data, hit := s.cache.Get(key); hit {
			s.metrics.IncrementCacheHit()
			s.logger.CacheLogger("get", key, true, s.cache.Size())
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", data)
			return
		}
		s.metrics.IncrementCacheMiss()
	}

	res := engine.Assess(req.Answers)
	if err := c.Request.Context().Err(); err != nil {
		apperrors.Abort(c, err)
		return
	}

	data, err := json.Marshal(res)
	if err != nil {
		apperrors.Abort(c, apperrors.NewInternalError("encode result", err))
		return
	}
	if s.cache != nil {
		s.cache.Set(key, data)
		c.Header("X-Cache", "MISS")
	}

	primary := make([]string, len(res.Primary))
	for i, cat := range res.Primary {
		primary[i] = string(cat.ID)
	}
	s.logger.AssessmentLogger(engine.ID(), res.Answered, res.Total, primary, time.Since(start), false)

	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

func (s *Server) engine(c *gin.Context) (*assessment.Engine, bool) {
	id := c.Param("id")
	engine, ok := s.registry.Get(id)
	if !ok {
		apperrors.Abort(c, apperrors.NewNotFoundError("questionnaire", id))
		return nil, false
	}
	return engine, true
}

// bindError reports binding tag failures per field and anything else as a
// malformed payload
func bindError(err error) *apperrors.AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewValidationError("invalid answer payload", err.Error())
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fmt.Sprintf("failed %q", fe.Tag())
	}
	return apperrors.NewValidationErrorWithMap(fields)
}
