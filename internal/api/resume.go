package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/honeycarbs/gradnex/internal/domain/resume"
	"github.com/honeycarbs/gradnex/pkg/logging"
)

type optimizeRequest struct {
	Experiences []resume.Item `json:"experiences"`
	Projects    []resume.Item `json:"projects"`
}

type optimizeTextRequest struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

type ResumeHandler struct {
	service *resume.Service
	logger  *logging.Logger
}

func NewResumeHandler(service *resume.Service, logger *logging.Logger) *ResumeHandler {
	return &ResumeHandler{service: service, logger: logger}
}

// Optimize is POST /api/resume/optimize
func (h *ResumeHandler) Optimize(c *gin.Context) {
	var req optimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON format: " + err.Error()})
		return
	}

	res, err := h.service.OptimizeBatch(c.Request.Context(), req.Experiences, req.Projects)
	if errors.Is(err, resume.ErrNothingToOptimize) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Experiences or Projects array is required"})
		return
	}
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server Error optimizing resume"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":              true,
		"optimizedExperiences": res.Experiences,
		"optimizedProjects":    res.Projects,
	})
}

// OptimizeSummary is POST /api/resume/optimize-summary
func (h *ResumeHandler) OptimizeSummary(c *gin.Context) {
	h.optimizeText(c, "Server Error optimizing summary", func(c *gin.Context, req optimizeTextRequest) (string, error) {
		return h.service.OptimizeSummary(c.Request.Context(), req.Text)
	})
}

// OptimizeExperience is POST /api/resume/optimize-experience
func (h *ResumeHandler) OptimizeExperience(c *gin.Context) {
	h.optimizeText(c, "Server Error optimizing experience", func(c *gin.Context, req optimizeTextRequest) (string, error) {
		kind := resume.KindExperience
		if resume.ParseKind(req.Type) == resume.KindProject {
			kind = resume.KindProject
		}
		return h.service.OptimizeSection(c.Request.Context(), req.Text, kind)
	})
}

func (h *ResumeHandler) optimizeText(c *gin.Context, failure string, run func(*gin.Context, optimizeTextRequest) (string, error)) {
	var req optimizeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON format: " + err.Error()})
		return
	}

	out, err := run(c, req)
	if errors.Is(err, resume.ErrTextTooShort) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Text too short"})
		return
	}
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": failure})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "optimizedText": out})
}
