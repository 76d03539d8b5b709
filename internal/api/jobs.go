package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/honeycarbs/gradnex/internal/domain"
	"github.com/honeycarbs/gradnex/internal/domain/job"
	"github.com/honeycarbs/gradnex/pkg/logging"
)

type JobsHandler struct {
	service job.Service
	logger  *logging.Logger
}

func NewJobsHandler(service job.Service, logger *logging.Logger) *JobsHandler {
	return &JobsHandler{service: service, logger: logger}
}

// Search is GET /api/jobs/search?role=&location=&type=
func (h *JobsHandler) Search(c *gin.Context) {
	req := domain.SearchRequest{
		Role:     c.Query("role"),
		Location: c.Query("location"),
		Type:     c.Query("type"),
	}

	result, err := h.search(c.Request.Context(), req)
	if errors.Is(err, domain.ErrRoleRequired) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Role is required"})
		return
	}
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Server Error fetching jobs",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// search converts a panic in the merge step into an error so the caller
// still gets the jobs error shape
func (h *JobsHandler) search(ctx context.Context, req domain.SearchRequest) (result domain.SearchResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("job search panicked", "panic", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("job search panicked: %v", r)
		}
	}()
	return h.service.Search(ctx, req)
}
