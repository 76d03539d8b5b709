package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/honeycarbs/gradnex/internal/domain/job"
	"github.com/honeycarbs/gradnex/internal/domain/resume"
	"github.com/honeycarbs/gradnex/pkg/logging"
)

const mcpSessionHeader = "Mcp-Session-Id"

// Deps are the services the HTTP surface exposes. MCP may be nil.
type Deps struct {
	Jobs   job.Service
	Resume *resume.Service
	MCP    http.Handler
}

// NewRouter builds the gin engine with every route mounted
func NewRouter(log *logging.Logger, deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), RequestLogger(log), Recovery(log))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", RequestIDHeader, mcpSessionHeader}
	corsCfg.ExposeHeaders = []string{RequestIDHeader, mcpSessionHeader}
	r.Use(cors.New(corsCfg))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running...")
	})
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := r.Group("/api")
	{
		jobs := NewJobsHandler(deps.Jobs, log)
		api.GET("/jobs/search", jobs.Search)

		res := NewResumeHandler(deps.Resume, log)
		api.POST("/resume/optimize", res.Optimize)
		api.POST("/resume/optimize-summary", res.OptimizeSummary)
		api.POST("/resume/optimize-experience", res.OptimizeExperience)
	}

	if deps.MCP != nil {
		r.Any("/mcp/stream", gin.WrapH(deps.MCP))
	}

	return r
}
