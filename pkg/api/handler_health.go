package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/funnel-ops/funnel/pkg/version"
)

const healthCheckTimeout = 5 * time.Second

// healthHandler handles GET /health. Only the orchestrator's own components
// are checked; the LLM sidecar and remote agents are external and excluded so
// a supervisor does not restart the orchestrator for their outages.
func (s *Server) healthHandler(c *gin.Context) {
	status := "healthy"
	httpStatus := http.StatusOK
	checks := gin.H{}

	if s.dbPing != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()
		if err := s.dbPing(ctx); err != nil {
			status = "degraded"
			httpStatus = http.StatusServiceUnavailable
			checks["database"] = gin.H{"status": "unhealthy", "message": err.Error()}
		} else {
			checks["database"] = gin.H{"status": "healthy"}
		}
	}

	c.JSON(httpStatus, gin.H{
		"status":   status,
		"version":  version.Full(),
		"sessions": len(s.sessions.IDs()),
		"checks":   checks,
	})
}

// modelStatusHandler handles GET /api/v1/model/status.
func (s *Server) modelStatusHandler(c *gin.Context) {
	if s.model == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "model status unavailable"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	st, err := s.model.ModelStatus(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, st)
}
