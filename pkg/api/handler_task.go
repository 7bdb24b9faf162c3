package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/funnel-ops/funnel/pkg/models"
)

// createTaskHandler handles POST /api/v1/tasks. The response is a
// server-sent event stream: one "data: <json>" frame per task event, ending
// with a complete event that carries either an answer or an error.
func (s *Server) createTaskHandler(c *gin.Context) {
	var req models.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Task) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task must not be empty"})
		return
	}

	h := c.Writer.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	// The emit callback runs on the driver's goroutine, which is this
	// request's goroutine: Run blocks until the task completes.
	s.runner.Run(c.Request.Context(), req, func(ev models.TaskEvent) {
		s.writeEvent(c, ev)
	})
}

func (s *Server) writeEvent(c *gin.Context, ev models.TaskEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		s.log.Error("Failed to marshal task event", "error", err)
		return
	}
	if _, err := c.Writer.WriteString("data: " + string(data) + "\n\n"); err != nil {
		// Client went away; the driver keeps running on the request
		// context until cancellation propagates.
		return
	}
	c.Writer.Flush()
}
