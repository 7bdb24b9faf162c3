package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// resetSessionHandler handles POST /api/v1/sessions/:id/reset. The session
// keeps its cross-task memory but drops per-task observations.
func (s *Server) resetSessionHandler(c *gin.Context) {
	id := c.Param("id")
	if err := s.sessions.Reset(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session_id": id, "status": "reset"})
}

// deleteSessionHandler handles DELETE /api/v1/sessions/:id.
func (s *Server) deleteSessionHandler(c *gin.Context) {
	id := c.Param("id")
	if err := s.sessions.Delete(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session_id": id, "status": "deleted"})
}
