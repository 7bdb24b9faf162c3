package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/funnel-ops/funnel/pkg/models"
)

// listAgentsHandler handles GET /api/v1/agents. The force query parameter
// bypasses the discovery cache; probe=true additionally pings each agent and
// reports reachability.
func (s *Server) listAgentsHandler(c *gin.Context) {
	force, _ := strconv.ParseBool(c.Query("force"))
	probe, _ := strconv.ParseBool(c.Query("probe"))

	agents := s.agents.Discover(c.Request.Context(), force)
	if agents == nil {
		agents = []*models.AgentCapabilities{}
	}

	resp := gin.H{
		"agents": agents,
		"count":  len(agents),
	}
	if probe && s.prober != nil {
		reachability := make(map[string]string, len(agents))
		for id, err := range s.prober.PingAll(c.Request.Context()) {
			if err != nil {
				reachability[id] = err.Error()
			} else {
				reachability[id] = "ok"
			}
		}
		resp["reachability"] = reachability
	}
	c.JSON(http.StatusOK, resp)
}
