package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RunQualityCheck executes the rule battery, replacing the persisted results
// of the previous run, and returns the fresh records in computed order.
func (s *Server) RunQualityCheck(c *gin.Context) {
	records, err := s.qualitySvc.RunChecks(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetQualityMetrics returns the persisted results of the latest run, ordered
// by check date descending.
func (s *Server) GetQualityMetrics(c *gin.Context) {
	records, err := s.qualitySvc.Metrics(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}
