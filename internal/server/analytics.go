package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetAnalytics serves the full analytics report: KPIs, category and country
// breakdowns and monthly trends.
func (s *Server) GetAnalytics(c *gin.Context) {
	report, err := s.analyticsSvc.Report(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
