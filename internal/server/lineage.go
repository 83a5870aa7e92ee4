package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetLineage serves the static lineage description.
func (s *Server) GetLineage(c *gin.Context) {
	c.JSON(http.StatusOK, s.lineageSvc.Get())
}
