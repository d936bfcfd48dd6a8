package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseIDParam parses the :id path parameter. A non-numeric ID behaves like
// an unmatched route: the caller responds 404, not 400.
func parseIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
