package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prodigylabs/programs-api/internal/constants"
)

// parseIDParam parses a numeric path parameter.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// parseDate parses a YYYY-MM-DD wire date.
func parseDate(value string) (time.Time, error) {
	return time.Parse(constants.DateFormat, value)
}
