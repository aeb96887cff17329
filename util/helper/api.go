package helper_util

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetIDParam parses the named path parameter as a base-10 int64.
func GetIDParam(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
