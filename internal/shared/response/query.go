package response

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// maxQueryInt bounds page and page_size so offset arithmetic cannot overflow.
const maxQueryInt = 10000

func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.DefaultQuery(key, strconv.Itoa(def)))
	if err != nil || v < 1 {
		return def
	}
	if v > maxQueryInt {
		return maxQueryInt
	}
	return v
}
