package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *Handler) mwMetrics(c *gin.Context) {
	start := time.Now()

	c.Next()

	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}

	h.metrics.ObserveRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
}
