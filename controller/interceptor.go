package controller

import (
	"github.com/gin-gonic/gin"
	uuid "github.com/satori/go.uuid"
)

const RequestIdKey = "request_id"

// RequestIdMiddleware tags every request with a uuid. Handlers pick it up
// through the context for their log fields, and it is echoed back in the
// X-Request-Id response header.
func RequestIdMiddleware(c *gin.Context) {
	id := uuid.NewV4().String()
	c.Set(RequestIdKey, id)
	c.Writer.Header().Set("X-Request-Id", id)
	c.Next()
}

// CorsMiddleware applies the permissive cross-origin policy: any origin on
// every route. Pre-flight probes are answered with an empty 204 without
// reaching the handlers.
func CorsMiddleware(c *gin.Context) {
	c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
	c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
	if c.Request.Method == "OPTIONS" {
		c.AbortWithStatus(204)
		return
	}
	c.Next()
}
