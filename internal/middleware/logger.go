package middleware

import (
	"time" // Request latency

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// RequestLogger logs every request with logrus once it completes
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		entry := logrus.WithFields(logrus.Fields{
			"method":  c.Request.Method,   // HTTP method
			"path":    c.Request.URL.Path, // Request path
			"route":   c.FullPath(),       // Matched route
			"status":  c.Writer.Status(),  // Response status
			"latency": time.Since(start),  // Time spent
			"client":  c.ClientIP(),       // Caller address
		})
		if c.Writer.Status() >= 500 {
			entry.Warn("Request failed")
			return
		}
		entry.Info("Request handled")
	}
}
