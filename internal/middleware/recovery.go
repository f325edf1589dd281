package middleware

import (
	"fmt" // Panic formatting

	"github.com/MarcoPr4do/Neighlink-Backend/internal/response" // Response envelope

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Recovery turns a panic in any handler into an internal error envelope
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logrus.WithFields(logrus.Fields{
			"method": c.Request.Method,      // HTTP method
			"path":   c.Request.URL.Path,    // Request path
			"panic":  fmt.Sprint(recovered), // Recovered value
		}).Error("Handler panicked")
		response.Abort(c, response.InternalError("unexpected failure"))
	})
}
