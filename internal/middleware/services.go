package middleware

import (
	"github.com/MarcoPr4do/Neighlink-Backend/internal/service" // Entity services

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

const servicesKey = "services" // Context key for the per-request services

// Services binds a fresh service bundle to each request's context
func Services(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(servicesKey, service.New(db.WithContext(c.Request.Context()))) // Handle scoped to this request
		c.Next()
	}
}

// ServicesFrom returns the request's service bundle
func ServicesFrom(c *gin.Context) *service.Services {
	return c.MustGet(servicesKey).(*service.Services)
}
