package api

import (
	"errors"  // Error inspection
	"strconv" // Path parameter parsing

	"github.com/MarcoPr4do/Neighlink-Backend/internal/auth"     // Identity resolution
	"github.com/MarcoPr4do/Neighlink-Backend/internal/response" // Response envelope
	"github.com/MarcoPr4do/Neighlink-Backend/internal/service"  // Entity services
	"github.com/MarcoPr4do/Neighlink-Backend/internal/utils"    // Code generation

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Env carries the stateless collaborators handlers share. Per-request state
// (the persistence handle and the principal) lives on the gin context.
type Env struct {
	Resolver *auth.Resolver       // Principal resolution
	Codes    *utils.CodeGenerator // Department invite codes
}

// idParam parses a numeric path parameter; a malformed id names no entity
func idParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		response.Write(c, response.NotFound())
		return 0, false
	}
	return uint(v), true
}

// bindBody binds the JSON request body; failures surface as internal errors like any other fault
func bindBody(c *gin.Context, dest any) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		logrus.WithFields(logrus.Fields{
			"route": c.FullPath(), // Matched route
			"error": err.Error(),  // Binding error
		}).Warn("Invalid request body")
		response.Write(c, response.InternalError("invalid request body"))
		return false
	}
	return true
}

// fail logs err and answers with an internal error describing the operation
func fail(c *gin.Context, op string, err error) {
	logrus.WithFields(logrus.Fields{
		"route": c.FullPath(), // Matched route
		"error": err.Error(),  // Error message
	}).Error(op)
	response.Write(c, response.InternalError(op))
}

// failLookup answers NotFound for missing entities and an internal error otherwise
func failLookup(c *gin.Context, op string, err error) {
	if errors.Is(err, service.ErrNotFound) {
		response.Write(c, response.NotFound())
		return
	}
	fail(c, op, err)
}
