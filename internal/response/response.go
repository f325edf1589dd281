// Package response builds the {status, message, result} envelope every
// endpoint answers with.
package response

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// Fixed envelope messages.
const (
	MessageOK           = "SERVICE SUCCESS"   // Every success
	MessageNotFound     = "ENTITY NOT FOUND"  // Missing entity or unknown caller
	MessageUnauthorized = "UNAUTHORIZED USER" // Unknown caller
	internalPrefix      = "Error => "         // Prepended to internal error messages
)

// Response is the uniform envelope. Status is the authoritative outcome and
// is mirrored on the HTTP status line by Write.
type Response struct {
	Status  int    `json:"status"`  // HTTP-style status code
	Message string `json:"message"` // Fixed or operation message
	Result  any    `json:"result"`  // Payload, null on failures
}

// Ok wraps a successful result; result may be nil.
func Ok(result any) Response {
	return Response{Status: http.StatusOK, Message: MessageOK, Result: result}
}

// NotFound reports a missing entity or an unknown caller on NotFound routes.
func NotFound() Response {
	return Response{Status: http.StatusNotFound, Message: MessageNotFound}
}

// Unauthorized reports a caller that did not resolve.
func Unauthorized() Response {
	return Response{Status: http.StatusUnauthorized, Message: MessageUnauthorized}
}

// Conflict reports a write that collides with existing data.
func Conflict(message string) Response {
	return Response{Status: http.StatusConflict, Message: message}
}

// InternalError reports a failed operation. message is sent to the client, so
// callers pass a description of the operation and log the cause themselves.
func InternalError(message string) Response {
	return Response{Status: http.StatusInternalServerError, Message: internalPrefix + message}
}

// Write sends r as JSON with a matching HTTP status.
func Write(c *gin.Context, r Response) {
	c.JSON(r.Status, r)
}

// Abort sends r and stops the handler chain.
func Abort(c *gin.Context, r Response) {
	c.AbortWithStatusJSON(r.Status, r) // Later handlers are skipped
}
