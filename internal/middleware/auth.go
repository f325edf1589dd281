package middleware

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes

	"github.com/MarcoPr4do/Neighlink-Backend/internal/auth"     // Identity resolution
	"github.com/MarcoPr4do/Neighlink-Backend/internal/response" // Response envelope

	"github.com/gin-gonic/gin"         // Gin web framework
	"github.com/gin-gonic/gin/binding" // Body binding that can be replayed
	"github.com/sirupsen/logrus"       // Logrus for structured logging
)

const principalKey = "principal" // Context key for the resolved principal

// credentials is the login body
type credentials struct {
	Email    string `json:"email"`    // Login email
	Password string `json:"password"` // Plaintext password, compared against the stored hash
}

// Authenticate enforces a route's policy and stores the resolved principal in the context
func Authenticate(resolver *auth.Resolver, policy auth.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		if policy.Mode == auth.None {
			c.Next() // Public route
			return
		}
		svc := ServicesFrom(c) // Per-request services
		var (
			principal *auth.Principal
			err       error
		)
		if policy.Mode == auth.Credential {
			var creds credentials
			// Bind with a replayable body so the handler may read it again
			if bindErr := c.ShouldBindBodyWith(&creds, binding.JSON); bindErr != nil {
				response.Abort(c, response.InternalError("invalid request body"))
				return
			}
			principal, err = resolver.ByCredentials(svc, creds.Email, creds.Password)
		} else {
			token := auth.TokenFromHeader(c.Request.Header) // Authorization or Authotization
			principal, err = resolver.ByToken(c.Request.Context(), svc, policy.Mode, token)
		}
		if errors.Is(err, auth.ErrUnresolved) {
			// Each route decides whether an unknown caller is unauthorized or not found
			if policy.OnMissing == http.StatusNotFound {
				response.Abort(c, response.NotFound())
			} else {
				response.Abort(c, response.Unauthorized())
			}
			return
		}
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"mode":  policy.Mode.String(), // Policy mode
				"path":  c.FullPath(),         // Route
				"error": err.Error(),          // Error message
			}).Error("Authentication failed") // Log lookup failure
			response.Abort(c, response.InternalError("failed to authenticate"))
			return
		}
		c.Set(principalKey, principal) // Store principal in context
		c.Next()                       // Proceed to the next handler
	}
}

// PrincipalFrom returns the principal stored by Authenticate, or nil on public routes
func PrincipalFrom(c *gin.Context) *auth.Principal {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(*auth.Principal); ok {
			return p
		}
	}
	return nil
}
