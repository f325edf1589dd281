// Package auth resolves administrators and residents from credentials or
// bearer tokens and describes, per route, which resolution a route requires.
package auth

import (
	"net/http" // Headers and status codes
	"strings"  // Prefix trimming
)

// Mode selects how a route resolves its principal.
type Mode int

const (
	// None leaves the route public.
	None Mode = iota
	// Credential resolves an email and password from the JSON body.
	Credential
	// AdminToken accepts administrator tokens only.
	AdminToken
	// ResidentToken accepts resident tokens only.
	ResidentToken
	// AnyToken tries administrators first, then residents.
	AnyToken
)

// String names the mode for logs.
func (m Mode) String() string {
	switch m {
	case None:
		return "none"
	case Credential:
		return "credential"
	case AdminToken:
		return "admin-token"
	case ResidentToken:
		return "resident-token"
	case AnyToken:
		return "any-token"
	}
	return "unknown"
}

// Policy is the per-route authentication requirement. OnMissing is the
// envelope status sent when no principal resolves: http.StatusUnauthorized
// on most routes, http.StatusNotFound where the route has always answered so.
type Policy struct {
	Mode      Mode // How the caller is resolved
	OnMissing int  // Envelope status when nothing resolves
}

// Public is the policy of routes that never inspect the caller.
var Public = Policy{Mode: None}

// Login resolves the caller from the request body.
var Login = Policy{Mode: Credential, OnMissing: http.StatusUnauthorized}

// Admin requires an administrator token.
func Admin(onMissing int) Policy { return Policy{Mode: AdminToken, OnMissing: onMissing} }

// Resident requires a resident token.
func Resident(onMissing int) Policy { return Policy{Mode: ResidentToken, OnMissing: onMissing} }

// Anyone requires a token of either kind.
func Anyone(onMissing int) Policy { return Policy{Mode: AnyToken, OnMissing: onMissing} }

// TokenFromHeader reads the bearer token from Authorization, falling back to
// the Authotization spelling older clients send. A "Bearer " prefix is optional.
func TokenFromHeader(h http.Header) string {
	v := h.Get("Authorization")
	if v == "" {
		v = h.Get("Authotization") // Legacy spelling
	}
	v = strings.TrimSpace(v)
	if len(v) > 7 && strings.EqualFold(v[:7], "bearer ") {
		v = strings.TrimSpace(v[7:]) // Drop "Bearer "
	}
	return v
}
