// Package auth verifies bearer tokens presented to the risk worker's gRPC API.
package auth

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// ScopeAnalyze grants access to on-demand risk analysis.
const ScopeAnalyze = "risk:analyze"

// Claims represents the JWT claims accepted by the worker.
type Claims struct {
	jwt.RegisteredClaims
	Scopes []string `json:"scopes"`
}

// HasScope checks if the claims include the specified scope.
func (c Claims) HasScope(scope string) bool {
	return slices.Contains(c.Scopes, scope)
}
