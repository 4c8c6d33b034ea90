package domain

import "fmt"

// Scope partitions subjects, exposures, and conversions so that staging
// traffic never mixes into production statistics. It is always passed
// explicitly; there is no ambient "current scope".
type Scope string

const (
	ScopeProduction Scope = "production"
	ScopeStaging    Scope = "staging"
)

// Values implements the ent enum interface.
func (Scope) Values() []string {
	return []string{string(ScopeProduction), string(ScopeStaging)}
}

// ParseScope converts a string into a Scope.
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case ScopeProduction, ScopeStaging:
		return Scope(s), nil
	default:
		return "", fmt.Errorf("invalid scope %q", s)
	}
}

// String returns the scope name.
func (s Scope) String() string {
	return string(s)
}
