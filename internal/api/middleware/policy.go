package middleware

import "strings"

// AccessLevel is the authentication state a rule requires.
type AccessLevel int

const (
	// LevelPublic lets the request through without a token.
	LevelPublic AccessLevel = iota
	// LevelAuthenticated requires a valid, unexpired token bearing at
	// least one role.
	LevelAuthenticated
)

// Rule matches requests by optional method and path prefix.
// An empty Method matches every method.
type Rule struct {
	Method string
	Prefix string
	Level  AccessLevel
}

// Policy is a small ordered rule table evaluated top to bottom; the first
// matching rule wins. Unmatched paths default to LevelAuthenticated.
type Policy struct {
	rules []Rule
}

func NewPolicy(rules ...Rule) Policy {
	return Policy{rules: rules}
}

// DefaultPolicy returns the service's access table. User creation and the
// welcome path are deliberately open; everything else needs a token.
func DefaultPolicy() Policy {
	return NewPolicy(
		Rule{Prefix: "/auth/welcome", Level: LevelPublic},
		Rule{Prefix: "/auth/login", Level: LevelPublic},
		Rule{Method: "POST", Prefix: "/user", Level: LevelPublic},
		Rule{Prefix: "/health", Level: LevelPublic},
		Rule{Prefix: "/metrics", Level: LevelPublic},
		Rule{Prefix: "/swagger", Level: LevelPublic},
	)
}

// LevelFor resolves the access level for a request.
func (p Policy) LevelFor(method, path string) AccessLevel {
	for _, r := range p.rules {
		if r.Method != "" && r.Method != method {
			continue
		}
		if strings.HasPrefix(path, r.Prefix) {
			return r.Level
		}
	}
	return LevelAuthenticated
}
