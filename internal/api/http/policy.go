package http

import "strings"

// RoutePolicy classifies a route prefix as public or protected.
type RoutePolicy int

const (
	// PolicyPublic routes are served regardless of authentication.
	PolicyPublic RoutePolicy = iota
	// PolicyProtected routes require an authenticated principal.
	PolicyProtected
)

// routePolicies is the explicit allow/deny classification table. Unmatched
// paths default to public, preserving the permissive fallthrough of the
// previous design but making it auditable here.
var routePolicies = []struct {
	Prefix string
	Policy RoutePolicy
}{
	{"/health", PolicyPublic},
	{"/auth", PolicyPublic},
	{"/tasklist", PolicyProtected},
	{"/task", PolicyProtected},
}

// PolicyFor returns the policy for a request path using longest-prefix match.
func PolicyFor(path string) RoutePolicy {
	best := PolicyPublic
	bestLen := -1
	for _, entry := range routePolicies {
		if len(entry.Prefix) > bestLen && matchesPrefix(path, entry.Prefix) {
			best = entry.Policy
			bestLen = len(entry.Prefix)
		}
	}
	return best
}

// matchesPrefix matches on path-segment boundaries so that "/task" does not
// swallow "/taskforce".
func matchesPrefix(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '/'
}
