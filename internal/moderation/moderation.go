// Package moderation implements the content gate applied to comment bodies
// before insertion.
package moderation

import "strings"

// Gate decides whether a comment body is acceptable. It holds only its
// blocklist and has no side effects, so a single instance is safe to share
// across requests.
type Gate struct {
	blockedTerms []string
}

// NewGate creates a gate that rejects bodies containing any of the given
// terms, matched case-insensitively.
func NewGate(blockedTerms []string) *Gate {
	terms := make([]string, 0, len(blockedTerms))
	for _, t := range blockedTerms {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			terms = append(terms, t)
		}
	}
	return &Gate{blockedTerms: terms}
}

// Allow reports whether the body passes the disallowed-content policy
func (g *Gate) Allow(body string) bool {
	lowered := strings.ToLower(body)
	for _, term := range g.blockedTerms {
		if strings.Contains(lowered, term) {
			return false
		}
	}
	return true
}
