package validate

import (
	"regexp"
	"strings"
)

var (
	// Deliberately loose: non-whitespace local part, "@", domain with a dot.
	// Real verification happens when the operator replies.
	reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

// Email trims and checks the basic syntactic shape of an address.
func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 254 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// ID validates a simple resource identifier (listing page ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Optional trims a free-text field; "" means not provided.
func Optional(s string) string {
	return strings.TrimSpace(s)
}
