package mailer

import (
	"strings"
)

// MaskEmail hides the second half of the local part and of the first domain
// label, so addresses can be logged without exposing them fully.
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return email
	}

	sections := strings.Split(domain, ".")
	masked := maskHalf(local) + "@" + maskHalf(sections[0])
	if len(sections) > 1 {
		masked += "." + strings.Join(sections[1:], ".")
	}

	return masked
}

func maskHalf(s string) string {
	if s == "" {
		return s
	}
	n := (len(s) + 1) / 2
	return s[:len(s)-n] + strings.Repeat("*", n)
}
