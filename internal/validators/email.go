package validators

import (
	"net"
	"regexp"
	"strings"
)

var emailFormat = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// IsEmailFormatValid is the cheap syntactic check used on the booking
// path; no network I/O.
func IsEmailFormatValid(email string) bool {
	return emailFormat.MatchString(email)
}

// IsEmailDomainValid resolves the domain's MX (or A) records. Used by
// the admin registration flow, not the hot booking path.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
