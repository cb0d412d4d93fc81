package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid reports whether the domain part of a guest's email
// resolves at all, via MX records or a plain host lookup. Registration uses
// it to reject obvious typos before a reservation mail ever bounces.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}
