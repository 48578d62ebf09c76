package validators

import (
	"net"
	"net/mail"
	"strings"
)

// ValidateEmail checks the address syntax. Standardization (lower-case, no
// whitespace) is expected to have run before.
func ValidateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return newError(KindFormat, CodeInvalidFormat, "E-mail inválido: %q", email)
	}

	at := strings.LastIndex(email, "@")
	if !strings.Contains(email[at+1:], ".") {
		return newError(KindFormat, CodeInvalidFormat, "E-mail inválido: domínio incompleto em %q", email)
	}
	return nil
}

// IsEmailDomainValid resolves the domain (MX first, then A/AAAA).
// Only used on registration, behind a config flag, since it hits DNS.
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
