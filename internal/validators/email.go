package validators

import (
	"net/mail"
	"strings"
)

// ValidEmail checks the address syntactically. Deliberately no DNS
// probing: public intake endpoints must not block on attacker-supplied
// domains.
func ValidEmail(email string) bool {
	if email == "" || strings.ContainsAny(email, " \t") {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		// Reject "Name <a@b>" forms; we want the bare address.
		return false
	}
	domain := email[strings.LastIndex(email, "@")+1:]
	return strings.Contains(domain, ".")
}
