package validate

import (
	"net/mail"
	"strings"

	"github.com/google/uuid"
)

// CanonicalUUID parses s in any accepted uuid spelling and returns the lowercase hyphenated form.
func CanonicalUUID(s string) (string, bool) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", false
	}
	return id.String(), true
}

func IsEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	// reject "Name <addr>" forms, only a bare address is accepted
	return addr.Address == s
}
