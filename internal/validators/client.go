package validators

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	minClientNameLen = 6
	minPhoneLen      = 12
)

var phoneDisallowed = regexp.MustCompile(`[^0-9+() -]`)

// IsClientNameValid requires a first and last name: at least six characters
// and one space.
func IsClientNameValid(name string) bool {
	return utf8.RuneCountInString(name) >= minClientNameLen && strings.Contains(name, " ")
}

// IsPhoneValid checks the shape of a client phone: country prefix first,
// only digits, '+', '(', ')', '-' and spaces, and at least twelve characters.
func IsPhoneValid(phone, prefix string) bool {
	if !strings.HasPrefix(phone, prefix) {
		return false
	}
	if phoneDisallowed.ReplaceAllString(phone, "") != phone {
		return false
	}
	return len(phone) >= minPhoneLen
}
