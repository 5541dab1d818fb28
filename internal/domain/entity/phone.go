// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "strings"

// Canonical Brazilian phone numbers carry 10 (landline) or 11 (mobile) digits.
const (
	PhoneMinDigits = 10
	PhoneMaxDigits = 11
)

// NormalizePhone strips every non-digit rune from the input, producing the
// canonical digit-only form used as the natural key for sellers.
// It is pure and idempotent: normalizing an already-normalized value is a no-op.
func NormalizePhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// ParsePhone normalizes the input and validates it as a canonical key.
// It returns false when the digit count falls outside the 10-11 range.
func ParsePhone(raw string) (string, bool) {
	phone := NormalizePhone(raw)
	if len(phone) < PhoneMinDigits || len(phone) > PhoneMaxDigits {
		return "", false
	}

	return phone, true
}
