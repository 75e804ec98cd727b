// Package identity canonicalizes the phone and email values used to
// link records across sources into a single customer key.
package identity

import "strings"

// NormalizePhone strips everything but digits and reduces Russian
// numbers to their 10-digit canonical form: an 11-digit number
// starting with 7 or 8 loses the leading digit, as does a 12-digit
// number starting with 7 (a "+7" that picked up an extra digit during
// export). Anything else is returned as-is. Empty or digitless input
// yields "".
func NormalizePhone(raw string) string {
	if raw == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	switch {
	case len(cleaned) == 11 && (cleaned[0] == '7' || cleaned[0] == '8'):
		cleaned = cleaned[1:]
	case len(cleaned) == 12 && cleaned[0] == '7':
		cleaned = cleaned[1:]
	}

	return cleaned
}

// NormalizeEmail lower-cases and trims the address. Empty input yields "".
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ResolveKey returns the identity key for a record: the normalized
// phone when one exists, otherwise the normalized email, otherwise "".
// Inputs are expected to already be normalized.
func ResolveKey(phone, email string) string {
	if phone != "" {
		return phone
	}
	return email
}
