// Package phone normalizes free-form phone input before it reaches
// the CRM.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// US-market product, so bare national numbers parse as +1.
const defaultRegion = "US"

// NormalizeE164 formats a phone number to E.164. Input that does not
// parse as a valid number is returned trimmed but otherwise untouched,
// so a typo still reaches the CRM rather than being silently dropped.
func NormalizeE164(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed
	}

	number, err := phonenumbers.Parse(trimmed, defaultRegion)
	if err != nil || !phonenumbers.IsValidNumber(number) {
		return trimmed
	}

	return phonenumbers.Format(number, phonenumbers.E164)
}
