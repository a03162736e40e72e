// Package phone provides phone number utilities.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const defaultRegion = "US"

// FixLeadingSpace restores a '+' prefix that some clients lose when they send
// an international number unencoded in a query string (the '+' arrives as a
// space). Only a single leading space is rewritten; everything else passes
// through untouched.
//
// TODO: remove once the mobile client URL-encodes lookup numbers.
func FixLeadingSpace(input string) string {
	if strings.HasPrefix(input, " ") {
		return "+" + input[1:]
	}
	return input
}

// NormalizeE164 formats a phone number to E.164. If parsing fails or the
// number is not valid, it returns the trimmed input unchanged.
func NormalizeE164(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed
	}

	number, err := phonenumbers.Parse(trimmed, defaultRegion)
	if err != nil {
		return trimmed
	}

	if !phonenumbers.IsValidNumber(number) {
		return trimmed
	}

	return phonenumbers.Format(number, phonenumbers.E164)
}
