package signup

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

const DefaultPhoneRegion = "US"

// NormalizePhoneNumber converts a phone number as typed into E.164. Numbers
// without a country code are read as belonging to region. North American
// numbers only have to be possible; they are already held to phonePattern.
// Anywhere else the number has to be valid for its country.
func NormalizePhoneNumber(value string, region string) (string, error) {
	if value == "" {
		return "", nil
	}

	num, err := phonenumbers.Parse(value, region)
	if err != nil {
		return "", fmt.Errorf("failed to parse phone number: %w", err)
	}

	if !phonenumbers.IsPossibleNumber(num) {
		return "", fmt.Errorf("phone number %q has the wrong length", value)
	}
	if num.GetCountryCode() != 1 && !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("phone number %q is not valid", value)
	}

	return phonenumbers.Format(num, phonenumbers.E164), nil
}
