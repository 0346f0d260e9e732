package signup

import (
	"regexp"
	"unicode/utf8"

	"github.com/nyaruka/phonenumbers"
)

const (
	FIELD_EMAIL_ADDRESS = "emailAddress"
	FIELD_PHONE_NUMBER  = "phoneNumber"
	FIELD_CODE          = "code"
)

const (
	InvalidEmailMessage = "Please provide a valid email."
	InvalidPhoneMessage = "Please provide a mobile phone number."
	MissingCodeMessage  = "Please provide your 6-digit confirmation."
	InvalidCodeMessage  = "Please provide your 6-digit confirmation."
)

const confirmationCodeLength = 6

var (
	emailPattern = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

	// North American numbers, optionally with a country code and the usual
	// separators: 5551234567, (555) 123-4567, +1 555.123.4567. Area codes
	// never start with 0 or 1.
	phonePattern = regexp.MustCompile(`^(\+?1[\s.-]?)?\(?[2-9][0-9]{2}\)?[\s.-]?[0-9]{3}[\s.-]?[0-9]{4}$`)
)

// ValidEmail passes empty values; requiredness is checked separately.
func ValidEmail(value string) error {
	if value == "" || emailPattern.MatchString(value) {
		return nil
	}
	return FieldError{Field: FIELD_EMAIL_ADDRESS, Message: InvalidEmailMessage}
}

// ValidPhoneNumber passes empty values since the phone number is optional.
func ValidPhoneNumber(value string) error {
	if value == "" || phonePattern.MatchString(value) {
		return nil
	}
	return FieldError{Field: FIELD_PHONE_NUMBER, Message: InvalidPhoneMessage}
}

// ValidCode only checks the length in characters. The provider decides
// whether the code itself is right.
func ValidCode(value string) error {
	if utf8.RuneCountInString(value) == confirmationCodeLength {
		return nil
	}
	return FieldError{Field: FIELD_CODE, Message: InvalidCodeMessage}
}

// ValidateRegistration checks fields for a sign up from region. The phone
// pattern only applies to North American regions; elsewhere the number is
// checked when it is normalized.
func ValidateRegistration(fields Fields, region string) ValidationErrors {
	var errs ValidationErrors

	if fields.EmailAddress == "" {
		errs = append(errs, FieldError{Field: FIELD_EMAIL_ADDRESS, Message: InvalidEmailMessage})
	} else if err := ValidEmail(fields.EmailAddress); err != nil {
		errs = append(errs, err.(FieldError))
	}

	if isNorthAmerican(region) {
		if err := ValidPhoneNumber(fields.PhoneNumber); err != nil {
			errs = append(errs, err.(FieldError))
		}
	}

	return errs
}

func ValidateConfirmation(code string) ValidationErrors {
	if code == "" {
		return ValidationErrors{{Field: FIELD_CODE, Message: MissingCodeMessage}}
	}
	if err := ValidCode(code); err != nil {
		return ValidationErrors{err.(FieldError)}
	}
	return nil
}

func isNorthAmerican(region string) bool {
	return phonenumbers.GetCountryCodeForRegion(region) == 1
}
