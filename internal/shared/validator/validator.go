// Package validator registers the domain validation rules shared by all
// bounded contexts: phone numbers and person names. The platform validator
// stays generic; the rules live here.
package validator

import (
	"fmt"
	"strings"

	platformval "calldex_backend/platform/validator"

	"github.com/go-playground/validator/v10"
)

const (
	// TagPhoneNumber validates a caller-ID phone number: only digits and
	// the characters + # *, with 7 to 15 digits overall.
	TagPhoneNumber = "phonenum"
	// TagPersonName validates a display name: no digits and none of @ # ! $ &.
	TagPersonName = "personname"

	msgPhoneDigits = "Phone number must contain between 7 and 15 digits."
	msgPhoneChars  = "Phone number can only contain digits (0-9) and special characters (+, #, *)."
	msgPersonName  = "Name cannot contain numbers or special characters like @, #, !, $, &."
)

// Register installs the shared rules on the provided validator instance.
func Register(val *platformval.Validator) error {
	if err := val.RegisterValidation(TagPhoneNumber, validatePhoneNumber); err != nil {
		return err
	}
	return val.RegisterValidation(TagPersonName, validatePersonName)
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	if value == "" {
		return false
	}

	digits := 0
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' || r == '#' || r == '*':
		default:
			return false
		}
	}

	return digits >= 7 && digits <= 15
}

func hasForeignPhoneChars(value string) bool {
	for _, r := range strings.TrimSpace(value) {
		if (r < '0' || r > '9') && r != '+' && r != '#' && r != '*' {
			return true
		}
	}
	return false
}

func validatePersonName(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return !strings.ContainsAny(value, "0123456789@#!$&")
}

// FieldError is one validation failure in the error response, mirroring the
// {message, path} shape clients already parse.
type FieldError struct {
	Message string `json:"message"`
	Path    string `json:"path"`
}

// Describe converts a validation error into client-facing field errors.
// Returns nil if err is not a validator error.
func Describe(err error) []FieldError {
	var verrs validator.ValidationErrors
	if ok := asValidationErrors(err, &verrs); !ok {
		return nil
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Message: messageFor(fe),
			Path:    strings.ToLower(fe.Field()[:1]) + fe.Field()[1:],
		})
	}
	return out
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	*target = verrs
	return true
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case TagPhoneNumber:
		if text, ok := fe.Value().(string); ok && hasForeignPhoneChars(text) {
			return msgPhoneChars
		}
		return msgPhoneDigits
	case TagPersonName:
		return msgPersonName
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be %s characters or less", fe.Field(), fe.Param())
	case "email":
		return "Email must be a valid email address"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
