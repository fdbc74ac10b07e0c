package entity

import (
	"errors"
	"strings"
)

// ErrUnknownForm is returned when a submission names a form that does not exist.
var ErrUnknownForm = errors.New("identity: unknown form")

// FormName identifies a set of field validators.
type FormName string

const (
	// FormRegistration is the account registration form.
	FormRegistration FormName = "Registration"

	// FormLogin is the login form.
	FormLogin FormName = "Login"
)

func (f FormName) String() string {
	return string(f)
}

// FormNameFromString parses a form name case-insensitively. "register" is
// accepted as an alias of Registration.
func FormNameFromString(s string) (FormName, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "registration", "register":
		return FormRegistration, nil
	case "login":
		return FormLogin, nil
	default:
		return "", ErrUnknownForm
	}
}

// Violation classifies why a field was rejected.
type Violation int8

const (
	// ViolationNone means the field passed every rule.
	ViolationNone Violation = 0

	// ViolationRequiredFieldMissing means the field is empty or blank.
	ViolationRequiredFieldMissing Violation = 1

	// ViolationFormatMismatch means the value does not have the expected shape (email, phone).
	ViolationFormatMismatch Violation = 2

	// ViolationLengthOutOfRange means the value has too few or too many characters.
	ViolationLengthOutOfRange Violation = 3

	// ViolationForbiddenCharacter means the value holds a character that is not allowed.
	ViolationForbiddenCharacter Violation = 4

	// ViolationComplexityRequirementNotMet means a password lacks a required character class.
	ViolationComplexityRequirementNotMet Violation = 5

	// ViolationFieldMismatch means the value differs from the field it must repeat.
	ViolationFieldMismatch Violation = 6
)

func (v Violation) String() string {
	switch v {
	case ViolationNone:
		return "None"
	case ViolationRequiredFieldMissing:
		return "RequiredFieldMissing"
	case ViolationFormatMismatch:
		return "FormatMismatch"
	case ViolationLengthOutOfRange:
		return "LengthOutOfRange"
	case ViolationForbiddenCharacter:
		return "ForbiddenCharacter"
	case ViolationComplexityRequirementNotMet:
		return "ComplexityRequirementNotMet"
	case ViolationFieldMismatch:
		return "FieldMismatch"
	default:
		return "Unknown"
	}
}

// MarshalText renders the violation by name in JSON payloads.
func (v Violation) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// ViolationFromRule maps a failed validator rule tag to its violation.
func ViolationFromRule(tag string) Violation {
	switch tag {
	case "required", "notblank":
		return ViolationRequiredFieldMissing
	case "runelen", "len", "min", "max":
		return ViolationLengthOutOfRange
	case "denychars", "personname":
		return ViolationForbiddenCharacter
	case "complexpassword":
		return ViolationComplexityRequirementNotMet
	case "eqcsfield", "eqfield":
		return ViolationFieldMismatch
	default:
		return ViolationFormatMismatch
	}
}
