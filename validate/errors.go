package validate

import "errors"

// ErrPolicyViolation is matched by every [*PolicyError]:
//
//	if errors.Is(err, validate.ErrPolicyViolation) {
//	    // password rejected; inspect *PolicyError for the reason
//	}
var ErrPolicyViolation = errors.New("validate: password does not satisfy policy")

// Reason identifies the password rule that failed.
type Reason int

const (
	// ReasonBlank indicates an empty or whitespace-only password.
	ReasonBlank Reason = iota + 1
	// ReasonTooShort indicates fewer characters than MinLength.
	ReasonTooShort
	// ReasonNoUppercase indicates a missing required uppercase letter.
	ReasonNoUppercase
	// ReasonNoLowercase indicates a missing required lowercase letter.
	ReasonNoLowercase
	// ReasonNoDigit indicates a missing required decimal digit.
	ReasonNoDigit
	// ReasonNoSpecial indicates a missing required special character.
	ReasonNoSpecial
)

var reasonNames = map[Reason]string{
	ReasonBlank:       "blank",
	ReasonTooShort:    "too_short",
	ReasonNoUppercase: "no_uppercase",
	ReasonNoLowercase: "no_lowercase",
	ReasonNoDigit:     "no_digit",
	ReasonNoSpecial:   "no_special",
}

// String returns a stable snake_case name suitable for API responses.
func (r Reason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return "unknown"
}

// PolicyError describes the first password rule that failed.
type PolicyError struct {
	Code    Reason
	Message string
}

// Error implements the error interface.
func (e *PolicyError) Error() string {
	return "validate: " + e.Message
}

// Unwrap makes errors.Is(err, ErrPolicyViolation) hold.
func (e *PolicyError) Unwrap() error {
	return ErrPolicyViolation
}
