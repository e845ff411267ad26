package validate

import (
	"fmt"
	"unicode/utf8"
)

// PasswordPolicy lists the requirements a password must meet.  All enabled
// rules must hold.  A policy with every flag false reduces to a length check.
type PasswordPolicy struct {
	// MinLength is the minimum number of characters (Unicode code points).
	// Negative values are treated as 0.
	MinLength int

	// RequireUppercase requires at least one of A-Z.
	RequireUppercase bool

	// RequireLowercase requires at least one of a-z.
	RequireLowercase bool

	// RequireDigit requires at least one of 0-9.
	RequireDigit bool

	// RequireSpecial requires at least one character outside A-Z, a-z and 0-9.
	// Spaces and non-ASCII letters count as special.
	RequireSpecial bool
}

// DefaultPasswordPolicy returns a reasonable default: at least 8 characters
// with upper case, lower case and a digit.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:        8,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireDigit:     true,
	}
}

// LengthOnlyPolicy returns a policy that checks only the minimum length.
func LengthOnlyPolicy(minLength int) PasswordPolicy {
	return PasswordPolicy{MinLength: minLength}
}

// IsPassword reports whether password satisfies p.
func IsPassword(password string, p PasswordPolicy) bool {
	return CheckPassword(password, p) == nil
}

// CheckPassword applies p to password and returns a [*PolicyError] for the
// first failed rule, or nil.  Rules run in this order: blank input, length,
// uppercase, lowercase, digit, special.
func CheckPassword(password string, p PasswordPolicy) error {
	if isBlank(password) {
		return &PolicyError{Code: ReasonBlank, Message: "password must not be blank"}
	}

	if n := utf8.RuneCountInString(password); n < p.MinLength {
		return &PolicyError{
			Code:    ReasonTooShort,
			Message: fmt.Sprintf("password must be at least %d characters, got %d", p.MinLength, n),
		}
	}

	c := classify(password)

	if p.RequireUppercase && !c.upper {
		return &PolicyError{Code: ReasonNoUppercase, Message: "password must contain an uppercase letter"}
	}
	if p.RequireLowercase && !c.lower {
		return &PolicyError{Code: ReasonNoLowercase, Message: "password must contain a lowercase letter"}
	}
	if p.RequireDigit && !c.digit {
		return &PolicyError{Code: ReasonNoDigit, Message: "password must contain a digit"}
	}
	if p.RequireSpecial && !c.special {
		return &PolicyError{Code: ReasonNoSpecial, Message: "password must contain a special character"}
	}
	return nil
}

type charClasses struct {
	upper, lower, digit, special bool
}

func classify(s string) charClasses {
	var c charClasses
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			c.upper = true
		case r >= 'a' && r <= 'z':
			c.lower = true
		case r >= '0' && r <= '9':
			c.digit = true
		default:
			c.special = true
		}
	}
	return c
}
