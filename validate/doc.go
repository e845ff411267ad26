// Package validate classifies strings against structural patterns and a
// configurable password-strength policy.
//
// Every check is a pure predicate: input is never trimmed, normalised or
// modified, and blank input (empty or whitespace only) is always rejected.
// No predicate returns an error.
//
// # Structural, not semantic
//
// [IsEmail], [IsPhone] and [IsURL] prove that a string has the shape of an
// address, a phone number or a web URL.  They do not resolve DNS, check
// deliverability or contact the host.
//
//	validate.IsEmail("user@example.com")       // true
//	validate.IsPhone("+1 (555) 123-4567")      // true
//	validate.IsURL("https://example.com/docs") // true
//
// # Password policy
//
// [PasswordPolicy] is a value type describing independent character-class
// requirements that are combined with AND.  [CheckPassword] applies them in
// a fixed order and reports the first rule that failed; [IsPassword] is its
// boolean form.
//
//	p := validate.PasswordPolicy{MinLength: 6, RequireUppercase: true, RequireDigit: true}
//	validate.IsPassword("Secret1", p) // true
//
//	err := validate.CheckPassword("secret", p)
//	var pe *validate.PolicyError
//	if errors.As(err, &pe) && pe.Code == validate.ReasonNoUppercase { ... }
package validate
