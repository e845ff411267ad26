package validate

import (
	"regexp"
	"strings"
)

// Compiled once at init; regexp.Regexp is safe for concurrent use and the
// values are never reassigned.
var (
	// Local part, "@", then a domain of at least two labels.
	emailPattern = regexp.MustCompile(
		`^[A-Za-z0-9+._%-]{1,256}@[A-Za-z0-9][A-Za-z0-9-]{0,64}(?:\.[A-Za-z0-9][A-Za-z0-9-]{0,25})+$`)

	// Optional +country, optional (area), then digits with -, space or .
	// separators, starting and ending with a digit.
	phonePattern = regexp.MustCompile(
		`^(?:\+[0-9]+[- .]*)?(?:\([0-9]+\)[- .]*)?[0-9][0-9- .]+[0-9]$`)

	// Optional scheme, optional userinfo, host (domain, localhost or IPv4),
	// optional port, optional path/query/fragment.
	urlPattern = regexp.MustCompile(`(?i)^` +
		`(?:(?:https?|ftp|rtsp)://)?` +
		`(?:[^\s:@/]+(?::[^\s@/]*)?@)?` +
		`(?:localhost` +
		`|(?:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z]{2,63}` +
		`|(?:(?:25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9]?[0-9])\.){3}(?:25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9]?[0-9]))` +
		`(?::[0-9]{1,5})?` +
		`(?:[/?#]\S*)?$`)
)

const (
	minPhoneDigits = 3
	maxPhoneDigits = 15 // E.164 upper bound
)

// isBlank reports whether s is empty or contains only whitespace.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsEmail reports whether s has the structure of an email address.
func IsEmail(s string) bool {
	if isBlank(s) {
		return false
	}
	return emailPattern.MatchString(s)
}

// IsPhone reports whether s has the structure of a phone number: an optional
// "+country" prefix, an optional parenthesised area code, and digit groups
// separated by hyphens, spaces or dots, with 3 to 15 digits in total.
func IsPhone(s string) bool {
	if isBlank(s) || !phonePattern.MatchString(s) {
		return false
	}
	digits := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			digits++
		}
	}
	return digits >= minPhoneDigits && digits <= maxPhoneDigits
}

// IsURL reports whether s has the structure of a web URL.  The scheme is
// optional; when present it must be http, https, ftp or rtsp.
func IsURL(s string) bool {
	if isBlank(s) {
		return false
	}
	return urlPattern.MatchString(s)
}
