// Package temporal formats and parses instants against human-readable
// pattern strings and computes signed differences between instants.
//
// # Patterns
//
// Patterns use the familiar letter-run grammar (yyyy-MM-dd HH:mm:ss) rather
// than Go reference-time layouts.  They are locale independent: month and
// weekday names are English.
//
//	Letters  Meaning                     Example
//	yyyy     4-digit year (also YYYY)    2024
//	yy       2-digit year                24
//	M / MM   month, unpadded / padded    3 / 03
//	MMM      abbreviated month name      Mar
//	MMMM     full month name             March
//	d / dd   day of month (also D / DD)  7 / 07
//	H / HH   hour 0-23, always padded    09
//	h / hh   hour 1-12                   9 / 09
//	m / mm   minute                      5 / 05
//	s / ss   second                      5 / 05
//	S…       fraction, after . or ,      .123
//	a        AM / PM                     PM
//	E / EEEE weekday name                Tue / Tuesday
//	z        zone abbreviation           UTC
//	Z        numeric offset              +0100
//	X…XXX    ISO 8601 offset             Z, +01, +0100, +01:00
//
// Text inside single quotes is literal ('T'); two single quotes produce one.
// Unknown letters, digits or underscores in literal text, and literal text
// containing Jan, Mon, MST, PM or pm are rejected with [ErrInvalidPattern].
// So are unpadded numeric fields written back to back (for example "Ms"),
// which cannot be parsed unambiguously.
//
// A blank pattern selects [DefaultPattern].
//
// # Missing values
//
// The zero [time.Time] stands for "no instant".  [Format] renders it as ""
// and [Difference] answers 0 when either argument is zero or the [Unit] is
// [Unspecified].  These are documented conveniences: a genuine zero-length
// interval between two real instants also yields 0, so callers that must
// tell the cases apart should check [time.Time.IsZero] first.
//
// [Parse] never returns a zero value silently; text that does not match the
// pattern yields [ErrMalformedTimestamp].
//
// # Time zones
//
// [Format] renders an instant in its own location.  [Parse] interprets
// zone-less text in UTC; use [ParseInLocation] to choose another location.
package temporal
