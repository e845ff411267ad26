package temporal

import (
	"fmt"
	"strings"
	"time"
)

// Format renders t in its own location using pattern.  A blank pattern
// selects [DefaultPattern]; the zero time renders as "".
func Format(t time.Time, pattern string) (string, error) {
	layout, err := compile(pattern)
	if err != nil {
		return "", err
	}
	if t.IsZero() {
		return "", nil
	}
	return t.Format(layout), nil
}

// Parse reads text according to pattern.  Fields absent from the pattern
// take their zero values and text without a zone is interpreted in UTC.
//
// Text that does not match yields [ErrMalformedTimestamp] together with the
// zero time.  A nil error always means the text matched, even when the result
// is itself the zero instant.
func Parse(text, pattern string) (time.Time, error) {
	return ParseInLocation(text, pattern, time.UTC)
}

// ParseInLocation is like [Parse] but interprets zone-less text in loc.
// A nil loc means UTC.
func ParseInLocation(text, pattern string, loc *time.Location) (time.Time, error) {
	layout, err := compile(pattern)
	if err != nil {
		return time.Time{}, err
	}
	if strings.TrimSpace(text) == "" {
		return time.Time{}, fmt.Errorf("%w: empty input", ErrMalformedTimestamp)
	}
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(layout, text, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrMalformedTimestamp, err)
	}
	return t, nil
}

// Now renders the current host time with pattern, or with [DefaultPattern]
// when pattern is blank.
func Now(pattern string) (string, error) {
	return NowWith(SystemClock{}, pattern)
}

// NowWith is like [Now] but reads the instant from clock.  A nil clock means
// [SystemClock].
func NowWith(clock Clock, pattern string) (string, error) {
	if clock == nil {
		clock = SystemClock{}
	}
	return Format(clock.Now(), pattern)
}
