package temporal

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Unit selects the scale of a [Difference] result.
type Unit int

const (
	// Unspecified is the zero Unit.  Difference returns 0 for it.
	Unspecified Unit = iota
	Nanoseconds
	Microseconds
	Milliseconds
	Seconds
	Minutes
	Hours
	// Days are fixed 24-hour periods, not calendar days.
	Days
)

var unitDurations = map[Unit]time.Duration{
	Nanoseconds:  time.Nanosecond,
	Microseconds: time.Microsecond,
	Milliseconds: time.Millisecond,
	Seconds:      time.Second,
	Minutes:      time.Minute,
	Hours:        time.Hour,
	Days:         24 * time.Hour,
}

var unitNames = map[Unit]string{
	Unspecified:  "unspecified",
	Nanoseconds:  "nanoseconds",
	Microseconds: "microseconds",
	Milliseconds: "milliseconds",
	Seconds:      "seconds",
	Minutes:      "minutes",
	Hours:        "hours",
	Days:         "days",
}

var unitAliases = map[string]Unit{
	"ns": Nanoseconds, "nanosecond": Nanoseconds, "nanoseconds": Nanoseconds,
	"us": Microseconds, "µs": Microseconds, "microsecond": Microseconds, "microseconds": Microseconds,
	"ms": Milliseconds, "millisecond": Milliseconds, "milliseconds": Milliseconds,
	"s": Seconds, "sec": Seconds, "second": Seconds, "seconds": Seconds,
	"m": Minutes, "min": Minutes, "minute": Minutes, "minutes": Minutes,
	"h": Hours, "hour": Hours, "hours": Hours,
	"d": Days, "day": Days, "days": Days,
}

// Duration returns the length of one u, or 0 for [Unspecified] and unknown
// values.
func (u Unit) Duration() time.Duration {
	return unitDurations[u]
}

// String returns the lowercase plural name of u.
func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// ParseUnit resolves names such as "SECONDS", "ms" or "day" to a [Unit].
func ParseUnit(name string) (Unit, error) {
	if u, ok := unitAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return u, nil
	}
	return Unspecified, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
}

// Difference returns end − start expressed in u, truncated toward zero.  The
// result is negative when end precedes start.
//
// The difference is computed from wall-clock seconds and nanoseconds, so it
// is exact for spans longer than a time.Duration can hold.  Results in
// sub-second units that exceed int64 saturate at math.MaxInt64 or
// math.MinInt64.
//
// Difference returns 0 when either instant is the zero time or u is
// [Unspecified] or unknown.
func Difference(start, end time.Time, u Unit) int64 {
	per := u.Duration()
	if per <= 0 || start.IsZero() || end.IsZero() {
		return 0
	}

	sec := end.Unix() - start.Unix()
	nsec := int64(end.Nanosecond() - start.Nanosecond())
	// Give both parts the same sign so that truncation is toward zero.
	switch {
	case sec > 0 && nsec < 0:
		sec--
		nsec += int64(time.Second)
	case sec < 0 && nsec > 0:
		sec++
		nsec -= int64(time.Second)
	}

	if per >= time.Second {
		return sec / int64(per/time.Second)
	}

	perSec := int64(time.Second / per)
	if sec > math.MaxInt64/perSec {
		return math.MaxInt64
	}
	if sec < math.MinInt64/perSec {
		return math.MinInt64
	}
	whole := sec * perSec
	frac := nsec / int64(per)
	if frac > 0 && whole > math.MaxInt64-frac {
		return math.MaxInt64
	}
	if frac < 0 && whole < math.MinInt64-frac {
		return math.MinInt64
	}
	return whole + frac
}
