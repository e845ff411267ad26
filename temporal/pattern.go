package temporal

import (
	"fmt"
	"strings"
)

// DefaultPattern is used whenever a caller passes a blank pattern.
const DefaultPattern = "yyyy-MM-dd HH:mm:ss"

// Literal fragments the time package would read as layout elements.
var reservedLiterals = []string{"Jan", "Mon", "MST", "PM", "pm"}

// field is a translated letter run.
type field struct {
	layout   string
	numeric  bool // renders as digits
	unpadded bool // variable-width digits
}

// compile translates pattern into a layout for the time package.
func compile(pattern string) (string, error) {
	if strings.TrimSpace(pattern) == "" {
		pattern = DefaultPattern
	}

	var (
		out          strings.Builder
		lit          strings.Builder
		prevUnpadded bool
		prevFraction bool
	)

	flush := func() error {
		if lit.Len() == 0 {
			return nil
		}
		s := lit.String()
		if strings.ContainsAny(s, "0123456789_") {
			return fmt.Errorf("%w: literal %q contains digits or underscores", ErrInvalidPattern, s)
		}
		for _, r := range reservedLiterals {
			if strings.Contains(s, r) {
				return fmt.Errorf("%w: literal %q contains reserved text %q", ErrInvalidPattern, s, r)
			}
		}
		out.WriteString(s)
		lit.Reset()
		prevUnpadded, prevFraction = false, false
		return nil
	}

	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c == '\'':
			j, err := quoted(pattern, i, &lit)
			if err != nil {
				return "", err
			}
			i = j

		case isLetter(c):
			j := i
			for j < len(pattern) && pattern[j] == c {
				j++
			}
			if err := flush(); err != nil {
				return "", err
			}
			f, err := translate(c, j-i, out.String())
			if err != nil {
				return "", err
			}
			if f.numeric && (prevUnpadded || prevFraction) {
				return "", fmt.Errorf("%w: field %q directly follows a variable-width field",
					ErrInvalidPattern, pattern[i:j])
			}
			out.WriteString(f.layout)
			prevUnpadded = f.unpadded
			prevFraction = c == 'S'
			i = j

		default:
			lit.WriteByte(c)
			i++
		}
	}
	if err := flush(); err != nil {
		return "", err
	}
	return out.String(), nil
}

// quoted consumes a quoted literal starting at pattern[i] == '\'' and returns
// the index just past it.  Two adjacent quotes inside stand for one.
func quoted(pattern string, i int, lit *strings.Builder) (int, error) {
	if i+1 < len(pattern) && pattern[i+1] == '\'' {
		lit.WriteByte('\'')
		return i + 2, nil
	}
	for j := i + 1; j < len(pattern); j++ {
		if pattern[j] != '\'' {
			lit.WriteByte(pattern[j])
			continue
		}
		if j+1 < len(pattern) && pattern[j+1] == '\'' {
			lit.WriteByte('\'')
			j++
			continue
		}
		return j + 1, nil
	}
	return 0, fmt.Errorf("%w: unterminated quote at offset %d", ErrInvalidPattern, i)
}

// translate maps a run of n copies of letter c to a layout element.  prefix
// is the layout emitted so far.
func translate(c byte, n int, prefix string) (field, error) {
	switch c {
	case 'y', 'Y':
		if n == 2 {
			return field{layout: "06", numeric: true}, nil
		}
		return field{layout: "2006", numeric: true}, nil
	case 'M':
		switch n {
		case 1:
			return field{layout: "1", numeric: true, unpadded: true}, nil
		case 2:
			return field{layout: "01", numeric: true}, nil
		case 3:
			return field{layout: "Jan"}, nil
		default:
			return field{layout: "January"}, nil
		}
	case 'd', 'D':
		return padded(c, n, "2", "02")
	case 'H':
		if n <= 2 {
			return field{layout: "15", numeric: true}, nil
		}
	case 'h':
		return padded(c, n, "3", "03")
	case 'm':
		return padded(c, n, "4", "04")
	case 's':
		return padded(c, n, "5", "05")
	case 'S':
		if n > 9 {
			break
		}
		if !strings.HasSuffix(prefix, ".") && !strings.HasSuffix(prefix, ",") {
			return field{}, fmt.Errorf("%w: fraction field must follow '.' or ','", ErrInvalidPattern)
		}
		return field{layout: strings.Repeat("0", n), numeric: true}, nil
	case 'a':
		return field{layout: "PM"}, nil
	case 'E':
		if n <= 3 {
			return field{layout: "Mon"}, nil
		}
		return field{layout: "Monday"}, nil
	case 'z':
		return field{layout: "MST"}, nil
	case 'Z':
		return field{layout: "-0700"}, nil
	case 'X':
		switch n {
		case 1:
			return field{layout: "Z07"}, nil
		case 2:
			return field{layout: "Z0700"}, nil
		case 3:
			return field{layout: "Z07:00"}, nil
		}
	default:
		return field{}, fmt.Errorf("%w: unknown field letter %q", ErrInvalidPattern, c)
	}
	return field{}, fmt.Errorf("%w: unsupported width %d for field %q", ErrInvalidPattern, n, c)
}

func padded(c byte, n int, short, long string) (field, error) {
	switch n {
	case 1:
		return field{layout: short, numeric: true, unpadded: true}, nil
	case 2:
		return field{layout: long, numeric: true}, nil
	}
	return field{}, fmt.Errorf("%w: unsupported width %d for field %q", ErrInvalidPattern, n, c)
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
