package interval

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrUnparseable is returned when text is not in interval notation.
	ErrUnparseable = errors.New("unparseable interval")
	// ErrInvalidInterval is returned when text is in interval notation but
	// the bounds do not describe an interval, e.g. [5, 3] or [-inf, 0).
	ErrInvalidInterval = errors.New("invalid interval")
)

const number = `[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?|[+-]?inf`

// notation matches "<open><left>, <right><close>". A reversed bracket opens
// the interval on that side, so ]4, 5] reads as (4, 5].
var notation = regexp.MustCompile(`(?i)^\s*([(\[\]])\s*(` + number + `)\s*,\s*(` + number + `)\s*([)\[\]])\s*$`)

// Parse reads an interval in bracket notation, e.g. "[3, 10)" or
// "(-inf, 2]". Text that does not follow the notation yields an error
// wrapping ErrUnparseable; bounds that do not form an interval yield an
// error wrapping ErrInvalidInterval.
func Parse(s string) (Interval, error) {
	m := notation.FindStringSubmatch(s)
	if m == nil {
		return Invalid(), errors.Wrapf(ErrUnparseable, "parse %q", s)
	}
	left, err := parseValue(m[2])
	if err != nil {
		return Invalid(), errors.Wrapf(ErrUnparseable, "parse %q: %v", s, err)
	}
	right, err := parseValue(m[3])
	if err != nil {
		return Invalid(), errors.Wrapf(ErrUnparseable, "parse %q: %v", s, err)
	}
	r := New(m[1] == "[", left, right, m[4] == "]")
	if !r.IsValid() {
		return r, errors.Wrapf(ErrInvalidInterval, "parse %q", s)
	}
	return r, nil
}

// MustParse is Parse that panics on error.
func MustParse(s string) Interval {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

func parseValue(s string) (float64, error) {
	switch strings.ToLower(s) {
	case "-inf":
		return math.Inf(-1), nil
	case "inf", "+inf":
		return math.Inf(1), nil
	}
	return strconv.ParseFloat(s, 64)
}

// MarshalText implements encoding.TextMarshaler using bracket notation.
func (r Interval) MarshalText() ([]byte, error) {
	if !r.valid {
		return nil, ErrInvalidInterval
	}
	return []byte(r.notation()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Interval) UnmarshalText(text []byte) error {
	iv, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = iv
	return nil
}

// notation renders r so that Parse reads it back. Unlike String it never
// abbreviates points or the real line.
func (r Interval) notation() string {
	open, closing := "(", ")"
	if r.leftInclusive {
		open = "["
	}
	if r.rightInclusive {
		closing = "]"
	}
	return open + textValue(r.left) + ", " + textValue(r.right) + closing
}

func textValue(v float64) string {
	switch {
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsInf(v, 1):
		return "inf"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
