package intervalset

import (
	"strings"

	"github.com/henderiw/realset/pkg/interval"
)

const emptyText = "{}"

// MarshalText implements encoding.TextMarshaler. Members are written in
// bracket notation joined by " ∪ "; the empty set is "{}".
func (s *Set) MarshalText() ([]byte, error) {
	if s.IsEmpty() {
		return []byte(emptyText), nil
	}
	parts := make([]string, 0, len(s.ivs))
	for _, r := range s.ivs {
		text, err := r.MarshalText()
		if err != nil {
			return nil, err
		}
		parts = append(parts, string(text))
	}
	return []byte(strings.Join(parts, " ∪ ")), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unlike Parse it
// fails on the first member that is not a valid interval.
func (s *Set) UnmarshalText(text []byte) error {
	str := strings.TrimSpace(string(text))
	if str == emptyText || str == "" {
		*s = Set{}
		return nil
	}
	ivs := make([]interval.Interval, 0, strings.Count(str, "∪")+1)
	for _, part := range strings.Split(str, "∪") {
		r, err := interval.Parse(part)
		if err != nil {
			return err
		}
		ivs = append(ivs, r)
	}
	*s = Set{ivs: normalize(ivs)}
	return nil
}
