package intervalset

import (
	"sort"
	"strings"

	"github.com/henderiw/realset/pkg/interval"
)

// Set is a set of reals written as a union of intervals. It is immutable;
// every operation returns a new Set. A nil *Set is the empty set.
type Set struct {
	// ivs is normalized: sorted by left bound with no two neighbours
	// mergeable, so members are disjoint and never touch. Every method
	// relies on this.
	ivs []interval.Interval
}

// New returns the canonical set covering ivs. Invalid intervals are
// dropped; use a Builder to learn about them.
func New(ivs ...interval.Interval) *Set {
	var b Builder
	for _, r := range ivs {
		b.AddInterval(r)
	}
	s, _ := b.Set()
	return s
}

// Parse returns the set covering items in bracket notation. Items that do
// not parse or are not valid intervals are left out and reported in the
// error; the returned set is usable either way.
func Parse(items ...string) (*Set, error) {
	var b Builder
	for _, item := range items {
		b.AddString(item)
	}
	return b.Set()
}

// MustParse is Parse that panics if any item is dropped.
func MustParse(items ...string) *Set {
	s, err := Parse(items...)
	if err != nil {
		panic(err)
	}
	return s
}

// Empty returns ∅.
func Empty() *Set { return &Set{} }

// Reals returns the set of all reals.
func Reals() *Set { return &Set{ivs: []interval.Interval{interval.Reals()}} }

// Intervals returns the canonical intervals of s in ascending order.
func (s *Set) Intervals() []interval.Interval {
	if s == nil {
		return nil
	}
	return append([]interval.Interval{}, s.ivs...)
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ivs)
}

func (s *Set) IsEmpty() bool { return s.Len() == 0 }

// Contains reports whether x is in s.
func (s *Set) Contains(x float64) bool {
	if s.IsEmpty() {
		return false
	}
	// first member not ending before x; a later member cannot hold x
	// because it would touch this one
	idx := sort.Search(len(s.ivs), func(i int) bool { return s.ivs[i].Right() >= x })
	return idx < len(s.ivs) && s.ivs[idx].Contains(x)
}

// ContainsInterval reports whether every point of r is in s.
func (s *Set) ContainsInterval(r interval.Interval) bool {
	if !r.IsValid() {
		return false
	}
	for _, m := range s.Intervals() {
		if m.Overlap(r).Equal(r) {
			return true
		}
	}
	return false
}

// Union returns s ∪ other.
func (s *Set) Union(other *Set) *Set {
	var b Builder
	b.AddSet(s)
	b.AddSet(other)
	set, _ := b.Set()
	return set
}

// Intersect returns s ∩ other.
func (s *Set) Intersect(other *Set) *Set {
	a, b := s.Intervals(), other.Intervals()
	out := make([]interval.Interval, 0, len(a)+len(b))
	for len(a) > 0 && len(b) > 0 {
		if o := a[0].Overlap(b[0]); o.IsValid() {
			out = append(out, o)
		}
		// the member ending first cannot reach any later member of the
		// other set
		if a[0].CompareRight(b[0]) <= 0 {
			a = a[1:]
		} else {
			b = b[1:]
		}
	}
	return &Set{ivs: normalize(out)}
}

// Subtract returns s \ other.
func (s *Set) Subtract(other *Set) *Set {
	in, out := s.Intervals(), other.Intervals()

	min := make([]interval.Interval, 0, len(in))
	for len(in) > 0 && len(out) > 0 {
		rin, rout := in[0], out[0]
		lower, upper := rin.Remove(rout)
		// anything of "in" below "out" is final: earlier removals have
		// been applied already
		if lower.IsValid() {
			min = append(min, lower)
		}
		switch {
		case rout.CompareRight(rin) < 0:
			// "out" ends inside or before "in", later "in"s are out of
			// its reach. What is left above it may still be trimmed by
			// the next "out".
			//
			//     in
			// f--------t
			//  f---t
			//   out
			if upper.IsValid() {
				in[0] = upper
			} else {
				in = in[1:]
			}
			out = out[1:]
		default:
			// "out" reaches at least as far as "in", nothing remains
			// above it. Keep "out" for the next "in".
			//
			//   in
			// f----t
			//    f------t
			//      out
			in = in[1:]
		}
	}
	// ran out of removals before the end of in
	min = append(min, in...)

	return &Set{ivs: normalize(min)}
}

// Complement returns the reals not in s.
func (s *Set) Complement() *Set {
	return Reals().Subtract(s)
}

// Equal reports whether s and other hold the same reals. Both are
// canonical, so this is a member-wise comparison.
func (s *Set) Equal(other *Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for i, r := range s.Intervals() {
		if !r.Equal(other.ivs[i]) {
			return false
		}
	}
	return true
}

// String renders s in bracket notation, e.g. [3, 4] ∪ (5, 10).
func (s *Set) String() string { return s.Format(false) }

// Inequality renders s as inequalities over x joined by "or".
func (s *Set) Inequality() string { return s.Format(true) }

// Format renders s in bracket notation or, if inequality is set, as
// inequalities.
func (s *Set) Format(inequality bool) string {
	if s.IsEmpty() {
		return "∅ (null set)"
	}
	sep := " ∪ "
	if inequality {
		sep = "  or  "
	}
	parts := make([]string, 0, len(s.ivs))
	for _, r := range s.ivs {
		parts = append(parts, r.Format(inequality))
	}
	return strings.Join(parts, sep)
}
