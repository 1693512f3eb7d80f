package intervalset

import (
	"errors"
	"fmt"
	"sort"

	"github.com/henderiw/realset/pkg/interval"
)

// Builder collects intervals for a Set. Items that are not valid intervals
// are dropped and reported by Set, they never abort the build.
type Builder struct {
	in   []interval.Interval
	errs error
}

// AddInterval adds r to the set being built.
func (s *Builder) AddInterval(r interval.Interval) {
	if !r.IsValid() {
		s.errs = errors.Join(s.errs, fmt.Errorf("addInterval(#%d): %w", len(s.in), interval.ErrInvalidInterval))
		return
	}
	s.in = append(s.in, r)
}

// AddTuple adds the interval described by t.
func (s *Builder) AddTuple(t interval.Tuple) {
	r := interval.FromTuple(t)
	if !r.IsValid() {
		s.errs = errors.Join(s.errs, fmt.Errorf("addTuple(%v): %w", t, interval.ErrInvalidInterval))
		return
	}
	s.in = append(s.in, r)
}

// AddString parses str in bracket notation and adds the result.
func (s *Builder) AddString(str string) {
	r, err := interval.Parse(str)
	if err != nil {
		s.errs = errors.Join(s.errs, fmt.Errorf("addString: %w", err))
		return
	}
	s.in = append(s.in, r)
}

// AddSet adds all intervals of b.
func (s *Builder) AddSet(b *Set) {
	if b == nil {
		return
	}
	s.in = append(s.in, b.ivs...)
}

// Set returns the canonical set of everything added so far, together with
// the joined errors of every item that was dropped. The builder is reset.
func (s *Builder) Set() (*Set, error) {
	set := &Set{ivs: normalize(s.in)}
	errs := s.errs
	s.in, s.errs = nil, nil
	return set, errs
}

// normalize returns the sorted and maximally merged form of ivs. After
// sorting by left bound only the next interval can merge with the current
// one: anything after it starts no earlier, so it lies beyond the same gap.
func normalize(ivs []interval.Interval) []interval.Interval {
	if len(ivs) == 0 {
		return nil
	}
	sorted := append([]interval.Interval{}, ivs...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	out := make([]interval.Interval, 0, len(sorted))
	current := sorted[0]
	for _, next := range sorted[1:] {
		if merged, ok := current.Merge(next); ok {
			current = merged
			continue
		}
		out = append(out, current)
		current = next
	}
	return append(out, current)
}
