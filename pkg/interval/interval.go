package interval

import (
	"math"
	"strconv"
	"strings"
)

// Interval is a range of real numbers with independently open or closed
// bounds. Either bound may be infinite.
//
// The zero value is the invalid interval. Operations that have no result
// (no overlap, a bound violation, an invalid operand) return it rather than
// failing, so results can be chained without checks at every step.
type Interval struct {
	leftInclusive  bool
	left           float64
	right          float64
	rightInclusive bool
	valid          bool
}

// Tuple is the bound tuple an Interval is built from.
type Tuple struct {
	LeftInclusive  bool
	Left           float64
	Right          float64
	RightInclusive bool
}

// Invalid returns the invalid interval.
func Invalid() Interval { return Interval{} }

// New returns the interval described by the given bounds, or the invalid
// interval if the bounds do not describe a non-empty set of reals:
//   - neither bound may be NaN and left must not exceed right
//   - an infinite bound is always open
//   - a single point (left == right) is closed on both sides
func New(leftInclusive bool, left, right float64, rightInclusive bool) Interval {
	if !isValid(leftInclusive, left, right, rightInclusive) {
		return Invalid()
	}
	return Interval{
		leftInclusive:  leftInclusive,
		left:           left,
		right:          right,
		rightInclusive: rightInclusive,
		valid:          true,
	}
}

// Reals returns (-∞, ∞).
func Reals() Interval {
	return New(false, math.Inf(-1), math.Inf(1), false)
}

// Point returns the degenerate interval {x}.
func Point(x float64) Interval {
	return New(true, x, x, true)
}

// FromTuple is New applied to a bound tuple.
func FromTuple(t Tuple) Interval {
	return New(t.LeftInclusive, t.Left, t.Right, t.RightInclusive)
}

func isValid(leftInclusive bool, left, right float64, rightInclusive bool) bool {
	switch {
	case math.IsNaN(left) || math.IsNaN(right):
		return false
	case left > right:
		return false
	case math.IsInf(left, -1) && leftInclusive, math.IsInf(right, 1) && rightInclusive:
		return false
	case left == right:
		// points only exist on the finite line
		return !math.IsInf(left, 0) && leftInclusive && rightInclusive
	}
	return true
}

func (r Interval) IsValid() bool        { return r.valid }
func (r Interval) Left() float64        { return r.left }
func (r Interval) Right() float64       { return r.right }
func (r Interval) LeftInclusive() bool  { return r.leftInclusive }
func (r Interval) RightInclusive() bool { return r.rightInclusive }

// Tuple returns the bounds of r. The tuple of the invalid interval is the
// zero Tuple.
func (r Interval) Tuple() Tuple {
	return Tuple{
		LeftInclusive:  r.leftInclusive,
		Left:           r.left,
		Right:          r.right,
		RightInclusive: r.rightInclusive,
	}
}

// IsPoint reports whether r holds exactly one number.
func (r Interval) IsPoint() bool { return r.valid && r.left == r.right }

// IsReals reports whether r is the whole real line.
func (r Interval) IsReals() bool {
	return r.valid && math.IsInf(r.left, -1) && math.IsInf(r.right, 1)
}

// Contains reports whether x lies in r.
func (r Interval) Contains(x float64) bool {
	if !r.valid || math.IsNaN(x) {
		return false
	}
	if x < r.left || (x == r.left && !r.leftInclusive) {
		return false
	}
	if x > r.right || (x == r.right && !r.rightInclusive) {
		return false
	}
	return true
}

// Less orders intervals by their left bound.
func (r Interval) Less(other Interval) bool {
	return r.CompareLeft(other) < 0
}

// Overlap returns the intersection of r and other, or the invalid interval
// if they share no point.
func (r Interval) Overlap(other Interval) Interval {
	if !r.valid || !other.valid {
		return Invalid()
	}
	_, left := r.leftBounds(other)
	right, _ := r.rightBounds(other)
	return New(left.inclusive, left.value, right.value, right.inclusive)
}

// Merge returns the union of r and other when it is a single interval, that
// is when they overlap or touch without leaving a point out: [1, 3) and
// [3, 5] merge, [1, 3) and (3, 5] do not. ok is false when there is a gap.
//
// An invalid operand yields the invalid interval with ok set, since the
// result stands for both operands.
func (r Interval) Merge(other Interval) (merged Interval, ok bool) {
	if !r.valid || !other.valid {
		return Invalid(), true
	}
	outerLeft, innerLeft := r.leftBounds(other)
	innerRight, outerRight := r.rightBounds(other)
	// whatever lies between the first right bound and the second left bound
	// is not covered by either operand
	gap := New(!innerRight.inclusive, innerRight.value, innerLeft.value, !innerLeft.inclusive)
	if gap.IsValid() {
		return Invalid(), false
	}
	return New(outerLeft.inclusive, outerLeft.value, outerRight.value, outerRight.inclusive), true
}

// Remove returns what is left of r once other is taken out of it: the part
// below other and the part above other. Either may be invalid when nothing
// remains on that side. If other is invalid r is returned as lower.
func (r Interval) Remove(other Interval) (lower, upper Interval) {
	if !r.valid {
		return Invalid(), Invalid()
	}
	if !other.valid {
		return r, Invalid()
	}
	lower = r.Overlap(New(r.leftInclusive, r.left, other.left, !other.leftInclusive))
	upper = r.Overlap(New(!other.rightInclusive, other.right, r.right, r.rightInclusive))
	return lower, upper
}

// Equal reports whether r and other have the same bounds. The invalid
// interval is not equal to anything, itself included.
func (r Interval) Equal(other Interval) bool {
	return r.valid && other.valid && r.Tuple() == other.Tuple()
}

// String renders r in bracket notation, e.g. [3, 10).
func (r Interval) String() string { return r.Format(false) }

// Inequality renders r as an inequality over x, e.g. 3 ≤ x < 10.
func (r Interval) Inequality() string { return r.Format(true) }

// Format renders r in bracket notation or, if inequality is set, as an
// inequality over x.
func (r Interval) Format(inequality bool) string {
	switch {
	case !r.valid:
		return "(invalid interval)"
	case r.IsPoint():
		if inequality {
			return "x = " + formatValue(r.left)
		}
		return "{" + formatValue(r.left) + "}"
	case r.IsReals():
		if inequality {
			return "x ∈ R"
		}
		return "R"
	}

	var sb strings.Builder
	if inequality {
		if !math.IsInf(r.left, 0) {
			sb.WriteString(formatValue(r.left))
			sb.WriteString(relation(r.leftInclusive))
		}
		sb.WriteString("x")
		if !math.IsInf(r.right, 0) {
			sb.WriteString(relation(r.rightInclusive))
			sb.WriteString(formatValue(r.right))
		}
		return sb.String()
	}

	if r.leftInclusive {
		sb.WriteByte('[')
	} else {
		sb.WriteByte('(')
	}
	sb.WriteString(formatValue(r.left))
	sb.WriteString(", ")
	sb.WriteString(formatValue(r.right))
	if r.rightInclusive {
		sb.WriteByte(']')
	} else {
		sb.WriteByte(')')
	}
	return sb.String()
}

func relation(inclusive bool) string {
	if inclusive {
		return " ≤ "
	}
	return " < "
}

func formatValue(v float64) string {
	switch {
	case math.IsInf(v, -1):
		return "-∞"
	case math.IsInf(v, 1):
		return "∞"
	case v == 0:
		// no "-0"
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
