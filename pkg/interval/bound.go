package interval

// bound is one end of an interval.
type bound struct {
	value     float64
	inclusive bool
}

// compareLeft orders two left bounds. Of two equal values the closed bound
// comes first, as [x, ... holds more points near x than (x, ...
func compareLeft(aInclusive bool, a float64, bInclusive bool, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	case aInclusive == bInclusive:
		return 0
	case aInclusive:
		return -1
	}
	return 1
}

// compareRight orders two right bounds. Of two equal values the open bound
// comes first, as ..., x) holds fewer points near x than ..., x].
func compareRight(a float64, aInclusive bool, b float64, bInclusive bool) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	case aInclusive == bInclusive:
		return 0
	case aInclusive:
		return 1
	}
	return -1
}

// CompareRight orders r and other by their right bound.
func (r Interval) CompareRight(other Interval) int {
	return compareRight(r.right, r.rightInclusive, other.right, other.rightInclusive)
}

// CompareLeft orders r and other by their left bound.
func (r Interval) CompareLeft(other Interval) int {
	return compareLeft(r.leftInclusive, r.left, other.leftInclusive, other.left)
}

// leftBounds returns the left bounds of r and other, first one first.
func (r Interval) leftBounds(other Interval) (first, second bound) {
	a := bound{value: r.left, inclusive: r.leftInclusive}
	b := bound{value: other.left, inclusive: other.leftInclusive}
	if r.CompareLeft(other) <= 0 {
		return a, b
	}
	return b, a
}

// rightBounds returns the right bounds of r and other, first one first.
func (r Interval) rightBounds(other Interval) (first, second bound) {
	a := bound{value: r.right, inclusive: r.rightInclusive}
	b := bound{value: other.right, inclusive: other.rightInclusive}
	if r.CompareRight(other) <= 0 {
		return a, b
	}
	return b, a
}
