package sna

// Ordering is the result of comparing two serial numbers. Unlike a regular
// three-way comparison it has a fourth outcome: RFC 1982 defines no relation
// between two unequal numbers that sit exactly opposite each other on the
// circle, i.e. whose distance in either direction is half the number space.
type Ordering int

const (
	Unordered Ordering = iota
	Less
	Equal
	Greater
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	}

	return "unordered"
}

// Compare returns the ordering of a relative to b per RFC 1982 section 3.2.
// It computes the circular distance from a to b in both directions: a is
// smaller if going up from a to b is the shorter way, greater if going up
// from b to a is. If both distances are the same the pair is antipodal and
// the result is Unordered.
func (a Number[T]) Compare(b Number[T]) Ordering {
	if a.value == b.value {
		return Equal
	}

	forward := b.value - a.value
	backward := a.value - b.value

	if forward == backward {
		return Unordered
	}

	if forward < backward {
		return Less
	}

	return Greater
}

// Equals returns whether a and b hold the same value.
func (a Number[T]) Equals(b Number[T]) bool {
	return a.value == b.value
}

// Lt returns whether a is smaller than b. It is false for an antipodal pair.
func (a Number[T]) Lt(b Number[T]) bool {
	return a.Compare(b) == Less
}

// Lte returns whether a is smaller than or equal to b. It is false for an
// antipodal pair.
func (a Number[T]) Lte(b Number[T]) bool {
	if a.Equals(b) {
		return true
	}

	return a.Lt(b)
}

// Gt returns whether a is greater than b. It is false for an antipodal pair.
func (a Number[T]) Gt(b Number[T]) bool {
	return a.Compare(b) == Greater
}

// Gte returns whether a is greater than or equal to b. It is false for an
// antipodal pair.
func (a Number[T]) Gte(b Number[T]) bool {
	if a.Equals(b) {
		return true
	}

	return a.Gt(b)
}
