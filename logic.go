package basicops

// And returns the conjunction of a and b.
func And(a, b bool) bool {
	return a && b
}

// Or returns the disjunction of a and b.
func Or(a, b bool) bool {
	return a || b
}

// Not returns the negation of a.
func Not(a bool) bool {
	return !a
}
