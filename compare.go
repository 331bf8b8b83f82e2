package basicops

// Ordered constrains the comparison operations to types with a standard
// total order. Floating-point NaN operands compare false under every
// predicate except NotEqual, per IEEE 754.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64 | ~string
}

// LessThan reports whether a < b.
func LessThan[T Ordered](a, b T) bool {
	return a < b
}

// GreaterThan reports whether a > b.
func GreaterThan[T Ordered](a, b T) bool {
	return a > b
}

// Equal reports whether a == b.
func Equal[T Ordered](a, b T) bool {
	return a == b
}

// NotEqual reports whether a != b.
func NotEqual[T Ordered](a, b T) bool {
	return a != b
}

// LessEqual reports whether a <= b.
func LessEqual[T Ordered](a, b T) bool {
	return a <= b
}

// GreaterEqual reports whether a >= b.
func GreaterEqual[T Ordered](a, b T) bool {
	return a >= b
}
