package basicops

import "errors"

// ErrDivisionByZero is returned by the integer division and remainder
// operations when the divisor is zero. Floating-point division never
// returns it; dividing a float by zero follows IEEE 754 and yields a
// signed infinity (or NaN for 0/0).
var ErrDivisionByZero = errors.New("division by zero")

// Number constrains the numeric types the arithmetic operations accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Add returns a + b.
func Add[T Number](a, b T) T {
	return a + b
}

// Subtract returns a - b.
func Subtract[T Number](a, b T) T {
	return a - b
}

// Multiply returns a * b.
func Multiply[T Number](a, b T) T {
	return a * b
}

// Divide returns a / b with native IEEE 754 semantics: a nonzero a divided
// by zero yields an infinity carrying the sign of a, and 0/0 yields NaN.
// Divide never fails.
func Divide(a, b float64) float64 {
	return a / b
}

// DivideInt returns the integer quotient a / b, truncated toward zero. A
// zero divisor is reported as ErrDivisionByZero rather than a run-time
// panic.
func DivideInt(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Modulo returns the integer remainder a % b with the sign of the dividend,
// matching Go's native remainder operator. A zero divisor is reported as
// ErrDivisionByZero rather than a run-time panic.
func Modulo(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a % b, nil
}
