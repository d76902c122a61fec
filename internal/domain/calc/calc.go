package calc

import "github.com/phrazzld/calc-api/internal/domain"

// Integer is the set of integer kinds accepted by the parity checks.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Number is the set of numeric kinds accepted by the arithmetic operations.
type Number interface {
	Integer | ~float32 | ~float64
}

// Add returns the sum of a and b.
func Add[T Number](a, b T) T {
	return a + b
}

// Subtract returns a minus b.
func Subtract[T Number](a, b T) T {
	return a - b
}

// Multiply returns a times b.
func Multiply[T Number](a, b T) T {
	return a * b
}

// Divide returns a divided by b as a float64, so integer operands that do not
// divide evenly keep their fractional part. It returns domain.ErrDivideByZero
// when b is zero.
func Divide[T Number](a, b T) (float64, error) {
	if b == 0 {
		return 0, domain.ErrDivideByZero
	}
	return float64(a) / float64(b), nil
}

// IsEven reports whether n is divisible by two. Zero is even.
func IsEven[T Integer](n T) bool {
	return n%2 == 0
}

// IsOdd reports whether n is not divisible by two.
func IsOdd[T Integer](n T) bool {
	return !IsEven(n)
}
