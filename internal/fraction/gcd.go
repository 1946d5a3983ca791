package fraction

import "golang.org/x/exp/constraints"

// gcd returns the greatest common divisor of a and b using the Euclidean
// remainder loop. b must be positive. gcd(0, b) is b, so reducing 0/b
// yields 0/1.
//
// a is expected to be non-negative. The only negative input reduce can pass
// is the most negative value of T, whose negation wraps; the loop still
// terminates with a divisor of the right magnitude, so the sign is dropped
// before returning.
func gcd[T constraints.Signed](a, b T) T {
	r := a % b
	for r != 0 {
		a, b = b, r
		r = a % b
	}
	if b < 0 {
		b = -b
	}
	return b
}
