package fraction

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Fraction is the rational number num/den over the signed integer type T.
//
// The zero value is 0/0, the undefined fraction. Use FromInt(0) for zero.
// Fraction values are safe to copy; the pointer-receiver compound operations
// are the only methods that modify a value in place.
type Fraction[T constraints.Signed] struct {
	num T
	den T
}

// FromInt returns the fraction num/1.
func FromInt[T constraints.Signed](num T) Fraction[T] {
	return Fraction[T]{num: num, den: 1}
}

// New returns num/den in reduced form.
//
// A negative denominator moves its sign to the numerator. A zero denominator
// is stored as given and the fraction is left unreduced, yielding an infinite
// value when num != 0 and the undefined value when num == 0.
func New[T constraints.Signed](num, den T) Fraction[T] {
	f := Fraction[T]{num: num, den: den}
	if den < 0 {
		f.num, f.den = -num, -den
	}
	f.reduce()
	return f
}

// Num returns the stored numerator.
func (f Fraction[T]) Num() T { return f.num }

// Den returns the stored denominator. It is never negative for a value
// produced by this package unless arithmetic overflowed.
func (f Fraction[T]) Den() T { return f.den }

// IsFinite reports whether the denominator is non-zero.
func (f Fraction[T]) IsFinite() bool {
	return f.den != 0
}

// IsInf reports whether f is an infinite value (n/0 with n != 0).
func (f Fraction[T]) IsInf() bool {
	return f.den == 0 && f.num != 0
}

// IsNaN reports whether f is the undefined value 0/0.
func (f Fraction[T]) IsNaN() bool {
	return f.den == 0 && f.num == 0
}

// Kind classifies f as Finite, Infinite or Undefined.
func (f Fraction[T]) Kind() Kind {
	switch {
	case f.IsNaN():
		return Undefined
	case f.IsInf():
		return Infinite
	default:
		return Finite
	}
}

// Sign returns -1, 0 or +1 according to the sign of the numerator. For an
// infinite value this is the direction of the infinity, which String does
// not render.
func (f Fraction[T]) Sign() int {
	switch {
	case f.num < 0:
		return -1
	case f.num > 0:
		return 1
	default:
		return 0
	}
}

// String renders f as "NaN", "Inf" or "num/den".
func (f Fraction[T]) String() string {
	switch {
	case f.IsNaN():
		return "NaN"
	case f.IsInf():
		return "Inf"
	}
	return strconv.FormatInt(int64(f.num), 10) + "/" + strconv.FormatInt(int64(f.den), 10)
}

// reduce restores the canonical form after a construction or an arithmetic
// update. Degenerate values are left untouched.
func (f *Fraction[T]) reduce() {
	if f.den == 0 {
		return
	}
	if f.den < 0 {
		f.num, f.den = -f.num, -f.den
	}
	a := f.num
	if a < 0 {
		a = -a
	}
	g := gcd(a, f.den)
	f.num /= g
	f.den /= g
}
