package fraction

// Equal reports whether f and g have the same numerator and denominator.
// Since finite values are always reduced this is numeric equality for them.
// Two undefined values compare equal.
func (f Fraction[T]) Equal(g Fraction[T]) bool {
	return f.num == g.num && f.den == g.den
}

// Greater reports whether f.num*g.den > g.num*f.den.
//
// The cross product only orders finite values. With a zero denominator on
// either side the result says nothing about the mathematical ordering; for
// instance Inf and NaN are neither greater nor less than each other.
func (f Fraction[T]) Greater(g Fraction[T]) bool {
	return f.num*g.den > g.num*f.den
}

// NotEqual is !f.Equal(g).
func (f Fraction[T]) NotEqual(g Fraction[T]) bool {
	return !f.Equal(g)
}

// Less is g.Greater(f).
func (f Fraction[T]) Less(g Fraction[T]) bool {
	return g.Greater(f)
}

// GreaterOrEqual is !g.Greater(f).
func (f Fraction[T]) GreaterOrEqual(g Fraction[T]) bool {
	return !g.Greater(f)
}

// LessOrEqual is !f.Greater(g).
func (f Fraction[T]) LessOrEqual(g Fraction[T]) bool {
	return !f.Greater(g)
}
