package fraction

// AddAssign sets f to f + g, reduces it and returns the updated value.
func (f *Fraction[T]) AddAssign(g Fraction[T]) Fraction[T] {
	f.num = f.num*g.den + g.num*f.den
	f.den = f.den * g.den
	f.reduce()
	return *f
}

// SubAssign sets f to f - g, reduces it and returns the updated value.
func (f *Fraction[T]) SubAssign(g Fraction[T]) Fraction[T] {
	f.num = f.num*g.den - g.num*f.den
	f.den = f.den * g.den
	f.reduce()
	return *f
}

// MulAssign sets f to f * g, reduces it and returns the updated value.
func (f *Fraction[T]) MulAssign(g Fraction[T]) Fraction[T] {
	f.num = f.num * g.num
	f.den = f.den * g.den
	f.reduce()
	return *f
}

// QuoAssign sets f to f / g by multiplying with the reciprocal of g, reduces
// it and returns the updated value. Dividing by a zero-valued g leaves f with
// a zero denominator, which is infinite or undefined depending on f.
func (f *Fraction[T]) QuoAssign(g Fraction[T]) Fraction[T] {
	f.num = f.num * g.den
	f.den = f.den * g.num
	f.reduce()
	return *f
}

// Add returns f + g.
func (f Fraction[T]) Add(g Fraction[T]) Fraction[T] {
	return f.AddAssign(g)
}

// Sub returns f - g.
func (f Fraction[T]) Sub(g Fraction[T]) Fraction[T] {
	return f.SubAssign(g)
}

// Mul returns f * g.
func (f Fraction[T]) Mul(g Fraction[T]) Fraction[T] {
	return f.MulAssign(g)
}

// Quo returns f / g. See QuoAssign for division by zero.
func (f Fraction[T]) Quo(g Fraction[T]) Fraction[T] {
	return f.QuoAssign(g)
}
