package fraction

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Operand bounds keep every intermediate cross product well inside int64.
const (
	propMin = -10000
	propMax = 10000
)

// newProperties returns a property set with the parameters shared by every
// test in this file.
func newProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return gopter.NewProperties(parameters)
}

func numGen() gopter.Gen { return gen.Int64Range(propMin, propMax) }
func denGen() gopter.Gen { return gen.Int64Range(1, propMax) }

// isCanonical reports whether f is degenerate or reduced with a positive
// denominator.
func isCanonical(f Fraction[int64]) bool {
	if f.Den() == 0 {
		return true
	}
	if f.Den() < 0 {
		return false
	}
	n := f.Num()
	if n < 0 {
		n = -n
	}
	return gcdInt64(n, f.Den()) == 1
}

func gcdInt64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func toRat(f Fraction[int64]) *big.Rat {
	return big.NewRat(f.Num(), f.Den())
}

// TestCanonicalForm_PropertyBased verifies that construction and every
// arithmetic operation leave finite results in lowest terms with a positive
// denominator.
func TestCanonicalForm_PropertyBased(t *testing.T) {
	properties := newProperties()

	properties.Property("New yields canonical form", prop.ForAll(
		func(n, d int64) bool {
			return isCanonical(New(n, d))
		},
		numGen(), gen.Int64Range(propMin, propMax),
	))

	properties.Property("arithmetic yields canonical form", prop.ForAll(
		func(an, ad, bn, bd int64) bool {
			a, b := New(an, ad), New(bn, bd)
			return isCanonical(a.Add(b)) &&
				isCanonical(a.Sub(b)) &&
				isCanonical(a.Mul(b)) &&
				isCanonical(a.Quo(b))
		},
		numGen(), denGen(), numGen(), denGen(),
	))

	properties.Property("reduction is idempotent", prop.ForAll(
		func(n, d int64) bool {
			f := New(n, d)
			g := f
			g.reduce()
			return f.Equal(g)
		},
		numGen(), gen.Int64Range(propMin, propMax),
	))

	properties.TestingRun(t)
}

// TestAlgebraicLaws_PropertyBased verifies commutativity, identities and the
// multiplicative inverse on finite values.
func TestAlgebraicLaws_PropertyBased(t *testing.T) {
	properties := newProperties()

	properties.Property("a+b == b+a", prop.ForAll(
		func(an, ad, bn, bd int64) bool {
			a, b := New(an, ad), New(bn, bd)
			return a.Add(b).Equal(b.Add(a))
		},
		numGen(), denGen(), numGen(), denGen(),
	))

	properties.Property("a*b == b*a", prop.ForAll(
		func(an, ad, bn, bd int64) bool {
			a, b := New(an, ad), New(bn, bd)
			return a.Mul(b).Equal(b.Mul(a))
		},
		numGen(), denGen(), numGen(), denGen(),
	))

	properties.Property("a+0 == a and a*1 == a", prop.ForAll(
		func(n, d int64) bool {
			a := New(n, d)
			return a.Add(FromInt[int64](0)).Equal(a) && a.Mul(FromInt[int64](1)).Equal(a)
		},
		numGen(), denGen(),
	))

	properties.Property("a/b*b == a for non-zero b", prop.ForAll(
		func(an, ad, bn, bd int64, negative bool) bool {
			if negative {
				bn = -bn
			}
			a, b := New(an, ad), New(bn, bd)
			return a.Quo(b).Mul(b).Equal(a)
		},
		numGen(), denGen(), gen.Int64Range(1, propMax), denGen(), gen.Bool(),
	))

	properties.Property("New(n, -d) == New(-n, d)", prop.ForAll(
		func(n, d int64) bool {
			return New(n, -d).Equal(New(-n, d))
		},
		numGen(), denGen(),
	))

	properties.TestingRun(t)
}

// TestBigRatAgreement_PropertyBased cross-checks finite results and the
// ordering against math/big.Rat.
func TestBigRatAgreement_PropertyBased(t *testing.T) {
	properties := newProperties()

	properties.Property("arithmetic matches big.Rat", prop.ForAll(
		func(an, ad, bn, bd int64) bool {
			a, b := New(an, ad), New(bn, bd)
			ra, rb := toRat(a), toRat(b)

			if toRat(a.Add(b)).Cmp(new(big.Rat).Add(ra, rb)) != 0 {
				return false
			}
			if toRat(a.Sub(b)).Cmp(new(big.Rat).Sub(ra, rb)) != 0 {
				return false
			}
			if toRat(a.Mul(b)).Cmp(new(big.Rat).Mul(ra, rb)) != 0 {
				return false
			}
			q := a.Quo(b)
			if rb.Sign() == 0 {
				return !q.IsFinite()
			}
			return toRat(q).Cmp(new(big.Rat).Quo(ra, rb)) == 0
		},
		numGen(), denGen(), numGen(), denGen(),
	))

	properties.Property("ordering matches big.Rat", prop.ForAll(
		func(an, ad, bn, bd int64) bool {
			a, b := New(an, ad), New(bn, bd)
			c := toRat(a).Cmp(toRat(b))
			return a.Greater(b) == (c > 0) &&
				a.Less(b) == (c < 0) &&
				a.GreaterOrEqual(b) == (c >= 0) &&
				a.LessOrEqual(b) == (c <= 0) &&
				a.Equal(b) == (c == 0) &&
				a.NotEqual(b) == (c != 0)
		},
		numGen(), denGen(), numGen(), denGen(),
	))

	properties.TestingRun(t)
}

// TestDegenerateArithmetic_PropertyBased verifies that an infinite left
// operand never becomes finite.
func TestDegenerateArithmetic_PropertyBased(t *testing.T) {
	properties := newProperties()

	properties.Property("Inf op finite stays non-finite", prop.ForAll(
		func(in, bn, bd int64) bool {
			if in == 0 {
				in = 1
			}
			inf, b := New(in, 0), New(bn, bd)
			return !inf.Add(b).IsFinite() &&
				!inf.Sub(b).IsFinite() &&
				!inf.Mul(b).IsFinite() &&
				!inf.Quo(b).IsFinite()
		},
		numGen(), numGen(), denGen(),
	))

	properties.Property("Inf divided by a non-zero finite is Inf", prop.ForAll(
		func(in, bn, bd int64) bool {
			if in == 0 {
				in = 1
			}
			if bn == 0 {
				bn = 1
			}
			return New(in, 0).Quo(New(bn, bd)).IsInf()
		},
		numGen(), numGen(), denGen(),
	))

	properties.TestingRun(t)
}
