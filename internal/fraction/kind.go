package fraction

// Kind distinguishes the three states a Fraction can be in.
type Kind int

const (
	// Finite is any fraction with a non-zero denominator.
	Finite Kind = iota
	// Infinite is n/0 with n != 0.
	Infinite
	// Undefined is 0/0.
	Undefined
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Finite:
		return "finite"
	case Infinite:
		return "infinite"
	case Undefined:
		return "undefined"
	default:
		return "unknown"
	}
}
