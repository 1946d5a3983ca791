package fraction

import "fmt"

// ExampleNew shows construction with reduction and sign normalization.
func ExampleNew() {
	fmt.Println(New(100, 150))
	fmt.Println(New(242, -10))
	fmt.Println(New(0, 33))
	fmt.Println(New(1, 0))
	fmt.Println(New(0, 0))
	// Output:
	// 2/3
	// -121/5
	// 0/1
	// Inf
	// NaN
}

// ExampleFraction_Add demonstrates the four binary operations.
func ExampleFraction_Add() {
	a := New[int32](-3, 33)
	b := New[int32](7, -21)

	fmt.Printf("%v + %v = %v\n", a, b, a.Add(b))
	fmt.Printf("%v - %v = %v\n", a, b, a.Sub(b))
	fmt.Printf("%v * %v = %v\n", a, b, a.Mul(b))
	fmt.Printf("%v / %v = %v\n", a, b, a.Quo(b))
	// Output:
	// -1/11 + -1/3 = -14/33
	// -1/11 - -1/3 = 8/33
	// -1/11 * -1/3 = 1/33
	// -1/11 / -1/3 = 3/11
}

// ExampleFraction_AddAssign shows the in-place compound form.
func ExampleFraction_AddAssign() {
	total := FromInt[int64](0)
	for _, d := range []int64{2, 3, 6} {
		total.AddAssign(New(1, d))
	}
	fmt.Println(total)
	// Output:
	// 1/1
}

// ExampleFraction_Kind shows how degenerate results are detected.
func ExampleFraction_Kind() {
	q := New[int16](5, 1).Quo(FromInt[int16](0))
	fmt.Println(q, q.Kind(), q.Sign())

	var undefined Fraction[int16]
	fmt.Println(undefined, undefined.Kind())
	// Output:
	// Inf infinite 1
	// NaN undefined
}
