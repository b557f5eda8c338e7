package fibonacci

import "fmt"

// ExampleCompute demonstrates computing a single value with Fast Doubling.
func ExampleCompute() {
	v, err := Compute(92)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println(v)
	// Output: 7540113804746346429
}

// ExampleNewDefaultFactory demonstrates using the factory to obtain
// pre-registered calculators by name.
func ExampleNewDefaultFactory() {
	factory := NewDefaultFactory()
	fmt.Println(factory.List())

	calc, err := factory.Get("iterative")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	v, _ := calc.Compute(20)
	fmt.Println(v)
	// Output:
	// [fast iterative]
	// 6765
}

// ExampleIndexError shows the error returned past the supported range.
func ExampleIndexError() {
	_, err := Compute(MaxIndex + 1)
	fmt.Println(err)
	// Output: fibonacci: index 614 out of range [0, 613]
}
