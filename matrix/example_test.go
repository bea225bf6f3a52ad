package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/matbench/matrix"
)

// ExampleMultiply computes a 2×2 product into a preallocated output.
func ExampleMultiply() {
	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.FromRows([][]float64{{5, 6}, {7, 8}})
	c, _ := matrix.NewSquare(2)
	defer a.Close()
	defer b.Close()
	defer c.Close()

	if err := matrix.Multiply(a, b, c); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(c)

	// Output:
	// [19, 22]
	// [43, 50]
}

// ExampleMultiplyWith runs the row-parallel kernel on mapped storage and
// checks the result against gonum.
func ExampleMultiplyWith() {
	opt := matrix.WithStorage(matrix.StorageMmap)
	src := matrix.NewSource(1)
	a, _ := matrix.NewRandomSquare(64, src, opt)
	b, _ := matrix.NewRandomSquare(64, src, opt)
	c, _ := matrix.NewSquare(64, opt)
	defer a.Close()
	defer b.Close()
	defer c.Close()

	err := matrix.MultiplyWith(matrix.KernelParallel, a, b, c, matrix.WithWorkers(4))
	fmt.Println("multiply:", err)
	fmt.Println("verify:", matrix.Verify(a, b, c, matrix.DefaultVerifyTolerance))

	// Output:
	// multiply: <nil>
	// verify: <nil>
}

// ExampleMultiplyWith_transposed lists every kernel; all produce the textbook result.
func ExampleMultiplyWith_transposed() {
	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.FromRows([][]float64{{5, 6}, {7, 8}})
	defer a.Close()
	defer b.Close()

	for _, k := range []matrix.Kernel{matrix.KernelNaive, matrix.KernelParallel, matrix.KernelTransposed, matrix.KernelGonum} {
		c, err := matrix.Product(k, a, b)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%s: %v\n", k, c.String() == "[19, 22]\n[43, 50]\n")
		_ = c.Close()
	}

	// Output:
	// naive: true
	// parallel: true
	// transposed: true
	// gonum: true
}
