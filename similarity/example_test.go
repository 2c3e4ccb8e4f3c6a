package similarity_test

import (
	"fmt"

	"github.com/hupe1980/groundtruth/similarity"
)

func ExampleDot() {
	dot, err := similarity.Dot([]float64{1, 2, 3}, []float64{4, 5, 6})
	if err != nil {
		panic(err)
	}
	fmt.Println(dot)
	// Output: 32
}

func ExampleL2Norm() {
	fmt.Println(similarity.L2Norm([]float64{3, 4}))
	// Output: 5
}

func ExampleCosine() {
	sim, _ := similarity.Cosine([]float64{1, 0}, []float64{0, 1})
	fmt.Println(sim)

	// Zero vectors have no direction; the similarity is defined as 0.
	sim, _ = similarity.Cosine([]float64{0, 0}, []float64{1, 1})
	fmt.Println(sim)
	// Output:
	// 0
	// 0
}

func ExampleNormalize() {
	fmt.Println(similarity.Normalize([]float64{3, 4}))
	fmt.Println(similarity.Normalize([]float64{0, 0}))
	// Output:
	// [0.6 0.8]
	// [0 0]
}
