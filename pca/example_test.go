package pca_test

import (
	"fmt"
	"log"

	"github.com/varlab/princomp/matrix"
	"github.com/varlab/princomp/pca"
)

// ExampleAnalyze demonstrates the one-call pipeline on a small matrix whose
// two features are uncorrelated with equal variance.
func ExampleAnalyze() {
	x, err := matrix.FromRows([][]float64{
		{2, 0},
		{0, 2},
		{-2, 0},
		{0, -2},
	})
	if err != nil {
		log.Fatal(err)
	}

	result, err := pca.Analyze(x, pca.WithComponents(2))
	if err != nil {
		log.Fatal(err)
	}

	for i, ratio := range result.Ratios {
		fmt.Printf("PC%d explains %.1f%%\n", i+1, ratio*100)
	}
	fmt.Println(result)

	// Output:
	// PC1 explains 50.0%
	// PC2 explains 50.0%
	// Result{Method: Eigen, Components: 2/2, Captured: 100.00%}
}

// ExampleEigenDecompose decomposes a diagonal covariance matrix, where the
// eigenvalues are simply the diagonal entries sorted in descending order.
func ExampleEigenDecompose() {
	c, err := matrix.FromRows([][]float64{
		{1, 0, 0},
		{0, 5, 0},
		{0, 0, 3},
	})
	if err != nil {
		log.Fatal(err)
	}

	pairs, err := pca.EigenDecompose(c)
	if err != nil {
		log.Fatal(err)
	}

	for _, pair := range pairs {
		fmt.Printf("λ=%.0f\n", pair.Value)
	}

	// Output:
	// λ=5
	// λ=3
	// λ=1
}

// ExampleExplainedVarianceRatio shows the variance split for a fixed
// eigenvalue spectrum.
func ExampleExplainedVarianceRatio() {
	ratios, err := pca.ExplainedVarianceRatio([]float64{6, 3, 1})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%.1f %.1f %.1f\n", ratios[0], ratios[1], ratios[2])

	// Output:
	// 0.6 0.3 0.1
}
