package covariance_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/stats/covariance"
)

func ExampleEstimate() {
	samples := [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	}

	cov, _ := covariance.Estimate(samples, covariance.ModePopulation)
	fmt.Printf("%.4f %.4f\n", cov.At(0, 0), cov.At(0, 1))
	// Output:
	// 0.6667 0.6667
}
