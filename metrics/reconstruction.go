// Package metrics provides evaluation helpers for GoML estimators.
package metrics

import (
	"gonum.org/v1/gonum/mat"

	"github.com/goml-dev/goml/pkg/errors"
)

// MSE computes the mean squared error between two vectors.
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("MSE", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("MSE", n, yPred.Len(), 0)
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += diff * diff
	}
	return sum / float64(n), nil
}

// ReconstructionError computes the mean squared element-wise difference
// between an original matrix and its reconstruction. It is the natural
// quality measure for a lossy projection: with all principal components
// kept it approaches zero, and it grows as components are dropped.
func ReconstructionError(X, XRec mat.Matrix) (float64, error) {
	r, c := X.Dims()
	rr, rc := XRec.Dims()

	if r == 0 || c == 0 {
		return 0, errors.NewValueError("ReconstructionError", "empty matrix")
	}
	if r != rr {
		return 0, errors.NewDimensionError("ReconstructionError", r, rr, 0)
	}
	if c != rc {
		return 0, errors.NewDimensionError("ReconstructionError", c, rc, 1)
	}

	var sum float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			diff := X.At(i, j) - XRec.At(i, j)
			sum += diff * diff
		}
	}
	return sum / float64(r*c), nil
}
