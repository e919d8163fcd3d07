// Package goml provides a scikit-learn-like machine learning library for
// Go, centered on dimensionality reduction.
//
// GoML offers a familiar estimator API (Fit, Transform, FitTransform) so
// engineers coming from Python's ecosystem can build data pipelines in Go
// without relearning the interface.
//
// # Quick Start
//
// Principal component analysis in a few lines:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/goml-dev/goml/decomposition"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
//
//	    pca := decomposition.NewPCA(decomposition.WithNComponents(1))
//	    reduced, err := pca.FitTransform(X)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println("Projection:", mat.Formatted(reduced))
//	    fmt.Println("Explained variance ratio:", pca.ExplainedVarianceRatio)
//	}
//
// # Packages
//
//   - decomposition: PCA with eigendecomposition and SVD routes
//   - preprocessing: StandardScaler for feature standardization
//   - metrics: reconstruction-error helpers
//   - core/model: shared estimator state and interfaces
//   - pkg/errors: typed errors and warnings with stack traces
//   - pkg/log: structured logging for ML operations
package goml
