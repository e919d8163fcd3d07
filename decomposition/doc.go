// Package decomposition provides matrix decomposition based estimators
// for dimensionality reduction.
//
// The main entry point is PCA, a scikit-learn compatible principal
// component analysis estimator supporting two equivalent numerical
// routes: eigendecomposition of the sample covariance matrix, and
// singular value decomposition of the centered data matrix. Both routes
// produce the same orthonormal component directions up to sign.
//
// Example:
//
//	pca := decomposition.NewPCA(
//	    decomposition.WithNComponents(2),
//	    decomposition.WithMethod(decomposition.MethodSVD),
//	)
//	reduced, err := pca.FitTransform(X)
//	if err != nil {
//	    log.Fatal(err)
//	}
package decomposition
