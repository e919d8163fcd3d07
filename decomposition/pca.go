package decomposition

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/goml-dev/goml/core/model"
	"github.com/goml-dev/goml/pkg/errors"
)

// Method selects the numerical route used to extract principal
// components. The two methods are mathematically equivalent up to the
// sign of individual components.
type Method string

const (
	// MethodEigen extracts components as eigenvectors of the sample
	// covariance matrix, using a solver specialized for symmetric
	// matrices so eigenvalues are real by construction.
	MethodEigen Method = "eigen"

	// MethodSVD extracts components as right singular vectors of the
	// centered data matrix.
	MethodSVD Method = "svd"
)

// Relative threshold below which an eigenvalue is treated as zero when
// estimating the effective rank of the covariance matrix.
const rankTolerance = 1e-12

// PCA is a scikit-learn compatible Principal Component Analysis
// estimator. It learns a linear subspace capturing the maximal variance
// directions of the training data and projects data onto that subspace.
//
// PCA is not safe for concurrent use: a Fit in progress must not be
// interleaved with Transform or Fit on the same instance. Callers that
// need concurrency must use independent instances or synchronize
// externally.
type PCA struct {
	model.BaseEstimator

	// NComponents is the requested number of components. 0 means all
	// components are kept, resolved to the feature count at fit time.
	NComponents int

	// Method is the decomposition route, MethodEigen or MethodSVD.
	Method Method

	// Components holds the principal axes as rows
	// (effective n_components × n_features), ranked by non-increasing
	// explained variance. Rows are mutually orthonormal.
	Components *mat.Dense

	// Mean is the per-feature mean of the training data.
	Mean []float64

	// ExplainedVariance holds the variance captured along each kept
	// component (covariance eigenvalues, or s²/(n−1) on the SVD route).
	ExplainedVariance []float64

	// ExplainedVarianceRatio holds each kept component's share of the
	// total variance.
	ExplainedVarianceRatio []float64

	// CumulativeExplainedVarianceRatio holds the running sum of
	// ExplainedVarianceRatio.
	CumulativeExplainedVarianceRatio []float64

	// NFeaturesIn is the feature count seen during Fit.
	NFeaturesIn int

	// NSamplesSeen is the sample count seen during Fit.
	NSamplesSeen int
}

// NewPCA creates a new PCA estimator. By default all components are kept
// and the eigendecomposition route is used.
//
// Example:
//
//	pca := decomposition.NewPCA(decomposition.WithNComponents(2))
//	if err := pca.Fit(X); err != nil {
//	    log.Fatal(err)
//	}
//	reduced, err := pca.Transform(X)
func NewPCA(opts ...Option) *PCA {
	p := &PCA{
		Method: MethodEigen,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Fit learns the principal components of X (n_samples × n_features).
//
// Validation happens eagerly at entry: fewer than two samples or an
// empty feature dimension fails with InsufficientDataError, an
// unrecognized method or an out-of-range NComponents fails with
// ValidationError. On any error the previously fitted state, if one
// exists, is left untouched.
//
// A rank-deficient covariance matrix (repeated or near-zero eigenvalues)
// is not an error: the components remain orthonormal, and a
// RankDeficiencyWarning is raised through the pkg/errors warning system.
func (p *PCA) Fit(X mat.Matrix) error {
	n, d := X.Dims()
	if n < 2 {
		return errors.NewInsufficientDataError("PCA.Fit", 2, n, "samples")
	}
	if d < 1 {
		return errors.NewInsufficientDataError("PCA.Fit", 1, d, "features")
	}
	if p.Method != MethodEigen && p.Method != MethodSVD {
		return errors.NewValidationError("decomposition_method", "must be 'eigen' or 'svd'", string(p.Method))
	}

	// Resolve the effective component count. 0 means all features.
	k := p.NComponents
	if k == 0 {
		k = d
	}
	if k < 1 || k > d {
		return errors.NewValidationError("n_components",
			fmt.Sprintf("must be in [1, %d]", d), p.NComponents)
	}

	mean := make([]float64, d)
	for j := 0; j < d; j++ {
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += X.At(i, j)
		}
		mean[j] = sum / float64(n)
	}

	centered := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			centered.Set(i, j, X.At(i, j)-mean[j])
		}
	}

	// variances holds eigenvalue-equivalents for every available
	// direction in descending order; components holds the top k
	// directions as rows.
	var variances []float64
	var components *mat.Dense

	switch p.Method {
	case MethodEigen:
		cov := mat.NewSymDense(d, nil)
		stat.CovarianceMatrix(cov, centered, nil)

		var eig mat.EigenSym
		if !eig.Factorize(cov, true) {
			return errors.NewModelError("PCA.Fit", "eigendecomposition failed", errors.ErrSingularMatrix)
		}

		// EigenSym returns eigenvalues in ascending order; reverse to
		// rank components by descending explained variance.
		vals := eig.Values(nil)
		var vecs mat.Dense
		eig.VectorsTo(&vecs)

		variances = make([]float64, d)
		for i := 0; i < d; i++ {
			variances[i] = vals[d-1-i]
		}

		components = mat.NewDense(k, d, nil)
		for i := 0; i < k; i++ {
			src := d - 1 - i
			for j := 0; j < d; j++ {
				components.Set(i, j, vecs.At(j, src))
			}
		}

	case MethodSVD:
		var svd mat.SVD
		if !svd.Factorize(centered, mat.SVDThin) {
			return errors.NewModelError("PCA.Fit", "svd factorization failed", errors.ErrSingularMatrix)
		}

		// Thin SVD yields min(n, d) right singular vectors; with fewer
		// samples than features not every requested direction exists.
		sv := svd.Values(nil)
		if k > len(sv) {
			return errors.NewInsufficientDataError("PCA.Fit", k, n, "samples")
		}

		// Singular values arrive in non-increasing order, so no re-sort
		// is needed. Eigenvalue-equivalents are s²/(n−1).
		variances = make([]float64, len(sv))
		for i, s := range sv {
			variances[i] = s * s / float64(n-1)
		}

		var v mat.Dense
		svd.VTo(&v)

		components = mat.NewDense(k, d, nil)
		for i := 0; i < k; i++ {
			for j := 0; j < d; j++ {
				components.Set(i, j, v.At(j, i))
			}
		}
	}

	totalVariance := 0.0
	for _, v := range variances {
		totalVariance += v
	}

	explained := make([]float64, k)
	ratio := make([]float64, k)
	cumulative := make([]float64, k)
	runningSum := 0.0
	for i := 0; i < k; i++ {
		explained[i] = variances[i]
		if totalVariance > 0 {
			ratio[i] = variances[i] / totalVariance
		}
		runningSum += ratio[i]
		cumulative[i] = runningSum
	}

	if rank := effectiveRank(variances); rank < d {
		errors.Warn(errors.NewRankDeficiencyWarning("PCA", rank, d))
	}

	// The new state is built fully above; only now is it swapped in, so
	// a failed Fit can never leave the estimator partially fitted.
	p.Mean = mean
	p.Components = components
	p.ExplainedVariance = explained
	p.ExplainedVarianceRatio = ratio
	p.CumulativeExplainedVarianceRatio = cumulative
	p.NFeaturesIn = d
	p.NSamplesSeen = n
	p.SetFitted()

	return nil
}

// Transform projects X onto the learned principal components, returning
// a matrix of shape (n_samples × effective n_components). Neither X nor
// the fitted state is mutated.
func (p *PCA) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !p.IsFitted() {
		return nil, errors.NewNotFittedError("PCA", "Transform")
	}

	_, d := X.Dims()
	if d != p.NFeaturesIn {
		return nil, errors.NewDimensionError("PCA.Transform", p.NFeaturesIn, d, 1)
	}

	centered := p.centerWithMean(X)

	var projected mat.Dense
	projected.Mul(centered, p.Components.T())
	return &projected, nil
}

// FitTransform fits the model to X and returns the projection of the
// same data. It is equivalent to Fit followed by Transform.
func (p *PCA) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := p.Fit(X); err != nil {
		return nil, err
	}
	return p.Transform(X)
}

// InverseTransform maps projected data back to the original feature
// space: X ≈ Y·Components + Mean. With all components kept the
// round trip Transform then InverseTransform recovers the input up to
// floating point error; with fewer components it is the least-squares
// reconstruction from the kept directions.
func (p *PCA) InverseTransform(X mat.Matrix) (mat.Matrix, error) {
	if !p.IsFitted() {
		return nil, errors.NewNotFittedError("PCA", "InverseTransform")
	}

	n, k := X.Dims()
	kept, _ := p.Components.Dims()
	if k != kept {
		return nil, errors.NewDimensionError("PCA.InverseTransform", kept, k, 1)
	}

	var reconstructed mat.Dense
	reconstructed.Mul(X, p.Components)
	for i := 0; i < n; i++ {
		for j := 0; j < p.NFeaturesIn; j++ {
			reconstructed.Set(i, j, reconstructed.At(i, j)+p.Mean[j])
		}
	}
	return &reconstructed, nil
}

// GetParams returns the estimator's hyperparameters.
func (p *PCA) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"n_components":         p.NComponents,
		"decomposition_method": string(p.Method),
	}
}

// String returns a string representation of the estimator.
func (p *PCA) String() string {
	if !p.IsFitted() {
		return fmt.Sprintf("PCA(n_components=%d, decomposition_method=%s)", p.NComponents, p.Method)
	}
	kept, _ := p.Components.Dims()
	return fmt.Sprintf("PCA(n_components=%d, decomposition_method=%s, n_features=%d, n_components_kept=%d)",
		p.NComponents, p.Method, p.NFeaturesIn, kept)
}

// centerWithMean subtracts the stored training mean from every row of X.
func (p *PCA) centerWithMean(X mat.Matrix) *mat.Dense {
	n, d := X.Dims()
	centered := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			centered.Set(i, j, X.At(i, j)-p.Mean[j])
		}
	}
	return centered
}

// effectiveRank counts eigenvalues that are non-negligible relative to
// the largest one. The variances slice may be shorter than the feature
// count on the SVD route when there are fewer samples than features; the
// missing directions have zero variance by construction.
func effectiveRank(variances []float64) int {
	if len(variances) == 0 {
		return 0
	}
	threshold := variances[0] * rankTolerance
	rank := 0
	for _, v := range variances {
		if v > threshold && v > 0 {
			rank++
		}
	}
	return rank
}
