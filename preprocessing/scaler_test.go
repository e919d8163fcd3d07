package preprocessing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/goml-dev/goml/decomposition"
	"github.com/goml-dev/goml/pkg/errors"
)

func TestStandardScalerFitTransform(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		1, 10,
		2, 20,
		3, 30,
		4, 40,
	})

	scaler := NewStandardScalerDefault()
	scaled, err := scaler.FitTransform(X)
	require.NoError(t, err)

	assert.InDelta(t, 2.5, scaler.Mean[0], 1e-10)
	assert.InDelta(t, 25.0, scaler.Mean[1], 1e-10)

	// Each column should have zero mean and unit standard deviation.
	r, c := scaled.Dims()
	for j := 0; j < c; j++ {
		sum := 0.0
		for i := 0; i < r; i++ {
			sum += scaled.At(i, j)
		}
		assert.InDelta(t, 0.0, sum/float64(r), 1e-10, "column %d mean", j)

		sumSquares := 0.0
		for i := 0; i < r; i++ {
			sumSquares += scaled.At(i, j) * scaled.At(i, j)
		}
		assert.InDelta(t, 1.0, math.Sqrt(sumSquares/float64(r)), 1e-10, "column %d std", j)
	}
}

func TestStandardScalerInverseTransformRoundTrip(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		1.5, -2.0,
		0.5, 4.0,
		-3.0, 1.0,
	})

	scaler := NewStandardScalerDefault()
	scaled, err := scaler.FitTransform(X)
	require.NoError(t, err)

	restored, err := scaler.InverseTransform(scaled)
	require.NoError(t, err)

	r, c := X.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			assert.InDelta(t, X.At(i, j), restored.At(i, j), 1e-10)
		}
	}
}

func TestStandardScalerConstantFeature(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		5, 1,
		5, 2,
		5, 3,
	})

	scaler := NewStandardScalerDefault()
	scaled, err := scaler.FitTransform(X)
	require.NoError(t, err)

	// A constant feature gets scale 1 and centers to zero, never NaN.
	for i := 0; i < 3; i++ {
		assert.False(t, math.IsNaN(scaled.At(i, 0)))
		assert.InDelta(t, 0.0, scaled.At(i, 0), 1e-10)
	}
}

func TestStandardScalerTransformNotFitted(t *testing.T) {
	scaler := NewStandardScalerDefault()
	_, err := scaler.Transform(mat.NewDense(2, 2, []float64{1, 2, 3, 4}))
	require.Error(t, err)

	var notFitted *errors.NotFittedError
	assert.True(t, errors.As(err, &notFitted))
}

func TestStandardScalerDimensionMismatch(t *testing.T) {
	scaler := NewStandardScalerDefault()
	require.NoError(t, scaler.Fit(mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})))

	_, err := scaler.Transform(mat.NewDense(2, 2, []float64{1, 2, 3, 4}))
	require.Error(t, err)

	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr))
}

// TestScalerPCAPipeline standardizes data and feeds it to PCA, the usual
// preprocessing arrangement for features on different scales.
func TestScalerPCAPipeline(t *testing.T) {
	X := mat.NewDense(6, 3, []float64{
		2.5, 240, 0.05,
		0.5, 70, 0.11,
		2.2, 290, 0.03,
		1.9, 220, 0.14,
		3.1, 300, 0.02,
		2.3, 270, 0.08,
	})

	scaler := NewStandardScalerDefault()
	scaled, err := scaler.FitTransform(X)
	require.NoError(t, err)

	pca := decomposition.NewPCA(decomposition.WithNComponents(2), decomposition.WithMethod(decomposition.MethodSVD))
	projected, err := pca.FitTransform(scaled)
	require.NoError(t, err)

	r, c := projected.Dims()
	assert.Equal(t, 6, r)
	assert.Equal(t, 2, c)

	// On standardized data the total variance equals the feature count,
	// so the full cumulative ratio over all kept directions stays in (0, 1].
	last := pca.CumulativeExplainedVarianceRatio[len(pca.CumulativeExplainedVarianceRatio)-1]
	assert.Greater(t, last, 0.0)
	assert.LessOrEqual(t, last, 1.0+1e-10)
}
