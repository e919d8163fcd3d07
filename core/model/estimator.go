package model

import "gonum.org/v1/gonum/mat"

// Fitter is the interface for models that learn parameters from data.
type Fitter interface {
	// Fit learns the parameters required by the model from X.
	Fit(X mat.Matrix) error
}

// Transformer is the interface for data transformations such as scalers
// and decompositions.
type Transformer interface {
	Fitter

	// Transform applies the learned transformation to X.
	Transform(X mat.Matrix) (mat.Matrix, error)

	// FitTransform fits the model to X and transforms the same data.
	FitTransform(X mat.Matrix) (mat.Matrix, error)
}

// InverseTransformer is implemented by transformers that can map
// transformed data back to the original feature space.
type InverseTransformer interface {
	// InverseTransform reverses the transformation applied by Transform.
	InverseTransform(X mat.Matrix) (mat.Matrix, error)
}

// ParameterGetter is the interface for models that expose their
// hyperparameters.
type ParameterGetter interface {
	// GetParams returns the model's hyperparameters.
	GetParams() map[string]interface{}
}
