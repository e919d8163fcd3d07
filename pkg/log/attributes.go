package log

// Model and operation context.
// These attributes identify the model type and the operation being
// performed, following a hierarchical naming convention ("model.name",
// "data.samples") so logs can be filtered structurally.
const (
	// ModelNameKey identifies the type of model.
	// Examples: "PCA", "StandardScaler"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "transform", "fit_transform", "inverse_transform"
	OperationKey = "ml.operation"

	// MethodKey records the decomposition method in use ("eigen" or "svd").
	MethodKey = "ml.method"
)

// Data shape and characteristics.
const (
	// SamplesKey indicates the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features (columns) in the dataset.
	FeaturesKey = "data.features"

	// ComponentsKey indicates the number of principal components kept.
	ComponentsKey = "data.components"
)

// Performance metrics.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// ExplainedVarianceKey records the cumulative explained variance ratio
	// of the components kept by a decomposition.
	ExplainedVarianceKey = "metrics.explained_variance_ratio"
)
