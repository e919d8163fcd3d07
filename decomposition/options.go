package decomposition

// Option is a function that configures PCA.
type Option func(*PCA)

// WithNComponents sets the number of principal components to keep.
// When not set, all components are kept (one per feature seen at fit
// time). The value is validated against the feature count during Fit.
func WithNComponents(n int) Option {
	return func(p *PCA) {
		p.NComponents = n
	}
}

// WithMethod sets the decomposition method, MethodEigen or MethodSVD.
// An unrecognized method fails validation at the first Fit call.
func WithMethod(m Method) Option {
	return func(p *PCA) {
		p.Method = m
	}
}
