// Package model provides the core abstractions shared by all estimators
// in the GoML library.
//
// Every estimator embeds BaseEstimator to get consistent fitted-state
// tracking, and transformers additionally satisfy the Transformer
// interface defined in estimator.go. The fitted-state check is what turns
// a call on an untrained model into a typed NotFittedError instead of a
// panic or silent garbage output.
package model

// EstimatorState represents the learning state of a model.
type EstimatorState int

const (
	// NotFitted indicates the model has not been trained yet.
	NotFitted EstimatorState = iota
	// Fitted indicates the model has been trained.
	Fitted
)

// BaseEstimator is the base structure embedded by all models.
//
// It is intentionally minimal: a model transitions from NotFitted to
// Fitted on each successful Fit call, and a failed Fit must leave the
// previous state untouched. BaseEstimator itself carries no locking;
// estimators are not safe for concurrent use and callers that need
// concurrency must use independent instances or synchronize externally.
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted returns whether the model has been fitted with training data.
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted marks the estimator as fitted. Called by model
// implementations at the end of a successful Fit, never by end users.
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset returns the estimator to the NotFitted state.
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}
