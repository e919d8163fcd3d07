// Package errors provides the error and warning system used across GoML.
//
// It is inspired by scikit-learn's exception hierarchy: callers get typed,
// structured errors (NotFittedError, DimensionError, ValidationError, ...)
// that can be inspected with As, while every constructor attaches a stack
// trace via cockroachdb/errors. Warning types additionally implement
// zerolog's LogObjectMarshaler so they can be emitted as structured log
// events.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================

var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// Default handler logs to standard error.
		log.Printf("GoML-Warning: %v\n", w)
	}
)

// SetWarningHandler sets the library-wide warning handler. This controls
// how warnings such as RankDeficiencyWarning are processed.
//
// Example:
//
//	errors.SetWarningHandler(func(w error) {
//	    // ignore warnings
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// Warn raises a warning through the configured handler.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Warning types
//
// ===========================================================================

// RankDeficiencyWarning is raised when a decomposition encounters a
// covariance matrix that is not full rank (repeated or near-zero
// eigenvalues). The fitted components remain orthonormal, but directions
// associated with zero variance are arbitrary within their subspace.
type RankDeficiencyWarning struct {
	Model         string
	EffectiveRank int
	NFeatures     int
}

func (w *RankDeficiencyWarning) Error() string {
	return fmt.Sprintf("%s: covariance matrix is rank-deficient (effective rank %d of %d features); components beyond the effective rank span an arbitrary basis of the null space",
		w.Model, w.EffectiveRank, w.NFeatures)
}

// MarshalZerologObject adds structured warning information to a zerolog event.
func (w *RankDeficiencyWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("model", w.Model).
		Int("effective_rank", w.EffectiveRank).
		Int("n_features", w.NFeatures).
		Str("type", "RankDeficiencyWarning")
}

// NewRankDeficiencyWarning creates a new RankDeficiencyWarning.
func NewRankDeficiencyWarning(model string, effectiveRank, nFeatures int) *RankDeficiencyWarning {
	return &RankDeficiencyWarning{Model: model, EffectiveRank: effectiveRank, NFeatures: nFeatures}
}

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// NotFittedError is returned when Transform or Predict is called on a
// model that has not been fitted.
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("goml: %s: this model is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a new NotFittedError with a stack trace.
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// DimensionError is returned when input data dimensions differ from what
// the model expects.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("goml: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError creates a new DimensionError with a stack trace.
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValidationError is returned when a hyperparameter fails validation,
// for example an unrecognized decomposition method or a component count
// outside the valid range.
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("goml: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError creates a new ValidationError with a stack trace.
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// InsufficientDataError is returned when a dataset is too small for the
// requested operation, for example fitting a covariance estimate on fewer
// than two samples.
type InsufficientDataError struct {
	Op       string
	Required int
	Got      int
	Unit     string // "samples" or "features"
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("goml: %s: insufficient data. Need at least %d %s, got %d", e.Op, e.Required, e.Unit, e.Got)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *InsufficientDataError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("required", e.Required).
		Int("got", e.Got).
		Str("unit", e.Unit).
		Str("type", "InsufficientDataError")
}

// NewInsufficientDataError creates a new InsufficientDataError with a
// stack trace.
func NewInsufficientDataError(op string, required, got int, unit string) error {
	err := &InsufficientDataError{Op: op, Required: required, Got: got, Unit: unit}
	return errors.WithStack(err)
}

// ValueError is returned when an argument value is invalid in a way not
// covered by the more specific error types.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("goml: %s: %s", e.Op, e.Message)
}

// NewValueError creates a new ValueError with a stack trace.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ModelError is a general error for model operations.
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("goml: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("goml: %s: %s", e.Op, e.Kind)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError creates a new ModelError with a stack trace.
func NewModelError(op, kind string, err error) error {
	modelErr := &ModelError{Op: op, Kind: kind, Err: err}
	return errors.WithStack(modelErr)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates err with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Shared error variables
//
// ===========================================================================

var (
	// ErrEmptyData is returned when an empty dataset is passed.
	ErrEmptyData = New("empty data")

	// ErrSingularMatrix is returned when a matrix factorization fails.
	ErrSingularMatrix = New("singular matrix")
)
