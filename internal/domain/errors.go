package domain

import (
	"errors"
	"fmt"
)

// ValidationError reports input that failed boundary validation, such as a
// text outside the configured length bounds. It is surfaced to the caller as
// a rejection and never retried automatically.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Reason)
}

// NewValidationError creates a ValidationError with a formatted reason.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// MissingArtifactError reports that one or more persisted model files are
// absent or unreadable. Callers recover by falling back to the stub predictor.
type MissingArtifactError struct {
	Path string
	Err  error
}

func (e *MissingArtifactError) Error() string {
	return fmt.Sprintf("model artifact missing at %s: %v", e.Path, e.Err)
}

func (e *MissingArtifactError) Unwrap() error { return e.Err }

// IsMissingArtifact reports whether err indicates a missing model artifact.
func IsMissingArtifact(err error) bool {
	var ma *MissingArtifactError
	return errors.As(err, &ma)
}

// TrainingDataInsufficientError reports a dataset that cannot be trained on:
// fewer than 2 distinct classes or too small for a stratified split. It is
// fatal to the training run and must not affect the active artifact.
type TrainingDataInsufficientError struct {
	Reason string
}

func (e *TrainingDataInsufficientError) Error() string {
	return fmt.Sprintf("training data insufficient: %s", e.Reason)
}

// NewTrainingDataInsufficientError creates a TrainingDataInsufficientError
// with the given reason.
func NewTrainingDataInsufficientError(reason string) *TrainingDataInsufficientError {
	return &TrainingDataInsufficientError{Reason: reason}
}

// IsTrainingDataInsufficient reports whether err is a TrainingDataInsufficientError.
func IsTrainingDataInsufficient(err error) bool {
	var te *TrainingDataInsufficientError
	return errors.As(err, &te)
}

// FeatureDimensionMismatchError reports a loaded classifier whose expected
// input width disagrees with the vectorizer+scaler output width. Fatal at
// load time.
type FeatureDimensionMismatchError struct {
	Expected int
	Actual   int
}

func (e *FeatureDimensionMismatchError) Error() string {
	return fmt.Sprintf("feature dimension mismatch: classifier expects %d features, artifact produces %d", e.Expected, e.Actual)
}

// IsFeatureDimensionMismatch reports whether err is a FeatureDimensionMismatchError.
func IsFeatureDimensionMismatch(err error) bool {
	var fe *FeatureDimensionMismatchError
	return errors.As(err, &fe)
}
