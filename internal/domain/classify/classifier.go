// Package classify maps calculation failures onto a stable, user-facing
// error taxonomy.
//
// The rendered UI only ever sees the short Message and Suggestion; the raw
// error detail goes to the log sink.
package classify

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/itsutakahope/churching-sub001/internal/domain/breakdown"
)

// Kind is the stable classification tag.
type Kind string

const (
	KindValidation  Kind = "validation"
	KindCalculation Kind = "calculation"
	KindTypeError   Kind = "type_error"
	KindRangeError  Kind = "range_error"
	KindUnknown     Kind = "unknown"
)

// ClassifiedError is the user-facing shape of a failure.
type ClassifiedError struct {
	Kind Kind `json:"kind"`

	// Message is safe to render.
	Message string `json:"message"`

	// OriginalError is the raw error text, empty for nil input. Diagnostic
	// only, never rendered.
	OriginalError string `json:"originalError,omitempty"`

	// Suggestion is a remediation hint, where one applies.
	Suggestion string `json:"suggestion,omitempty"`
}

// Classifier turns raw errors into ClassifiedErrors.
type Classifier struct {
	logger *slog.Logger
}

// NewClassifier creates a classifier. A nil logger falls back to slog.Default.
func NewClassifier(logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{logger: logger.With("component", "error_classifier")}
}

// Classify maps err onto the taxonomy. It never fails and always returns a
// populated structure, nil input included. The raw error is logged
// unconditionally before classification.
func (c *Classifier) Classify(err error) ClassifiedError {
	if err == nil {
		c.logger.Error("classifying nil error")
		return ClassifiedError{
			Kind:    KindUnknown,
			Message: "an unknown error occurred",
		}
	}

	msg := err.Error()
	c.logger.Error("classifying calculation failure", "error", msg)

	// Calculation taxonomy first, in priority order. The substring
	// fallback covers errors that carry the tag but lost their type
	// through wrapping in a plain string.
	var invalidErr *breakdown.InvalidInputError
	var dataErr *breakdown.DataValidationError
	var calcErr *breakdown.CalculationError
	switch {
	case errors.As(err, &invalidErr) || strings.Contains(msg, breakdown.TagInvalidInput):
		return ClassifiedError{
			Kind:          KindValidation,
			Message:       "dedication data format is invalid",
			OriginalError: msg,
			Suggestion:    "reload the page and try again",
		}
	case errors.As(err, &dataErr) || strings.Contains(msg, breakdown.TagDataValidation):
		return ClassifiedError{
			Kind:          KindValidation,
			Message:       "dedication records are invalid",
			OriginalError: msg,
			Suggestion:    "check the submitted dedication entries",
		}
	case errors.As(err, &calcErr) || strings.Contains(msg, breakdown.TagCalculation):
		return ClassifiedError{
			Kind:          KindCalculation,
			Message:       "an error occurred during calculation",
			OriginalError: msg,
			Suggestion:    "retry, and contact support if the problem persists",
		}
	}

	// Native error categories.
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return ClassifiedError{
			Kind:          KindTypeError,
			Message:       "dedication data has an unexpected type",
			OriginalError: msg,
			Suggestion:    "check the submitted data format",
		}
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
		return ClassifiedError{
			Kind:          KindRangeError,
			Message:       "a numeric value is out of range",
			OriginalError: msg,
			Suggestion:    "check the submitted amounts",
		}
	}

	return ClassifiedError{
		Kind:          KindUnknown,
		Message:       "an unknown error occurred",
		OriginalError: msg,
	}
}
