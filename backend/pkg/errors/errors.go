package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeExtraction represents extraction-collaborator errors
	ErrorTypeExtraction ErrorType = "extraction"
	// ErrorTypeMatch represents name/pronoun matching errors
	ErrorTypeMatch ErrorType = "match"
	// ErrorTypeStore represents person/relationship store errors
	ErrorTypeStore ErrorType = "store"
	// ErrorTypeGraph represents graph database errors
	ErrorTypeGraph ErrorType = "graph"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// BaseError is the base error type with common fields
type BaseError struct {
	Type      ErrorType
	Message   string
	Timestamp time.Time
	Err       error // Wrapped error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *BaseError) Unwrap() error {
	return e.Err
}

// ErrType returns the error category. Promoted through embedding, so every
// typed error in this package answers it.
func (e *BaseError) ErrType() ErrorType {
	return e.Type
}

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// Extraction Errors

// ErrExtractionEmptyInput is returned when the extraction input text is empty
var ErrExtractionEmptyInput = NewBaseError(ErrorTypeExtraction, "empty text provided", nil)

// ErrExtractionFailed is returned when the extraction collaborator fails
type ErrExtractionFailed struct {
	*BaseError
	Model    string
	Attempts int
}

func NewExtractionFailed(model string, attempts int, err error) *ErrExtractionFailed {
	return &ErrExtractionFailed{
		BaseError: NewBaseError(ErrorTypeExtraction, fmt.Sprintf("extraction failed after %d attempts", attempts), err),
		Model:     model,
		Attempts:  attempts,
	}
}

// ErrExtractionBadPayload is returned when the extraction response cannot be parsed
type ErrExtractionBadPayload struct {
	*BaseError
	Raw string
}

func NewExtractionBadPayload(raw string, err error) *ErrExtractionBadPayload {
	return &ErrExtractionBadPayload{
		BaseError: NewBaseError(ErrorTypeExtraction, "failed to parse extraction payload", err),
		Raw:       raw,
	}
}

// Match Errors

// ErrInsufficientContext is returned when a pronoun cannot be resolved.
// The caller must prompt for the explicit name instead.
type ErrInsufficientContext struct {
	*BaseError
	Pronoun string
}

func NewInsufficientContext(pronoun string) *ErrInsufficientContext {
	return &ErrInsufficientContext{
		BaseError: NewBaseError(ErrorTypeMatch, fmt.Sprintf("cannot resolve pronoun %q without more context; use the person's name instead", pronoun), nil),
		Pronoun:   pronoun,
	}
}

// Store Errors

// ErrPersonNotFound is returned when a person id does not exist in the store
type ErrPersonNotFound struct {
	*BaseError
	PersonID string
}

func NewPersonNotFound(personID string) *ErrPersonNotFound {
	return &ErrPersonNotFound{
		BaseError: NewBaseError(ErrorTypeStore, fmt.Sprintf("person not found: %s", personID), nil),
		PersonID:  personID,
	}
}

// ErrStoreOperationFailed is returned when a store write/read fails for one item
type ErrStoreOperationFailed struct {
	*BaseError
	Operation string
	Subject   string
}

func NewStoreOperationFailed(operation, subject string, err error) *ErrStoreOperationFailed {
	return &ErrStoreOperationFailed{
		BaseError: NewBaseError(ErrorTypeStore, fmt.Sprintf("store %s failed for %s", operation, subject), err),
		Operation: operation,
		Subject:   subject,
	}
}

// Graph Errors

// ErrGraphConnectionFailed is returned when Neo4j connection fails
type ErrGraphConnectionFailed struct {
	*BaseError
	URI string
}

func NewGraphConnectionFailed(uri string, err error) *ErrGraphConnectionFailed {
	return &ErrGraphConnectionFailed{
		BaseError: NewBaseError(ErrorTypeGraph, fmt.Sprintf("failed to connect to Neo4j: %s", uri), err),
		URI:       uri,
	}
}

// ErrGraphQueryFailed is returned when a graph query fails
type ErrGraphQueryFailed struct {
	*BaseError
	Query string
}

func NewGraphQueryFailed(query string, err error) *ErrGraphQueryFailed {
	return &ErrGraphQueryFailed{
		BaseError: NewBaseError(ErrorTypeGraph, fmt.Sprintf("query failed: %s", query), err),
		Query:     query,
	}
}

// Config Errors

// ErrConfigMissingRequired is returned when a required config value is missing
type ErrConfigMissingRequired struct {
	*BaseError
	Field string
}

func NewConfigMissingRequired(field string) *ErrConfigMissingRequired {
	return &ErrConfigMissingRequired{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("missing required config: %s", field), nil),
		Field:     field,
	}
}

// Helper functions

// IsErrorType checks if an error is of a specific type, walking the
// unwrap chain.
func IsErrorType(err error, errType ErrorType) bool {
	for err != nil {
		if typed, ok := err.(interface{ ErrType() ErrorType }); ok {
			return typed.ErrType() == errType
		}
		err = errors.Unwrap(err)
	}
	return false
}

// IsRetryable checks if an error is retryable
func IsRetryable(err error) bool {
	// Graph connection errors are retryable
	if IsErrorType(err, ErrorTypeGraph) {
		return true
	}
	// Extraction failures are retryable (transient LLM/service issues)
	if IsErrorType(err, ErrorTypeExtraction) {
		return true
	}
	return false
}
