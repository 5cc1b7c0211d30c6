// ABOUTME: Custom error types for the scraper core
// ABOUTME: Distinguishes fetch failures from parse failures so callers can apply skip policies

package errors

import (
	"errors"
	"fmt"
)

// FetchError represents an HTTP fetch that failed with a non-2xx status.
// Network-level failures are wrapped with WrapError instead.
type FetchError struct {
	URL        string
	StatusCode int
}

// Error implements the error interface
func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch of %s returned status %d", e.URL, e.StatusCode)
}

// ParseError represents a response body that could not be decoded or was
// missing an expected field.
type ParseError struct {
	Source  string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse error from %s: %s: %v", e.Source, e.Message, e.Err)
	}
	return fmt.Sprintf("parse error from %s: %s", e.Source, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsFetch checks if an error is a FetchError
func IsFetch(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// IsParse checks if an error is a ParseError
func IsParse(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
