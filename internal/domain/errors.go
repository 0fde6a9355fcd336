package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound reports an unknown playlist or song id.
var ErrNotFound = errors.New("not found")

// ValidationError reports missing or invalid input (empty name, missing
// file, disallowed file type).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// PayloadTooLargeError reports an upload exceeding the configured cap.
type PayloadTooLargeError struct {
	Size  int64
	Limit int64
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("upload of %d bytes exceeds limit of %d bytes", e.Size, e.Limit)
}

// ExtractionError reports a metadata extractor failure on a stored blob.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("metadata extraction failed for %s: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// StorageError reports a record or blob store I/O failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
