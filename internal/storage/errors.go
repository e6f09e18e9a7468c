package storage

import "errors"

var (
	// ErrEmptyPath is returned when no file path was configured.
	ErrEmptyPath = errors.New("file path is empty")
	// ErrInvalidEncoding is returned when file contents are not valid UTF-8 text.
	ErrInvalidEncoding = errors.New("stream did not contain valid UTF-8")
)
