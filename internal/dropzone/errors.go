package dropzone

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a rejected selection
type ErrorKind int

const (
	// ArityError means a drop delivered several files to a single-file zone
	ArityError ErrorKind = iota
	// FormatError means a file did not match the accept patterns
	FormatError
)

func (k ErrorKind) String() string {
	switch k {
	case ArityError:
		return "arity"
	case FormatError:
		return "format"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Sentinels for errors.Is
var (
	ErrArity  = errors.New("dropzone: too many files")
	ErrFormat = errors.New("dropzone: file type not accepted")
)

// ValidationError describes why a selection attempt was rejected
type ValidationError struct {
	Kind    ErrorKind
	File    string // offending file name, FormatError only
	Count   int    // number of files delivered, ArityError only
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is matches the sentinel for the error's kind
func (e *ValidationError) Is(target error) bool {
	switch e.Kind {
	case ArityError:
		return target == ErrArity
	case FormatError:
		return target == ErrFormat
	}
	return false
}

func newArityError(count int) *ValidationError {
	return &ValidationError{
		Kind:    ArityError,
		Count:   count,
		Message: fmt.Sprintf("%d files selected when multiple attribute is not present", count),
	}
}

func newFormatError(name string) *ValidationError {
	return &ValidationError{
		Kind:    FormatError,
		File:    name,
		Message: fmt.Sprintf("%s doesn't match the accept attribute", name),
	}
}
