package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrMalformedDocument = errors.New("malformed document")
	ErrUnsafeKey         = errors.New("unsafe key")
	ErrUnknownTool       = errors.New("unknown tool")
	ErrNotFound          = errors.New("not found")
	ErrUnknownTarget     = errors.New("unknown publish target")
)

// ValidationError represents a schema violation in the input document
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrMalformedDocument
}

// KeyError reports a key that cannot be used as an artifact path segment
type KeyError struct {
	Tool string
	Key  string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s: key %q is not a safe path segment", e.Tool, e.Key)
}

func (e *KeyError) Is(target error) bool {
	return target == ErrUnsafeKey
}

// ArityError reports a query called with the wrong number of keys
type ArityError struct {
	Tool string
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s expects %d key(s), got %d", e.Tool, e.Want, e.Got)
}
