// Package pptx provides custom error types for better error handling and reporting.
package pptx

import (
	"errors"
	"fmt"
)

// NotFoundError reports a lookup that matched nothing, such as requesting
// the first relationship of a reltype that no relationship in the
// collection carries. Singleton accessors catch this and materialize a
// default part instead of propagating it.
type NotFoundError struct {
	What string
	Key  string
}

func (e *NotFoundError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s not found: %s", e.What, e.Key)
	}
	return fmt.Sprintf("%s not found", e.What)
}

// NewNotFoundError creates a new not-found error
func NewNotFoundError(what, key string) error {
	return &NotFoundError{What: what, Key: key}
}

// KeyConflictError reports an insertion that would violate a uniqueness
// invariant: a duplicate rId within one relationship collection, or a
// duplicate partname in a package being loaded.
type KeyConflictError struct {
	What string
	Key  string
}

func (e *KeyConflictError) Error() string {
	return fmt.Sprintf("duplicate %s: %s", e.What, e.Key)
}

// NewKeyConflictError creates a new key-conflict error
func NewKeyConflictError(what, key string) error {
	return &KeyConflictError{What: what, Key: key}
}

// DanglingReferenceError reports a relationship record whose target
// partname does not appear among the stored parts of the package. This is
// a corrupt package and always aborts the load.
type DanglingReferenceError struct {
	Source string
	RID    string
	Target string
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf(
		"relationship %s on %s references missing part %s",
		e.RID, e.Source, e.Target,
	)
}

// NewDanglingReferenceError creates a new dangling-reference error
func NewDanglingReferenceError(source, rID, target string) error {
	return &DanglingReferenceError{Source: source, RID: rID, Target: target}
}

// InvalidStateError reports an accessor called while a precondition
// element is absent, for example requesting data labels from a plot that
// has none. It is surfaced to the caller directly, never recovered.
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state: %s", e.Message)
}

// NewInvalidStateError creates a new invalid-state error
func NewInvalidStateError(message string) error {
	return &InvalidStateError{Message: message}
}

// PackageError represents an error during package load or save operations
type PackageError struct {
	Operation string
	Path      string
	Cause     error
}

func (e *PackageError) Error() string {
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("package error during %s of '%s': %v", e.Operation, e.Path, e.Cause)
	} else if e.Path != "" {
		return fmt.Sprintf("package error during %s of '%s'", e.Operation, e.Path)
	} else if e.Cause != nil {
		return fmt.Sprintf("package error during %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("package error during %s", e.Operation)
}

func (e *PackageError) Unwrap() error {
	return e.Cause
}

// NewPackageError creates a new package error
func NewPackageError(operation, path string, cause error) error {
	return &PackageError{Operation: operation, Path: path, Cause: cause}
}

// IsNotFound checks if an error is a not-found error
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsKeyConflict checks if an error is a key-conflict error
func IsKeyConflict(err error) bool {
	var e *KeyConflictError
	return errors.As(err, &e)
}

// IsDanglingReference checks if an error is a dangling-reference error
func IsDanglingReference(err error) bool {
	var e *DanglingReferenceError
	return errors.As(err, &e)
}

// IsInvalidState checks if an error is an invalid-state error
func IsInvalidState(err error) bool {
	var e *InvalidStateError
	return errors.As(err, &e)
}
