package service

import (
	"errors"
	"fmt"

	"github.com/carson-networks/spaces-server/internal/storage/sqlconfig"
)

// ErrNotFound matches every NotFoundError through errors.Is.
var ErrNotFound = errors.New("not found")

// NotFoundError names the missing resource, e.g. "Budget not found".
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError rejects input before any storage call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// StorageError wraps a failure reported by the record store together with the
// operation that hit it.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// translate turns the store's not-found signal into a NotFoundError for
// resource and wraps any other failure with op.
func translate(op, resource string, err error) error {
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return &NotFoundError{Resource: resource}
	}
	return &StorageError{Op: op, Err: err}
}
