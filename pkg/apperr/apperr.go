package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds the transport layer maps onto HTTP statuses.
// NotFound -> 404, Conflict -> 400, Unauthorized -> 401, everything else -> 500.
var (
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// KeyValue is one lookup key of a failed existence check.
type KeyValue struct {
	Key   string
	Value interface{}
}

// NotFoundError reports an entity absent among live rows, carrying the entity
// type name and every lookup key that was used.
type NotFoundError struct {
	Entity string
	Keys   []KeyValue
}

// NewNotFound builds a single-key NotFoundError.
func NewNotFound(entity, key string, value interface{}) *NotFoundError {
	return &NotFoundError{Entity: entity, Keys: []KeyValue{{Key: key, Value: value}}}
}

// NewNotFoundMulti builds a compound-key NotFoundError, e.g. for association
// lookups by (group_id, teacher_id).
func NewNotFoundMulti(entity string, keys ...KeyValue) *NotFoundError {
	return &NotFoundError{Entity: entity, Keys: keys}
}

func (e *NotFoundError) Error() string {
	pairs := make([]string, len(e.Keys))
	for i, kv := range e.Keys {
		pairs[i] = fmt.Sprintf("%s = %v", kv.Key, kv.Value)
	}
	return fmt.Sprintf("%s with %s was not found", e.Entity, strings.Join(pairs, ", "))
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ConflictError reports a uniqueness violation, a duplicate association or a
// precondition failure on association removal.
type ConflictError struct {
	Message string
}

// NewConflict builds a ConflictError with a formatted message.
func NewConflict(format string, args ...interface{}) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

func (e *ConflictError) Error() string { return e.Message }

func (e *ConflictError) Unwrap() error { return ErrConflict }

// StoreError wraps a backing-store failure so callers can both classify it
// (errors.Is ErrStoreUnavailable) and inspect the cause.
type StoreError struct {
	Err error
}

// Store wraps err as a StoreError. Nil stays nil.
func Store(err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Err: err}
}

func (e *StoreError) Error() string { return "store unavailable: " + e.Err.Error() }

func (e *StoreError) Unwrap() []error { return []error{ErrStoreUnavailable, e.Err} }
