package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrValueIsRequired        = errors.New("value is required")
	ErrValueIsInvalid         = errors.New("value is invalid")
	ErrValueIsOutOfRange      = errors.New("value is out of range")
	ErrObjectNotFound         = errors.New("object not found")
	ErrInvalidTransition      = errors.New("invalid transition")
	ErrAlreadyCollected       = errors.New("order already collected")
	ErrConcurrentModification = errors.New("concurrent modification")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a value is malformed or violates policy.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value is outside its valid bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError for the named parameter.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping a cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return sanitize(msg)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates that a lookup found no matching object.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named lookup parameter.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// InvalidTransitionError indicates that an order lifecycle event is not legal
// from the order's current status. The state is left untouched and the
// current status is reported back to the caller.
type InvalidTransitionError struct {
	Event string
	From  string
	Cause error
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// event attempted from the given status.
func NewInvalidTransitionError(event, from string) *InvalidTransitionError {
	return &InvalidTransitionError{Event: event, From: from}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError wrapping a cause.
func NewInvalidTransitionErrorWithCause(event, from string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{Event: event, From: from, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: cannot %s from status %s (cause: %s)",
			ErrInvalidTransition, e.Event, e.From, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: cannot %s from status %s", ErrInvalidTransition, e.Event, e.From))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// AlreadyCollectedError indicates that the matched order was already closed
// by a previous collection. It is surfaced to the shop operator and never
// auto-retried.
type AlreadyCollectedError struct {
	OrderID string
}

// NewAlreadyCollectedError creates an AlreadyCollectedError for the given order.
func NewAlreadyCollectedError(orderID string) *AlreadyCollectedError {
	return &AlreadyCollectedError{OrderID: orderID}
}

func (e *AlreadyCollectedError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrAlreadyCollected, e.OrderID))
}

func (e *AlreadyCollectedError) Unwrap() error {
	return ErrAlreadyCollected
}

// ConcurrentModificationError indicates that an atomic conditional update
// affected no rows because another writer got there first. Retry policy
// belongs to the caller, not the engine.
type ConcurrentModificationError struct {
	OrderID string
}

// NewConcurrentModificationError creates a ConcurrentModificationError for the given order.
func NewConcurrentModificationError(orderID string) *ConcurrentModificationError {
	return &ConcurrentModificationError{OrderID: orderID}
}

func (e *ConcurrentModificationError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrConcurrentModification, e.OrderID))
}

func (e *ConcurrentModificationError) Unwrap() error {
	return ErrConcurrentModification
}
