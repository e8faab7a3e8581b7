package apperrors

import "errors"

// ErrAuthentication indicates that no authenticated user could be resolved for the request.
var ErrAuthentication = errors.New("not authenticated")

// ErrNotFound indicates that a requested resource could not be found or is not owned by the caller.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that the request contradicts existing state,
// e.g. a currency mismatch or an immutable field change on a referenced account.
var ErrConflict = errors.New("conflict with existing state")

// ErrState indicates an operation attempted against a record whose lifecycle
// state does not permit it, e.g. a payment on a non-active obligation.
var ErrState = errors.New("invalid state for operation")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInternal indicates an unexpected internal failure that should not leak details to the caller.
var ErrInternal = errors.New("internal error")
