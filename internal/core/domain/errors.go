package domain

import "errors"

// ErrUnauthenticated is an error thrown when no principal is attached to the request
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrForbidden is an error thrown when the acting principal is not allowed to perform the operation
var ErrForbidden = errors.New("forbidden")

// ErrOrderNotFound is an error thrown when the referenced order does not exist
var ErrOrderNotFound = errors.New("order not found")

// ErrFileNotFound is an error thrown when the referenced file record does not exist
var ErrFileNotFound = errors.New("file not found")

// ErrValidation is an error thrown when request input is malformed
var ErrValidation = errors.New("validation failed")

// ErrOwnershipMismatch is an error thrown when a file record does not belong to the order in the request path
var ErrOwnershipMismatch = errors.New("file does not belong to this order")

// ErrObjectMissing is an error thrown when confirm finds no object behind the reserved storage key
var ErrObjectMissing = errors.New("file not found in storage")

// ErrOrderClosedForUploads is an error thrown when reserving against an order that no longer accepts uploads
var ErrOrderClosedForUploads = errors.New("order no longer accepts uploads")

// ErrInvalidTransition is an error thrown when an order status change is not a legal lifecycle step
var ErrInvalidTransition = errors.New("invalid order status transition")

// ErrAlreadyExists is an error thrown when a uniqueness constraint rejects a write
var ErrAlreadyExists = errors.New("already exists")
