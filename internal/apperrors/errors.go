package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found, or is
// not owned by the caller (the two are deliberately indistinguishable).
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized indicates a missing or unverifiable identity on the request.
var ErrUnauthorized = errors.New("unauthorized")

// ErrUpstream indicates an external collaborator (e.g. the rate feed) failed
// or returned an unusable response.
var ErrUpstream = errors.New("upstream error")
