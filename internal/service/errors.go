package service

import (
	"errors"
)

// Error kinds. Every error returned by the services matches exactly one of
// them with [errors.Is].
var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrUnexpected = errors.New("unexpected error")
)

// Error is a domain error. Message is safe to show to the client; Err holds
// the underlying cause, if any, for logging.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// Message returns the client-facing message of err. Errors that are not
// domain errors get a generic message.
func Message(err error) string {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}
	return msgInternalError
}

func validationError(message string) error {
	return &Error{Kind: ErrValidation, Message: message}
}

func conflictError(message string) error {
	return &Error{Kind: ErrConflict, Message: message}
}

func notFoundError(message string) error {
	return &Error{Kind: ErrNotFound, Message: message}
}

func forbiddenError(message string) error {
	return &Error{Kind: ErrForbidden, Message: message}
}

func unexpectedError(message string, err error) error {
	return &Error{Kind: ErrUnexpected, Message: message, Err: err}
}

// Client-facing messages.
const (
	msgInternalError = "Internal server error"

	msgRegisterFieldsRequired = "Email, username, and password are required"
	msgEmailTaken             = "Email already registered"
	msgUsernameTaken          = "Username already taken"
	msgLoginFieldsRequired    = "Username or email, and password are required"
	msgUserNotFound           = "User not found"
	msgInvalidPassword        = "Invalid password"
	msgUserIDRequired         = "User ID is required"
	msgNotAdmin               = "User is not an admin"
	msgInvalidToken           = "Invalid or expired token"

	msgModelNotFound        = "Model not found with the given ID"
	msgModelFieldsRequired  = "Model name, file, and description are required"
	msgSearchTokenTooShort  = "Search term must be at least 2 characters long."
	msgSearchNoMatches      = "No models matched the search term."
	msgRoomNotFound         = "Room not found with the given ID"
	msgRoomFieldsRequired   = "Name, description, and room file are required"
	msgRoomModelNotFound    = "Room model not found with the given ID"
	msgRoomModelForbidden   = "You do not have permission to access this model"
	msgRoomModelMissing     = "Room model not found."
	msgRoomModelNoDelete    = "You do not have permission to delete this model."
	msgAddModelToRoomFailed = "Error adding model to room"
	msgRemoveRoomModelFail  = "Error removing room model"
	msgStorageFailed        = "Error saving uploaded file"
)
