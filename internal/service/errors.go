package service

import "errors"

// User-facing validation errors. Store failures are returned wrapped instead.
var (
	ErrMissingTaskFields   = errors.New("task description and deadline are required")
	ErrMissingEmployee     = errors.New("employee name or @handle is required")
	ErrUnrecognizedMessage = errors.New("message is not a task")
	ErrTaskNotFound        = errors.New("task not found")
	ErrNothingToUpdate     = errors.New("no fields to update")
)
