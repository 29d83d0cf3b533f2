package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("post not found")
	ErrAuthFailed   = errors.New("invalid admin secret")
	ErrInvalidToken = errors.New("invalid token")
	ErrInvalidInput = errors.New("invalid input")
	ErrNoStorage    = errors.New("image storage not configured")
)

// MutationError is returned by every failed admin write. Err carries the
// store's message.
type MutationError struct {
	Op  string
	Err error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("%s post: %v", e.Op, e.Err)
}

func (e *MutationError) Unwrap() error {
	return e.Err
}
