package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDataProvided is returned when a request body fails validation.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is the single failure reported for unknown users
	// and wrong passwords alike.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrRegistrationConflict is returned when the username or email is
	// already taken, whether detected up front or by the store's unique
	// constraint.
	ErrRegistrationConflict = errors.New("username or email is already in use")
	ErrUsernameTaken        = fmt.Errorf("%w: username already exists", ErrRegistrationConflict)
	ErrEmailTaken           = fmt.Errorf("%w: email is already being used", ErrRegistrationConflict)

	ErrTokenCreationFailed = errors.New("token creation failed")
)
