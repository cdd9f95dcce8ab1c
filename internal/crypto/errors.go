package crypto

import "errors"

var (
	// ErrPasswordTooLong is returned by [PasswordHasher.Hash] for inputs
	// longer than bcrypt's 72 byte limit.
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
	// ErrHashingPassword wraps failures of the underlying hash function.
	ErrHashingPassword = errors.New("error hashing password")
)
