package errors

import "errors"

var (
	// ErrInvalidCredentials covers unknown usernames and wrong passwords
	// alike, so login failures don't reveal which usernames exist.
	ErrInvalidCredentials = errors.New("wrong credentials")
	// ErrUsernameTaken is returned when registering an existing username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrUnknownProvider is returned for an unrecognized identity provider.
	ErrUnknownProvider = errors.New("unknown identity provider")
)
