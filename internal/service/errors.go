package service

import "errors"

var (
	// ErrValidation wraps every validators error returned by a service.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials is returned by Login for an unknown email or a
	// wrong password alike.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrForbidden is returned when the actor neither owns the resource nor
	// is an admin.
	ErrForbidden = errors.New("you do not have permission to perform this action")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
