package usecase

import "errors"

// Application-level errors. The presentation layer maps these onto HTTP
// status codes; everything else surfaces as an internal error.
var (
	ErrInvalidEmail       = errors.New("please enter a valid email address")
	ErrWeakPassword       = errors.New("password must be at least 8 characters long and include uppercase, lowercase, and a number")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation failed")
	ErrPasswordRequired   = errors.New("password is required to update an existing will")
	ErrIncorrectPassword  = errors.New("incorrect password")
	ErrContactExists      = errors.New("this email is already designated as a contact")
	ErrInvalidToken       = errors.New("invalid or expired retrieval token")
	ErrNotFound           = errors.New("not found")
)
