package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidEmail is returned when the email does not match the
	// conventional local@domain.tld shape.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrPasswordTooShort is returned when the password has fewer than
	// eight characters.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")

	// ErrInvalidCredentials is the uniform login failure: an unknown email
	// and a wrong password are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrInvalidDate is returned when a date field does not parse as
	// YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")

	// ErrInvalidHours is returned when hours is not a number or is not
	// strictly positive.
	ErrInvalidHours = errors.New("hours must be greater than 0")

	// Missing-field errors name the absent field, matching the API contract.
	ErrDateRequired        = errors.New("date is required")
	ErrHoursRequired       = errors.New("hours is required")
	ErrDescriptionRequired = errors.New("description is required")
)
