package utils

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrBiodataNotFound = errors.New("biodata not found")
	ErrRequestNotFound = errors.New("request not found")

	ErrAlreadyFavourite      = errors.New("already in favourites")
	ErrPremiumRequestPending = errors.New("premium request already pending")

	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrPaymentFailed   = errors.New("payment intent failed")
	ErrDatabaseError   = errors.New("database error")
)
