package domain

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidProduct  = errors.New("invalid product")
	ErrInvalidID       = errors.New("invalid product ID")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrLookNotFound    = errors.New("look not found")
)
