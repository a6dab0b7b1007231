package domain

import "errors"

var (
	ErrNameRequired       = errors.New("restaurant name required")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrWrongPassword      = errors.New("wrong admin password")
	ErrAdminRequired      = errors.New("admin mode required")
)
