package models

import "errors"

// Not-found errors name the entity kind so the API layer can serve them verbatim.
var (
	ErrUserNotFound   = errors.New("User not found")
	ErrPlanetNotFound = errors.New("Planet not found")
	ErrPersonNotFound = errors.New("People not found")
)
