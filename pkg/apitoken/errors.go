package apitoken

import "errors"

// ErrInvalidDuration indicates a user-correctable expiry input: unknown
// unit, missing duration, or a duration that is not a positive integer.
var ErrInvalidDuration = errors.New("apitoken.invalid_expire_duration")
