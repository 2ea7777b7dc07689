package flash

import "errors"

// ErrInvalidMessage indicates a messages-cookie entry is not a [text, level] pair.
var ErrInvalidMessage = errors.New("flash.invalid_message")
