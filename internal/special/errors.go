package special

import "errors"

// ErrDomain indicates an argument outside the function's domain.
var ErrDomain = errors.New("special: argument outside domain")
