package nav

import "errors"

// ErrUnknownRoute is returned when a route matches no registered screen.
var ErrUnknownRoute = errors.New("unknown route")
