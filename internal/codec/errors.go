package codec

import "errors"

// ErrEmptyPayload is reported when there is nothing to decode.
var ErrEmptyPayload = errors.New("empty payload")

// ErrBadEscape indicates the payload contains an invalid percent escape.
var ErrBadEscape = errors.New("invalid percent escape")

// ErrMalformed indicates the decoded text is not a JSON array of objects.
var ErrMalformed = errors.New("malformed entry list")

// ErrMissingName indicates an element has no string name field.
var ErrMissingName = errors.New("entry missing name")
