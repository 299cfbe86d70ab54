package domain

import "errors"

// ErrUnknownKind is returned when a tag name cannot be resolved to a Kind.
var ErrUnknownKind = errors.New("unknown kind")
