package domain

import "errors"

// ErrNotFound is returned by stores when the requested row does not exist.
var ErrNotFound = errors.New("record not found")
