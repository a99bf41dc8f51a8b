package service

import "errors"

// ErrNotFound is returned by Update and Delete when the id does not resolve
// to a row. Get reports an absent row as a nil DTO instead.
var ErrNotFound = errors.New("record not found")
