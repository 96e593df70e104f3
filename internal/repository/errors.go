package repository

import "errors"

// Sentinel errors shared by all repository implementations. Absence of a
// record is a normal outcome and is reported through ErrNotFound rather
// than a panic or wrapped failure.
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
)
