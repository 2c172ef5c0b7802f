package repository

import "errors"

// ErrNotFound is returned when a requested key has no stored value.
var ErrNotFound = errors.New("record not found")

// ErrCorruptRecord is returned when the stored session record cannot be decoded.
// Callers treat it as an absent record and clear the slot.
var ErrCorruptRecord = errors.New("corrupt session record")
