// Package id issues client-side record identifiers.
package id

import "github.com/google/uuid"

// New returns a fresh random (version 4) UUID string.
func New() string {
	return uuid.NewString()
}

// Valid reports whether s is a UUID in any of the forms uuid.Parse accepts.
func Valid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
