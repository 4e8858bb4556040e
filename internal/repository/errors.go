// Package repository contains data access logic separated from HTTP
// handlers. Sentinel errors let handlers map failures to HTTP statuses
// without inspecting driver errors.
package repository

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a requested row does not exist. Handlers
// translate this into HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when registering with an email that is already
// taken. Handlers translate this into HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrConflict is returned when an operation cannot proceed because of
// conflicting state. Handlers translate this into HTTP 409.
var ErrConflict = errors.New("conflict")

// isDuplicate reports whether err is a MySQL duplicate-key violation
// (error 1062).
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}
