// Package repository contains data access logic separated from HTTP handlers.
// This file defines error values shared by every repository.  Sentinel
// errors let handlers distinguish failure scenarios without inspecting
// driver-specific error strings.
package repository

import "errors"

// ErrNotFound is returned when a row cannot be found for a read, update
// or delete.  Handlers translate it into an HTTP 404 response.
var ErrNotFound = errors.New("record not found")

// ErrEmailExists is returned when registering a user whose email is
// already taken.  Handlers translate it into an HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")
