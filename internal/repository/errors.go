// Package repository holds the in-memory stores for the booking core:
// the room and user catalogs and the reservation ledger.  This file
// defines the sentinel errors shared by the stores and the booking
// validator.  Higher layers such as handlers compare against these
// values with errors.Is to pick the HTTP status and message for a
// failed operation.
package repository

import "errors"

// ErrInvalidInput is returned when a required field is missing, empty
// or malformed (empty room name, non-positive capacity, zero ids,
// empty date).  Handlers should translate this into an HTTP 400
// response.
var ErrInvalidInput = errors.New("invalid input")

// ErrRoomNotFound is returned when a reservation references a room id
// that is not present in the room catalog.  Handlers should translate
// this into an HTTP 404 response.
var ErrRoomNotFound = errors.New("room not found")

// ErrUserNotFound is returned when a reservation references a user id
// that is not present in the user catalog.  Handlers should translate
// this into an HTTP 404 response.
var ErrUserNotFound = errors.New("user not found")

// ErrConflict is returned when the requested room already has a live
// reservation for the same date.  Handlers should translate this into
// an HTTP 400 response carrying the conflict message.
var ErrConflict = errors.New("room already booked for that date")
