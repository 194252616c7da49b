package model

// Reservation records a user's booking of one room for one date.  A
// reservation is immutable after creation; the only transition it ever
// makes is out of the ledger via delete-by-id.  The date is an opaque
// string (typically "YYYY-MM-DD") compared byte for byte: two bookings
// conflict exactly when their RoomID and Date are both equal.  No
// calendar parsing or timezone handling is applied.
//
// Fields:
//  ID     – sequential identifier assigned by the reservation store.
//  RoomID – room being booked; references an existing catalog room.
//  UserID – user holding the booking; references an existing user.
//  Date   – opaque date string, compared literally.
type Reservation struct {
	ID     int64  `json:"id"`     // reservations are numbered 1..n across the process lifetime
	RoomID int64  `json:"roomId"` // must exist in the room catalog at creation time
	UserID int64  `json:"userId"` // must exist in the user catalog at creation time
	Date   string `json:"date"`   // e.g. "2024-05-01"
}
