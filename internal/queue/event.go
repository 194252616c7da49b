// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationCreatedEvent is published when a reservation is successfully
// recorded in the ledger.  It carries enough information for downstream
// consumers to log, notify, or trigger analytics without querying the
// service itself.
type ReservationCreatedEvent struct {
	ReservationID int64  `json:"reservation_id"`
	RoomID        int64  `json:"room_id"`
	RoomName      string `json:"room_name"`
	UserID        int64  `json:"user_id"`
	UserName      string `json:"user_name"`
	Date          string `json:"date"`
	CreatedAt     string `json:"created_at"`
}

// ReservationCancelledEvent is published when a reservation is deleted
// from the ledger.  Only the id is carried: the record is gone by the
// time the event is emitted, and consumers of the created events can
// correlate by reservation_id.
type ReservationCancelledEvent struct {
	ReservationID int64  `json:"reservation_id"`
	CancelledAt   string `json:"cancelled_at"`
}
