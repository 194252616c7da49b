package repository

import "github.com/iliyamo/room-reservation/internal/model"

// ValidateBooking decides whether a reservation for (roomID, userID,
// date) may be created given the current catalogs and the live
// reservations.  It is a pure function over its arguments and mutates
// nothing; the reservation store calls it under its own lock so the
// checks and the subsequent insert are observed as one atomic unit.
//
// Checks run in a fixed order and stop at the first failure, because
// callers map each error to a different response:
//  1. ErrInvalidInput  – roomID or userID is zero, or date is empty.
//  2. ErrRoomNotFound  – no catalog room carries roomID.
//  3. ErrUserNotFound  – no catalog user carries userID.
//  4. ErrConflict      – a live reservation already holds the same
//                        room on the same date (literal string
//                        comparison on the date).
// A nil return authorizes the insert.
func ValidateBooking(roomID, userID int64, date string, existing []model.Reservation, rooms []model.Room, users []model.User) error {
	if roomID == 0 || userID == 0 || date == "" {
		return ErrInvalidInput
	}

	roomExists := false
	for _, room := range rooms {
		if room.ID == roomID {
			roomExists = true
			break
		}
	}
	if !roomExists {
		return ErrRoomNotFound
	}

	userExists := false
	for _, user := range users {
		if user.ID == userID {
			userExists = true
			break
		}
	}
	if !userExists {
		return ErrUserNotFound
	}

	for _, res := range existing {
		if res.RoomID == roomID && res.Date == date {
			return ErrConflict
		}
	}
	return nil
}
