package repository

import (
	"sync"

	"github.com/iliyamo/room-reservation/internal/model"
)

// ReservationRepo is the reservation ledger.  It owns the live
// reservations, their id counter and the no-double-booking invariant.
// Every mutation runs the booking validator and the write inside one
// critical section: two concurrent creates for the same (room, date)
// can never both pass the conflict check.  Catalog snapshots are taken
// from the room and user stores before the ledger lock; the catalogs
// are append-only, so a snapshot that proved existence stays valid.
type ReservationRepo struct {
	mu           sync.Mutex
	reservations []model.Reservation
	nextID       int64
	rooms        *RoomRepo
	users        *UserRepo
}

// NewReservationRepo constructs an empty ledger validating against the
// given catalogs.  Both catalogs must be non-nil.
func NewReservationRepo(rooms *RoomRepo, users *UserRepo) *ReservationRepo {
	if rooms == nil || users == nil {
		panic("nil catalog passed to NewReservationRepo")
	}
	return &ReservationRepo{
		nextID: 1,
		rooms:  rooms,
		users:  users,
	}
}

// Create validates and records a new reservation.  On success the
// reservation is returned with its freshly assigned sequential id; on
// failure one of the package sentinel errors is returned and the
// ledger is left untouched.  A reservation is either fully recorded or
// not recorded at all.
func (r *ReservationRepo) Create(roomID, userID int64, date string) (model.Reservation, error) {
	rooms := r.rooms.List()
	users := r.users.List()

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ValidateBooking(roomID, userID, date, r.reservations, rooms, users); err != nil {
		return model.Reservation{}, err
	}

	res := model.Reservation{
		ID:     r.nextID,
		RoomID: roomID,
		UserID: userID,
		Date:   date,
	}
	r.nextID++
	r.reservations = append(r.reservations, res)
	return res, nil
}

// List returns all live reservations in insertion order.  The slice is
// a copy; repeated calls without intervening mutation return identical
// sequences.
func (r *ReservationRepo) List() []model.Reservation {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Reservation, len(r.reservations))
	copy(out, r.reservations)
	return out
}

// DeleteByID removes the reservation with the given id and reports
// whether a removal occurred.  Deleting an id that was never created,
// or was already deleted, is a no-op rather than an error, so the
// operation is idempotent.  Ids are never reused: the counter only
// moves forward regardless of deletions.
func (r *ReservationRepo) DeleteByID(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, res := range r.reservations {
		if res.ID == id {
			r.reservations = append(r.reservations[:i], r.reservations[i+1:]...)
			return true
		}
	}
	return false
}
