package repository

import (
	"sync"

	"github.com/iliyamo/room-reservation/internal/model"
)

// RoomRepo is the in-memory room catalog.  Rooms are append-only: they
// can be listed and added but never updated or removed, so readers
// share an RWMutex with the occasional writer.  Ids come from an
// explicit monotonic counter owned by the store rather than from the
// current slice length, so they stay unique even if deletion were ever
// introduced.
type RoomRepo struct {
	mu     sync.RWMutex
	rooms  []model.Room
	nextID int64
}

// NewRoomRepo constructs a RoomRepo pre-populated with the given seed
// rooms.  The id counter resumes after the highest seeded id.
func NewRoomRepo(seed []model.Room) *RoomRepo {
	r := &RoomRepo{
		rooms:  make([]model.Room, 0, len(seed)),
		nextID: 1,
	}
	for _, room := range seed {
		r.rooms = append(r.rooms, room)
		if room.ID >= r.nextID {
			r.nextID = room.ID + 1
		}
	}
	return r
}

// List returns all rooms in insertion order.  The returned slice is a
// copy so callers can hold it without racing with later appends.
func (r *RoomRepo) List() []model.Room {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Room, len(r.rooms))
	copy(out, r.rooms)
	return out
}

// GetByID returns the room with the given id and whether it exists.
func (r *RoomRepo) GetByID(id int64) (model.Room, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, room := range r.rooms {
		if room.ID == id {
			return room, true
		}
	}
	return model.Room{}, false
}

// Add validates and appends a new room.  It returns ErrInvalidInput
// when the name is empty or the capacity is not positive; otherwise it
// assigns the next sequential id and returns the stored room.
func (r *RoomRepo) Add(name string, capacity int64) (model.Room, error) {
	if name == "" || capacity <= 0 {
		return model.Room{}, ErrInvalidInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	room := model.Room{
		ID:       r.nextID,
		Name:     name,
		Capacity: capacity,
	}
	r.nextID++
	r.rooms = append(r.rooms, room)
	return room, nil
}
