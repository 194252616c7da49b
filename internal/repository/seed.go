package repository

import "github.com/iliyamo/room-reservation/internal/model"

// DefaultRooms returns the room catalog the service starts with when
// no other seed is supplied.
func DefaultRooms() []model.Room {
	return []model.Room{
		{ID: 1, Name: "Salle A", Capacity: 10},
		{ID: 2, Name: "Salle B", Capacity: 20},
	}
}

// DefaultUsers returns the fixed user set.  There is no registration
// flow; these are the only users reservations can reference.
func DefaultUsers() []model.User {
	return []model.User{
		{ID: 1, Name: "Admin"},
		{ID: 2, Name: "Nour"},
	}
}
