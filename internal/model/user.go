package model

// User represents an application user that reservations reference.
// The user catalog is a fixed seed set for now: users are read-only to
// the booking core and there is no registration flow, so no password
// or role fields exist on the model.
//
// Fields:
//  ID   – unique user identifier.
//  Name – display name of the user.
type User struct {
	ID   int64  `json:"id"`   // users.id in the seed set
	Name string `json:"name"` // e.g. "Admin", "Nour"
}
