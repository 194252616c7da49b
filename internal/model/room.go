package model

// Room represents a bookable room in the catalog.  Rooms are created
// once (seeded at startup or added over the API) and are never updated
// or deleted afterwards, so the struct carries no lifecycle timestamps.
// The json tags define the wire format used by the HTTP handlers.
//
// Fields:
//  ID       – sequential identifier assigned by the room store.
//  Name     – human readable room name (non-empty).
//  Capacity – maximum number of occupants (positive).
type Room struct {
	ID       int64  `json:"id"`       // rooms are numbered 1..n in insertion order
	Name     string `json:"name"`     // e.g. "Salle A"
	Capacity int64  `json:"capacity"` // must be > 0
}
