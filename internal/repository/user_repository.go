package repository

import (
	"sync"

	"github.com/iliyamo/room-reservation/internal/model"
)

// UserRepo is the in-memory user catalog.  The user set is seeded once
// at startup and read-only afterwards; the mutex exists so the store
// keeps the same discipline as the other stores if a registration flow
// is ever added.
type UserRepo struct {
	mu    sync.RWMutex
	users []model.User
}

// NewUserRepo constructs a UserRepo holding the given seed users.
func NewUserRepo(seed []model.User) *UserRepo {
	u := &UserRepo{users: make([]model.User, 0, len(seed))}
	u.users = append(u.users, seed...)
	return u
}

// List returns all users in insertion order as a defensive copy.
func (u *UserRepo) List() []model.User {
	u.mu.RLock()
	defer u.mu.RUnlock()

	out := make([]model.User, len(u.users))
	copy(out, u.users)
	return out
}

// GetByID returns the user with the given id and whether it exists.
func (u *UserRepo) GetByID(id int64) (model.User, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	for _, user := range u.users {
		if user.ID == id {
			return user, true
		}
	}
	return model.User{}, false
}
