package repository_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/room-reservation/internal/model"
	"github.com/iliyamo/room-reservation/internal/repository"
)

func catalogFixtures() ([]model.Room, []model.User) {
	rooms := []model.Room{
		{ID: 1, Name: "Salle A", Capacity: 10},
		{ID: 2, Name: "Salle B", Capacity: 20},
	}
	users := []model.User{
		{ID: 1, Name: "Admin"},
		{ID: 2, Name: "Nour"},
	}
	return rooms, users
}

func TestValidateBooking_Success(t *testing.T) {
	rooms, users := catalogFixtures()

	err := repository.ValidateBooking(1, 2, "2024-05-01", nil, rooms, users)
	require.NoError(t, err)
}

func TestValidateBooking_MissingFields(t *testing.T) {
	rooms, users := catalogFixtures()

	cases := []struct {
		name   string
		roomID int64
		userID int64
		date   string
	}{
		{"zero room id", 0, 1, "2024-05-01"},
		{"zero user id", 1, 0, "2024-05-01"},
		{"empty date", 1, 1, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := repository.ValidateBooking(tc.roomID, tc.userID, tc.date, nil, rooms, users)
			require.ErrorIs(t, err, repository.ErrInvalidInput)
		})
	}
}

func TestValidateBooking_UnknownRoom(t *testing.T) {
	rooms, users := catalogFixtures()

	err := repository.ValidateBooking(99, 1, "2024-05-01", nil, rooms, users)
	require.ErrorIs(t, err, repository.ErrRoomNotFound)
}

func TestValidateBooking_UnknownUser(t *testing.T) {
	rooms, users := catalogFixtures()

	err := repository.ValidateBooking(1, 99, "2024-05-01", nil, rooms, users)
	require.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestValidateBooking_Conflict(t *testing.T) {
	rooms, users := catalogFixtures()
	existing := []model.Reservation{
		{ID: 1, RoomID: 1, UserID: 2, Date: "2024-05-01"},
	}

	err := repository.ValidateBooking(1, 1, "2024-05-01", existing, rooms, users)
	require.ErrorIs(t, err, repository.ErrConflict)

	// Same room on another date, and another room on the same date,
	// are both fine.
	require.NoError(t, repository.ValidateBooking(1, 1, "2024-05-02", existing, rooms, users))
	require.NoError(t, repository.ValidateBooking(2, 1, "2024-05-01", existing, rooms, users))
}

// An unknown room must be reported as such even when the ledger also
// holds a conflicting entry for that id: existence checks run before
// the conflict check.
func TestValidateBooking_CheckOrder(t *testing.T) {
	rooms, users := catalogFixtures()
	existing := []model.Reservation{
		{ID: 1, RoomID: 99, UserID: 1, Date: "2024-05-01"},
	}

	err := repository.ValidateBooking(99, 1, "2024-05-01", existing, rooms, users)
	require.ErrorIs(t, err, repository.ErrRoomNotFound)

	err = repository.ValidateBooking(0, 99, "2024-05-01", existing, rooms, users)
	require.ErrorIs(t, err, repository.ErrInvalidInput)
}

// Dates are compared literally, not as calendar values, so different
// spellings of the same day do not conflict.
func TestValidateBooking_LiteralDateComparison(t *testing.T) {
	rooms, users := catalogFixtures()
	existing := []model.Reservation{
		{ID: 1, RoomID: 1, UserID: 1, Date: "2024-05-01"},
	}

	require.NoError(t, repository.ValidateBooking(1, 1, "2024-5-1", existing, rooms, users))
}
