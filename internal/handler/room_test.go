package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/room-reservation/internal/handler"
	"github.com/iliyamo/room-reservation/internal/model"
	"github.com/iliyamo/room-reservation/internal/repository"
)

func newRoomHandler() *handler.RoomHandler {
	return handler.NewRoomHandler(repository.NewRoomRepo(repository.DefaultRooms()))
}

func doJSON(t *testing.T, h echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func TestListRooms_ReturnsSeed(t *testing.T) {
	h := newRoomHandler()

	rec := doJSON(t, h.ListRooms, http.MethodGet, "/rooms", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var rooms []model.Room
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rooms))
	require.Len(t, rooms, 2)
	require.Equal(t, model.Room{ID: 1, Name: "Salle A", Capacity: 10}, rooms[0])
	require.Equal(t, model.Room{ID: 2, Name: "Salle B", Capacity: 20}, rooms[1])
}

func TestCreateRoom_Success(t *testing.T) {
	h := newRoomHandler()

	rec := doJSON(t, h.CreateRoom, http.MethodPost, "/rooms", `{"name":"Salle C","capacity":30}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var room model.Room
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &room))
	require.Equal(t, model.Room{ID: 3, Name: "Salle C", Capacity: 30}, room)
}

func TestCreateRoom_CoercesStringCapacity(t *testing.T) {
	h := newRoomHandler()

	rec := doJSON(t, h.CreateRoom, http.MethodPost, "/rooms", `{"name":"Salle C","capacity":"15"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var room model.Room
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &room))
	require.Equal(t, int64(15), room.Capacity)
}

func TestCreateRoom_MissingFields(t *testing.T) {
	h := newRoomHandler()

	cases := []struct {
		name string
		body string
	}{
		{"no name", `{"capacity":10}`},
		{"empty name", `{"name":"","capacity":10}`},
		{"no capacity", `{"name":"Salle C"}`},
		{"zero capacity", `{"name":"Salle C","capacity":0}`},
		{"negative capacity", `{"name":"Salle C","capacity":-1}`},
		{"non-numeric capacity", `{"name":"Salle C","capacity":"dix"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, h.CreateRoom, http.MethodPost, "/rooms", tc.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.JSONEq(t, `{"error":"name et capacity requis"}`, rec.Body.String())
		})
	}
}

func TestListUsers_ReturnsSeed(t *testing.T) {
	h := handler.NewUserHandler(repository.NewUserRepo(repository.DefaultUsers()))

	rec := doJSON(t, h.ListUsers, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var users []model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Equal(t, []model.User{{ID: 1, Name: "Admin"}, {ID: 2, Name: "Nour"}}, users)
}
