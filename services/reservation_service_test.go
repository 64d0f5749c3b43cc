package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-frontend/backend"
	"hotel-frontend/models"
)

// fakeBackend is a minimal reservation API speaking the response envelope.
type fakeBackend struct {
	rooms        []models.Room
	reservations []models.Reservation

	failRooms atomic.Bool
	posts     atomic.Int32
	patches   atomic.Int32

	// created is what POST /reservations answers with.
	created models.Reservation
}

func (f *fakeBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/rooms":
			if f.failRooms.Load() {
				http.Error(w, "upstream down", http.StatusBadGateway)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": f.rooms})
		case r.Method == http.MethodGet && r.URL.Path == "/reservations":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": f.reservations})
		case r.Method == http.MethodPost && r.URL.Path == "/reservations":
			f.posts.Add(1)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": f.created})
		case r.Method == http.MethodPatch:
			f.patches.Add(1)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": f.created})
		default:
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": nil})
		}
	}
}

func newTestServices(t *testing.T, f *fakeBackend) (*RoomService, *ReservationService) {
	t.Helper()
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	api := backend.NewClient(srv.URL, "anon", 5*time.Second, log)
	rooms := NewRoomService(api, log)
	reservations := NewReservationService(api, rooms, log)
	reservations.now = func() time.Time {
		return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	}
	return rooms, reservations
}

func TestCreateSubmitsValidatedBooking(t *testing.T) {
	f := &fakeBackend{
		rooms: []models.Room{{ID: "r1", Name: "Family Suite", Type: "Suite", Price: 500000, Capacity: 2, Available: true}},
		created: models.Reservation{
			ID: "res-9", RoomID: "r1", Status: models.StatusConfirmed, TotalPrice: 1000000,
		},
	}
	_, reservations := newTestServices(t, f)

	created, room, err := reservations.Create(context.Background(), "tok", models.BookingRequest{
		RoomID: "r1", GuestName: "Budi", Email: "budi@example.com", Phone: "0812",
		CheckIn: "2024-01-10", CheckOut: "2024-01-12", Guests: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "res-9", created.ID)
	assert.Equal(t, models.StatusConfirmed, created.Status)
	assert.Equal(t, "r1", room.ID)
	assert.Equal(t, int32(1), f.posts.Load())
}

func TestCreateServerTotalWins(t *testing.T) {
	f := &fakeBackend{
		rooms: []models.Room{{ID: "r1", Price: 500000, Capacity: 2, Available: true}},
		// Backend disagrees with the 1,000,000 client estimate.
		created: models.Reservation{ID: "res-9", RoomID: "r1", Status: models.StatusConfirmed, TotalPrice: 990000},
	}
	_, reservations := newTestServices(t, f)

	created, _, err := reservations.Create(context.Background(), "", models.BookingRequest{
		RoomID: "r1", GuestName: "Budi", Email: "budi@example.com", Phone: "0812",
		CheckIn: "2024-01-10", CheckOut: "2024-01-12", Guests: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(990000), created.TotalPrice)
}

func TestCreateValidationFailureSkipsNetwork(t *testing.T) {
	f := &fakeBackend{
		rooms: []models.Room{{ID: "r1", Price: 500000, Capacity: 2, Available: true}},
	}
	_, reservations := newTestServices(t, f)

	_, _, err := reservations.Create(context.Background(), "", models.BookingRequest{
		RoomID: "r1", GuestName: "Budi", Email: "budi@example.com", Phone: "0812",
		CheckIn: "2024-01-10", CheckOut: "2024-01-12", Guests: 3,
	})
	var capErr *CapacityExceededError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 2, capErr.Max)
	assert.Equal(t, int32(0), f.posts.Load(), "validation failures must not reach the backend")
}

func TestCreateUnknownRoom(t *testing.T) {
	f := &fakeBackend{rooms: []models.Room{{ID: "r1", Capacity: 2}}}
	_, reservations := newTestServices(t, f)

	_, _, err := reservations.Create(context.Background(), "", models.BookingRequest{
		RoomID: "ghost", GuestName: "Budi", Email: "budi@example.com", Phone: "0812",
		CheckIn: "2024-01-10", CheckOut: "2024-01-12", Guests: 1,
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.Equal(t, int32(0), f.posts.Load())
}

func TestListWithRoomNamesJoinsCatalogue(t *testing.T) {
	f := &fakeBackend{
		rooms: []models.Room{{ID: "r1", Name: "Family Suite", Capacity: 4}},
		reservations: []models.Reservation{
			{ID: "res-1", RoomID: "r1", Status: models.StatusConfirmed},
			{ID: "res-2", RoomID: "ghost", Status: models.StatusCompleted},
		},
	}
	_, reservations := newTestServices(t, f)

	got, err := reservations.ListWithRoomNames(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Family Suite", got[0].RoomName)
	// Rooms missing from the catalogue fall back to the id.
	assert.Equal(t, "ghost", got[1].RoomName)
}

func TestListWithRoomNamesSurvivesRoomLookupFailure(t *testing.T) {
	f := &fakeBackend{
		reservations: []models.Reservation{
			{ID: "res-1", RoomID: "r1", Status: models.StatusConfirmed},
		},
	}
	f.failRooms.Store(true)
	_, reservations := newTestServices(t, f)

	got, err := reservations.ListWithRoomNames(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "r1", got[0].RoomName)
}

func TestUpdateStatusEnforcesStateMachine(t *testing.T) {
	f := &fakeBackend{
		reservations: []models.Reservation{
			{ID: "res-1", Status: models.StatusConfirmed},
			{ID: "res-2", Status: models.StatusCompleted},
		},
		created: models.Reservation{ID: "res-1", Status: models.StatusCancelled},
	}
	_, reservations := newTestServices(t, f)
	ctx := context.Background()

	// Terminal state: frozen.
	_, err := reservations.UpdateStatus(ctx, "", "res-2", models.StatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Unknown target status.
	_, err = reservations.UpdateStatus(ctx, "", "res-1", "checked-in")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Unknown reservation.
	_, err = reservations.UpdateStatus(ctx, "", "ghost", models.StatusCancelled)
	assert.ErrorIs(t, err, ErrReservationNotFound)

	assert.Equal(t, int32(0), f.patches.Load())

	// Legal transition goes through.
	updated, err := reservations.UpdateStatus(ctx, "", "res-1", models.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, updated.Status)
	assert.Equal(t, int32(1), f.patches.Load())
}

func TestRoomSnapshotRetainedOnFailure(t *testing.T) {
	f := &fakeBackend{
		rooms: []models.Room{{ID: "r1", Name: "Deluxe Room", Capacity: 2}},
	}
	rooms, _ := newTestServices(t, f)
	ctx := context.Background()

	first, err := rooms.GetAll(ctx, "")
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Backend goes down; the last good list keeps being served unchanged.
	f.failRooms.Store(true)
	again, err := rooms.GetAll(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestRoomFetchFailsWithoutSnapshot(t *testing.T) {
	f := &fakeBackend{}
	f.failRooms.Store(true)
	rooms, _ := newTestServices(t, f)

	_, err := rooms.GetAll(context.Background(), "")
	assert.Error(t, err)
}
