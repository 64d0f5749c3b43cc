package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"hotel-frontend/backend"
	"hotel-frontend/models"
)

var (
	// ErrReservationNotFound means the id is absent from the caller's list.
	ErrReservationNotFound = errors.New("reservation not found")
	// ErrInvalidTransition rejects status changes the state machine forbids.
	ErrInvalidTransition = errors.New("reservation status cannot change")
)

const reservationsSnapshotKey = "reservations"

// ReservationSummary is a reservation joined with its room's display name,
// which is what the reservation list renders.
type ReservationSummary struct {
	models.Reservation
	RoomName string `json:"roomName"`
}

// ReservationService drives the booking flow: validate locally, submit to the
// backend, and accept the returned record as ground truth.
type ReservationService struct {
	api   *backend.Client
	rooms *RoomService

	snapshot *cache.Cache
	log      *logrus.Logger

	// now is swappable for tests; the validator itself never reads a clock.
	now func() time.Time
}

func NewReservationService(api *backend.Client, rooms *RoomService, log *logrus.Logger) *ReservationService {
	return &ReservationService{
		api:      api,
		rooms:    rooms,
		snapshot: cache.New(cache.NoExpiration, 0),
		log:      log,
		now:      time.Now,
	}
}

// List fetches the caller's reservations, with the same wholesale snapshot
// retention as the room list.
func (s *ReservationService) List(ctx context.Context, token string) ([]models.Reservation, error) {
	reservations, err := s.api.ListReservations(ctx, token)
	if err != nil {
		if cached, ok := s.snapshot.Get(reservationsSnapshotKey); ok {
			s.log.WithError(err).Warn("reservation refresh failed, serving retained snapshot")
			return cached.([]models.Reservation), nil
		}
		return nil, err
	}
	s.snapshot.Set(reservationsSnapshotKey, reservations, cache.NoExpiration)
	return reservations, nil
}

// ListWithRoomNames joins the reservation list against the room catalogue.
// Unknown rooms fall back to the room id; a failed room lookup degrades the
// names, never the list itself.
func (s *ReservationService) ListWithRoomNames(ctx context.Context, token string) ([]ReservationSummary, error) {
	reservations, err := s.List(ctx, token)
	if err != nil {
		return nil, err
	}

	names := map[string]string{}
	if rooms, err := s.rooms.GetAll(ctx, token); err != nil {
		s.log.WithError(err).Warn("room lookup failed, listing reservations without room names")
	} else {
		for _, room := range rooms {
			names[room.ID] = room.Name
		}
	}

	out := make([]ReservationSummary, 0, len(reservations))
	for _, r := range reservations {
		name := names[r.RoomID]
		if name == "" {
			name = r.RoomID
		}
		out = append(out, ReservationSummary{Reservation: r, RoomName: name})
	}
	return out, nil
}

// Create validates the booking request against the chosen room and, only when
// every check passes, submits it. Validation failures are returned as-is and
// never reach the network. The backend's record — including its total — wins.
func (s *ReservationService) Create(ctx context.Context, token string, req models.BookingRequest) (models.Reservation, models.Room, error) {
	room, err := s.rooms.GetByID(ctx, token, req.RoomID)
	if err != nil {
		return models.Reservation{}, models.Room{}, err
	}

	validated, err := ValidateBooking(room, req, s.now())
	if err != nil {
		return models.Reservation{}, room, err
	}

	created, err := s.api.CreateReservation(ctx, token, backend.ReservationPayload{
		RoomID:          validated.RoomID,
		GuestName:       validated.GuestName,
		Email:           validated.Email,
		Phone:           validated.Phone,
		CheckIn:         validated.CheckIn.Format(dateOnlyLayout),
		CheckOut:        validated.CheckOut.Format(dateOnlyLayout),
		Guests:          validated.Guests,
		SpecialRequests: validated.SpecialRequests,
	})
	if err != nil {
		return models.Reservation{}, room, err
	}

	// The local estimate is advisory only; log when the backend disagrees.
	if created.TotalPrice != validated.Total {
		s.log.WithFields(logrus.Fields{
			"reservation": created.ID,
			"estimate":    validated.Total,
			"server":      created.TotalPrice,
		}).Warn("server total differs from client estimate")
	}
	return created, room, nil
}

// UpdateStatus enforces the status state machine (confirmed -> completed or
// cancelled, terminal states frozen) before asking the backend to transition.
func (s *ReservationService) UpdateStatus(ctx context.Context, token, id, status string) (models.Reservation, error) {
	if status != models.StatusCompleted && status != models.StatusCancelled {
		return models.Reservation{}, fmt.Errorf("%w: unknown target status %q", ErrInvalidTransition, status)
	}

	current, err := s.find(ctx, token, id)
	if err != nil {
		return models.Reservation{}, err
	}
	if !models.CanTransition(current.Status, status) {
		return models.Reservation{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, status)
	}
	return s.api.UpdateReservationStatus(ctx, token, id, status)
}

// Delete removes a reservation. The caller refreshes its list afterwards;
// nothing here mutates local state.
func (s *ReservationService) Delete(ctx context.Context, token, id string) error {
	return s.api.DeleteReservation(ctx, token, id)
}

func (s *ReservationService) find(ctx context.Context, token, id string) (models.Reservation, error) {
	reservations, err := s.List(ctx, token)
	if err != nil {
		return models.Reservation{}, err
	}
	for _, r := range reservations {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Reservation{}, ErrReservationNotFound
}
