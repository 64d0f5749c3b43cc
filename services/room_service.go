package services

import (
	"context"
	"errors"

	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"hotel-frontend/backend"
	"hotel-frontend/models"
)

// ErrRoomNotFound means the room id is absent from the current catalogue.
var ErrRoomNotFound = errors.New("room not found")

const roomsSnapshotKey = "rooms"

// BrowseResult is one page of the room catalogue: the filtered rooms plus the
// facet values the filter panel offers.
type BrowseResult struct {
	Rooms     []models.Room `json:"rooms"`
	Types     []string      `json:"types"`
	Amenities []string      `json:"amenities"`
}

// RoomService refreshes the room list from the backend and keeps the last
// successful snapshot. The snapshot is replaced wholesale, never merged; on a
// failed refresh it is served unchanged so the guest keeps a usable list.
type RoomService struct {
	api      *backend.Client
	snapshot *cache.Cache
	log      *logrus.Logger
}

func NewRoomService(api *backend.Client, log *logrus.Logger) *RoomService {
	return &RoomService{
		api:      api,
		snapshot: cache.New(cache.NoExpiration, 0),
		log:      log,
	}
}

// GetAll fetches the current room list, falling back to the retained snapshot
// when the backend call fails. The error is returned only when there is no
// snapshot to serve.
func (s *RoomService) GetAll(ctx context.Context, token string) ([]models.Room, error) {
	rooms, err := s.api.ListRooms(ctx, token)
	if err != nil {
		if cached, ok := s.snapshot.Get(roomsSnapshotKey); ok {
			s.log.WithError(err).Warn("room refresh failed, serving retained snapshot")
			return cached.([]models.Room), nil
		}
		return nil, err
	}
	s.snapshot.Set(roomsSnapshotKey, rooms, cache.NoExpiration)
	return rooms, nil
}

// GetByID resolves one room from the current list.
func (s *RoomService) GetByID(ctx context.Context, token, id string) (models.Room, error) {
	rooms, err := s.GetAll(ctx, token)
	if err != nil {
		return models.Room{}, err
	}
	for _, room := range rooms {
		if room.ID == id {
			return room, nil
		}
	}
	return models.Room{}, ErrRoomNotFound
}

// Browse refreshes the catalogue and applies the filter. Facets are computed
// from the unfiltered list so the panel keeps offering every known type and
// amenity.
func (s *RoomService) Browse(ctx context.Context, token, query, typeFilter string, opts models.FilterOptions) (BrowseResult, error) {
	rooms, err := s.GetAll(ctx, token)
	if err != nil {
		return BrowseResult{}, err
	}
	return BrowseResult{
		Rooms:     FilterRooms(rooms, query, typeFilter, opts),
		Types:     RoomTypeFacets(rooms),
		Amenities: AmenityFacets(rooms),
	}, nil
}
