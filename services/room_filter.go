package services

import (
	"strings"

	"hotel-frontend/models"
)

// TypeFilterAll is the sentinel the UI sends when no room type is selected.
const TypeFilterAll = "all"

// FilterRooms returns the rooms that pass every active constraint, in input
// order. It is pure: the input slice is never mutated.
//
// A room passes iff its name or type contains the query (case-insensitive),
// its type matches the type filter (or the filter is the "all" sentinel), its
// price falls inside the price range inclusive, it sleeps at least the
// requested capacity, it carries every required amenity, and — when
// AvailableOnly is set — it is available.
func FilterRooms(rooms []models.Room, query, typeFilter string, opts models.FilterOptions) []models.Room {
	out := make([]models.Room, 0, len(rooms))
	q := strings.ToLower(strings.TrimSpace(query))

	for _, room := range rooms {
		if !matchesQuery(room, q) {
			continue
		}
		if !matchesType(room, typeFilter) {
			continue
		}
		if room.Price < opts.PriceRange[0] || room.Price > opts.PriceRange[1] {
			continue
		}
		if room.Capacity < opts.Capacity {
			continue
		}
		if !hasAllAmenities(room, opts.Amenities) {
			continue
		}
		if opts.AvailableOnly && !room.Available {
			continue
		}
		out = append(out, room)
	}
	return out
}

func matchesQuery(room models.Room, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(room.Name), q) ||
		strings.Contains(strings.ToLower(room.Type), q)
}

func matchesType(room models.Room, typeFilter string) bool {
	if typeFilter == "" || typeFilter == TypeFilterAll {
		return true
	}
	return room.Type == typeFilter
}

// hasAllAmenities is vacuously true for an empty requirement set.
func hasAllAmenities(room models.Room, required []string) bool {
	for _, want := range required {
		if !room.HasAmenity(want) {
			return false
		}
	}
	return true
}

// RoomTypeFacets returns the distinct room types present, in first-seen order.
func RoomTypeFacets(rooms []models.Room) []string {
	seen := make(map[string]struct{}, len(rooms))
	types := make([]string, 0, len(rooms))
	for _, room := range rooms {
		if room.Type == "" {
			continue
		}
		if _, ok := seen[room.Type]; ok {
			continue
		}
		seen[room.Type] = struct{}{}
		types = append(types, room.Type)
	}
	return types
}

// AmenityFacets returns the distinct amenity names across all rooms, in
// first-seen order. Feeds the filter panel's checkbox list.
func AmenityFacets(rooms []models.Room) []string {
	seen := map[string]struct{}{}
	amenities := []string{}
	for _, room := range rooms {
		for _, a := range room.Amenities {
			if a == "" {
				continue
			}
			if _, ok := seen[a]; ok {
				continue
			}
			seen[a] = struct{}{}
			amenities = append(amenities, a)
		}
	}
	return amenities
}
