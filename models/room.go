package models

// Room is a read-only snapshot of a bookable unit owned by the reservation
// backend. Price is in the smallest currency unit (rupiah) per night.
type Room struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Price       int64    `json:"price"`
	Capacity    int      `json:"capacity"`
	Amenities   []string `json:"amenities"`
	Available   bool     `json:"available"`
	Image       string   `json:"image,omitempty"`
}

// HasAmenity reports whether the room lists the given amenity.
func (r Room) HasAmenity(name string) bool {
	for _, a := range r.Amenities {
		if a == name {
			return true
		}
	}
	return false
}
