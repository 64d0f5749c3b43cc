package models

// Default price ceiling for the filter panel, in rupiah.
const MaxFilterPrice int64 = 10000000

// FilterOptions narrows the visible room set. Transient and client-local;
// zero constraints admit every room.
type FilterOptions struct {
	PriceRange    [2]int64 `json:"priceRange"`
	Capacity      int      `json:"capacity"`
	Amenities     []string `json:"amenities"`
	AvailableOnly bool     `json:"availableOnly"`
}

// DefaultFilterOptions returns the reset state of the filter panel.
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		PriceRange:    [2]int64{0, MaxFilterPrice},
		Capacity:      1,
		Amenities:     []string{},
		AvailableOnly: false,
	}
}
