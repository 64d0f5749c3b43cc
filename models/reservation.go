package models

// Reservation statuses. Confirmed is the initial state the backend assigns;
// completed and cancelled are terminal.
const (
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Reservation is the backend's canonical record of a booking. The client never
// builds one itself; it submits a BookingRequest and takes the returned record
// as ground truth.
type Reservation struct {
	ID              string `json:"id"`
	RoomID          string `json:"roomId"`
	GuestName       string `json:"guestName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	CheckIn         string `json:"checkIn"`
	CheckOut        string `json:"checkOut"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"specialRequests,omitempty"`
	TotalPrice      int64  `json:"totalPrice"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt,omitempty"`
}

// BookingRequest is what the guest submits. Dates are date-only strings
// (YYYY-MM-DD), matching the backend wire format.
type BookingRequest struct {
	RoomID          string `json:"roomId" binding:"required"`
	GuestName       string `json:"guestName" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required"`
	CheckIn         string `json:"checkIn" binding:"required,dateonly"`
	CheckOut        string `json:"checkOut" binding:"required,dateonly"`
	Guests          int    `json:"guests" binding:"required,min=1"`
	SpecialRequests string `json:"specialRequests"`
}

// IsTerminalStatus reports whether a reservation in this status admits no
// further transitions.
func IsTerminalStatus(status string) bool {
	return status == StatusCompleted || status == StatusCancelled
}

// CanTransition reports whether a status change is allowed:
// confirmed -> completed | cancelled, nothing else.
func CanTransition(from, to string) bool {
	return from == StatusConfirmed && IsTerminalStatus(to)
}
