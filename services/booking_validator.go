package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"hotel-frontend/models"
)

// dateOnlyLayout matches the backend wire format for check-in/out dates.
const dateOnlyLayout = "2006-01-02"

// ErrInvalidGuestCount rejects bookings for fewer than one guest.
var ErrInvalidGuestCount = errors.New("at least one guest is required")

// PastCheckInError means the check-in date lies strictly before today.
type PastCheckInError struct {
	CheckIn time.Time
}

func (e *PastCheckInError) Error() string {
	return fmt.Sprintf("check-in date %s is in the past", e.CheckIn.Format(dateOnlyLayout))
}

// InvalidDateRangeError means check-out is not strictly after check-in.
type InvalidDateRangeError struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func (e *InvalidDateRangeError) Error() string {
	return fmt.Sprintf("check-out %s must be after check-in %s",
		e.CheckOut.Format(dateOnlyLayout), e.CheckIn.Format(dateOnlyLayout))
}

// CapacityExceededError carries the room's limit for the inline message.
type CapacityExceededError struct {
	Max int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("room sleeps at most %d guests", e.Max)
}

// MalformedDateError wraps a date string that parses as neither a date-only
// value nor RFC 3339.
type MalformedDateError struct {
	Field string
	Value string
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("%s: cannot parse %q as a date", e.Field, e.Value)
}

// ValidatedBooking is a booking request that passed every check, with the
// advisory price estimate attached. It is ready to submit to the reservation
// backend; the backend recomputes the total and its value wins.
type ValidatedBooking struct {
	RoomID          string
	GuestName       string
	Email           string
	Phone           string
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	SpecialRequests string
	Nights          int
	Total           int64
}

// ValidateBooking checks a proposed stay against the room, short-circuiting on
// the first failure: past check-in, inverted date range, then capacity. On
// success it prices the stay (nights x nightly rate, nights rounded up).
// Pure: no clock access (today is a parameter) and no network.
func ValidateBooking(room models.Room, req models.BookingRequest, today time.Time) (ValidatedBooking, error) {
	checkIn, err := parseStayDate("checkIn", req.CheckIn)
	if err != nil {
		return ValidatedBooking{}, err
	}
	checkOut, err := parseStayDate("checkOut", req.CheckOut)
	if err != nil {
		return ValidatedBooking{}, err
	}

	if beforeDate(checkIn, today) {
		return ValidatedBooking{}, &PastCheckInError{CheckIn: checkIn}
	}
	if !checkOut.After(checkIn) {
		return ValidatedBooking{}, &InvalidDateRangeError{CheckIn: checkIn, CheckOut: checkOut}
	}
	if req.Guests < 1 {
		return ValidatedBooking{}, ErrInvalidGuestCount
	}
	if req.Guests > room.Capacity {
		return ValidatedBooking{}, &CapacityExceededError{Max: room.Capacity}
	}

	nights := Nights(checkIn, checkOut)
	return ValidatedBooking{
		RoomID:          room.ID,
		GuestName:       req.GuestName,
		Email:           req.Email,
		Phone:           req.Phone,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
		Nights:          nights,
		Total:           int64(nights) * room.Price,
	}, nil
}

// Nights counts the billable nights between two instants. A stay spanning any
// part of a calendar day counts as a full night, so 25 hours bills as two.
func Nights(checkIn, checkOut time.Time) int {
	if !checkOut.After(checkIn) {
		return 0
	}
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// parseStayDate accepts the date-only wire format and, for callers holding
// full timestamps, RFC 3339.
func parseStayDate(field, value string) (time.Time, error) {
	if t, err := time.Parse(dateOnlyLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, &MalformedDateError{Field: field, Value: value}
}

// beforeDate compares calendar dates only, so a check-in later today is never
// "in the past" regardless of either side's time of day or zone.
func beforeDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}
