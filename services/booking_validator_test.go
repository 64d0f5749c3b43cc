package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-frontend/models"
)

var testRoom = models.Room{ID: "r1", Name: "Family Suite", Type: "Suite", Price: 500000, Capacity: 2, Available: true}

func bookingFor(checkIn, checkOut string, guests int) models.BookingRequest {
	return models.BookingRequest{
		RoomID:    "r1",
		GuestName: "Budi Santoso",
		Email:     "budi@example.com",
		Phone:     "08123456789",
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Guests:    guests,
	}
}

func TestValidateBookingComputesTotal(t *testing.T) {
	today := time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)

	got, err := ValidateBooking(testRoom, bookingFor("2024-01-10", "2024-01-12", 2), today)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Nights)
	assert.Equal(t, int64(1000000), got.Total)
	assert.Equal(t, "r1", got.RoomID)
	assert.Equal(t, "Budi Santoso", got.GuestName)
}

func TestValidateBookingRejectsPastCheckIn(t *testing.T) {
	today := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	_, err := ValidateBooking(testRoom, bookingFor("2024-01-09", "2024-01-12", 1), today)
	var pastErr *PastCheckInError
	require.ErrorAs(t, err, &pastErr)
}

func TestValidateBookingAcceptsCheckInToday(t *testing.T) {
	// Date-only comparison: a check-in later today is fine even though the
	// clock has moved past midnight.
	today := time.Date(2024, 1, 10, 23, 15, 0, 0, time.UTC)

	_, err := ValidateBooking(testRoom, bookingFor("2024-01-10", "2024-01-11", 1), today)
	assert.NoError(t, err)
}

func TestValidateBookingRejectsInvertedRange(t *testing.T) {
	today := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, checkOut := range []string{"2024-01-10", "2024-01-09"} {
		_, err := ValidateBooking(testRoom, bookingFor("2024-01-10", checkOut, 1), today)
		var rangeErr *InvalidDateRangeError
		require.ErrorAs(t, err, &rangeErr, "checkOut=%s", checkOut)
	}
}

func TestValidateBookingRejectsOverCapacity(t *testing.T) {
	today := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := ValidateBooking(testRoom, bookingFor("2024-01-10", "2024-01-12", 3), today)
	var capErr *CapacityExceededError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 2, capErr.Max)
}

func TestValidateBookingRejectsZeroGuests(t *testing.T) {
	today := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := ValidateBooking(testRoom, bookingFor("2024-01-10", "2024-01-12", 0), today)
	assert.True(t, errors.Is(err, ErrInvalidGuestCount))
}

func TestValidateBookingShortCircuitsOnFirstFailure(t *testing.T) {
	// Past check-in AND over capacity: the date check must win.
	today := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	_, err := ValidateBooking(testRoom, bookingFor("2024-01-01", "2024-01-02", 99), today)
	var pastErr *PastCheckInError
	require.ErrorAs(t, err, &pastErr)
}

func TestValidateBookingRejectsMalformedDates(t *testing.T) {
	today := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := ValidateBooking(testRoom, bookingFor("10/01/2024", "2024-01-12", 1), today)
	var dateErr *MalformedDateError
	require.ErrorAs(t, err, &dateErr)
	assert.Equal(t, "checkIn", dateErr.Field)
}

func TestNightsCeilingRounding(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	// A 20-hour stay and a 25-hour stay both round up to the next whole day.
	assert.Equal(t, 1, Nights(base, base.Add(20*time.Hour)))
	assert.Equal(t, 2, Nights(base, base.Add(25*time.Hour)))
	assert.Equal(t, 1, Nights(base, base.Add(24*time.Hour)))
	assert.Equal(t, 0, Nights(base, base))
}

func TestValidateBookingFractionalStayPricing(t *testing.T) {
	today := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	req := bookingFor("2024-03-01T10:00:00Z", "2024-03-02T11:00:00Z", 1)

	got, err := ValidateBooking(testRoom, req, today)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Nights)
	assert.Equal(t, int64(1000000), got.Total)
}
