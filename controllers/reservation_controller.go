package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-frontend/middleware"
	"hotel-frontend/models"
	"hotel-frontend/services"
	"hotel-frontend/utils"
)

type ReservationController struct {
	Reservations *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{Reservations: svc}
}

// ConfirmationResponse is returned after a successful booking: the backend's
// canonical record, the booked room, and the display-formatted total.
type ConfirmationResponse struct {
	Reservation  models.Reservation `json:"reservation"`
	Room         models.Room        `json:"room"`
	TotalDisplay string             `json:"totalDisplay"`
}

type statusUpdatePayload struct {
	Status string `json:"status" binding:"required"`
}

// GetReservations lists the caller's reservations with room names attached.
func (rc *ReservationController) GetReservations(c *gin.Context) {
	reservations, err := rc.Reservations.ListWithRoomNames(c.Request.Context(), middleware.SessionToken(c))
	if err != nil {
		respondBackendError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservations)
}

// CreateReservation validates the booking and submits it. Validation failures
// answer 400 with the offending field so the form can show them inline; no
// backend call is made for them.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONFieldError(c, http.StatusBadRequest, bindingField(err), "invalid booking request")
		return
	}

	created, room, err := rc.Reservations.Create(c.Request.Context(), middleware.SessionToken(c), req)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, ConfirmationResponse{
		Reservation:  created,
		Room:         room,
		TotalDisplay: utils.FormatIDR(created.TotalPrice),
	})
}

// UpdateReservationStatus transitions a reservation to completed or cancelled.
func (rc *ReservationController) UpdateReservationStatus(c *gin.Context) {
	var payload statusUpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONFieldError(c, http.StatusBadRequest, "status", "status is required")
		return
	}

	updated, err := rc.Reservations.UpdateStatus(c.Request.Context(), middleware.SessionToken(c), c.Param("id"), payload.Status)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			utils.JSONError(c, http.StatusConflict, err.Error())
			return
		}
		respondBackendError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

// DeleteReservation removes a reservation; the UI refetches its list after.
func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	if err := rc.Reservations.Delete(c.Request.Context(), middleware.SessionToken(c), c.Param("id")); err != nil {
		respondBackendError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": c.Param("id")})
}

// respondBookingError maps validator failures onto inline field errors.
func respondBookingError(c *gin.Context, err error) {
	var (
		pastErr  *services.PastCheckInError
		rangeErr *services.InvalidDateRangeError
		capErr   *services.CapacityExceededError
		dateErr  *services.MalformedDateError
	)
	switch {
	case errors.As(err, &pastErr):
		utils.JSONFieldError(c, http.StatusBadRequest, "checkIn", pastErr.Error())
	case errors.As(err, &rangeErr):
		utils.JSONFieldError(c, http.StatusBadRequest, "checkOut", rangeErr.Error())
	case errors.As(err, &capErr):
		utils.JSONFieldError(c, http.StatusBadRequest, "guests", capErr.Error())
	case errors.As(err, &dateErr):
		utils.JSONFieldError(c, http.StatusBadRequest, dateErr.Field, dateErr.Error())
	case errors.Is(err, services.ErrInvalidGuestCount):
		utils.JSONFieldError(c, http.StatusBadRequest, "guests", err.Error())
	default:
		respondBackendError(c, err)
	}
}
