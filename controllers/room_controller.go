package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-frontend/middleware"
	"hotel-frontend/models"
	"hotel-frontend/services"
	"hotel-frontend/utils"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{Rooms: rooms}
}

// GetRooms serves the filtered room catalogue plus the facet values for the
// filter panel.
//
//	GET /api/rooms?q=suite&type=all&minPrice=0&maxPrice=10000000&capacity=2&amenities=WiFi,AC&availableOnly=true
func (rc *RoomController) GetRooms(c *gin.Context) {
	opts, field, err := filterOptionsFromQuery(c)
	if err != nil {
		utils.JSONFieldError(c, http.StatusBadRequest, field, err.Error())
		return
	}

	query := c.Query("q")
	typeFilter := c.DefaultQuery("type", services.TypeFilterAll)

	result, err := rc.Rooms.Browse(c.Request.Context(), middleware.SessionToken(c), query, typeFilter, opts)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}

// GetRoomByID serves a single room snapshot.
func (rc *RoomController) GetRoomByID(c *gin.Context) {
	room, err := rc.Rooms.GetByID(c.Request.Context(), middleware.SessionToken(c), c.Param("id"))
	if err != nil {
		respondBackendError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// filterOptionsFromQuery builds FilterOptions from query params, starting
// from the panel defaults. Returns the offending param name on failure.
func filterOptionsFromQuery(c *gin.Context) (models.FilterOptions, string, error) {
	opts := models.DefaultFilterOptions()

	if raw := c.Query("minPrice"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			return opts, "minPrice", errInvalidParam("minPrice")
		}
		opts.PriceRange[0] = v
	}
	if raw := c.Query("maxPrice"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			return opts, "maxPrice", errInvalidParam("maxPrice")
		}
		opts.PriceRange[1] = v
	}
	if opts.PriceRange[0] > opts.PriceRange[1] {
		return opts, "minPrice", errInvalidParam("minPrice above maxPrice")
	}

	if raw := c.Query("capacity"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return opts, "capacity", errInvalidParam("capacity")
		}
		opts.Capacity = v
	}

	if raw := c.Query("amenities"); raw != "" {
		for _, a := range strings.Split(raw, ",") {
			if a = strings.TrimSpace(a); a != "" {
				opts.Amenities = append(opts.Amenities, a)
			}
		}
	}

	if raw := c.Query("availableOnly"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return opts, "availableOnly", errInvalidParam("availableOnly")
		}
		opts.AvailableOnly = v
	}

	return opts, "", nil
}

type paramError string

func (e paramError) Error() string { return "invalid filter parameter: " + string(e) }

func errInvalidParam(name string) error { return paramError(name) }
