package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"hotel-frontend/backend"
	"hotel-frontend/services"
	"hotel-frontend/utils"
)

// respondBackendError maps a failed backend call onto the response envelope.
// Application errors keep the server's message and status; anything else is a
// transport failure the guest can retry.
func respondBackendError(c *gin.Context, err error) {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		utils.JSONError(c, apiErr.StatusCode, apiErr.Error())
		return
	}
	if errors.Is(err, services.ErrRoomNotFound) || errors.Is(err, services.ErrReservationNotFound) {
		utils.JSONError(c, http.StatusNotFound, err.Error())
		return
	}
	utils.JSONError(c, http.StatusBadGateway, "reservation service is unavailable, please try again")
}

// bindingField names the first offending field of a gin binding error in its
// JSON spelling, or "" when the error carries no field information.
func bindingField(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if field := verrs[0].Field(); field != "" {
			return strings.ToLower(field[:1]) + field[1:]
		}
	}
	return ""
}
