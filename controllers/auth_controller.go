package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-frontend/middleware"
	"hotel-frontend/services"
	"hotel-frontend/utils"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type loginPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type registerPayload struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type forgotPayload struct {
	Email string `json:"email" binding:"required,email"`
}

// Login exchanges credentials for a session at the external provider.
func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONFieldError(c, http.StatusBadRequest, bindingField(err), "email and password are required")
		return
	}

	session, err := ac.Auth.SignIn(payload.Email, payload.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, session)
}

// Logout revokes the caller's session token.
func (ac *AuthController) Logout(c *gin.Context) {
	ac.Auth.SignOut(middleware.SessionToken(c))
	utils.JSONSuccess(c, http.StatusOK, gin.H{"signedOut": true})
}

// Register creates an account with the external provider.
func (ac *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONFieldError(c, http.StatusBadRequest, bindingField(err), "name, email and a password of at least 6 characters are required")
		return
	}

	if err := ac.Auth.Register(payload.Email, payload.Password, payload.Name); err != nil {
		utils.JSONError(c, http.StatusBadGateway, "registration failed, please try again")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"registered": payload.Email})
}

// ForgotPassword triggers the provider's recovery email.
func (ac *AuthController) ForgotPassword(c *gin.Context) {
	var payload forgotPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONFieldError(c, http.StatusBadRequest, "email", "a valid email is required")
		return
	}

	if err := ac.Auth.ForgotPassword(payload.Email); err != nil {
		utils.JSONError(c, http.StatusBadGateway, "could not send recovery email, please try again")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"sent": payload.Email})
}
