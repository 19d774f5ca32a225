package controllers

import (
	"context"
	"net/http"

	"pdv/models"

	"github.com/gin-gonic/gin"
)

type Authenticator interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
}

type AuthController struct {
	Auth Authenticator
}

// Login godoc
// @Summary Staff login
// @Description Returns a bearer token for a PDV operator
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	resp, err := ctrl.Auth.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Success: false, Message: "Email ou senha incorretos."})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Login successful", Data: resp})
}
