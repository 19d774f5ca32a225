package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"pdv/models"
	"pdv/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type UserManager interface {
	AddUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id, currentUserID int) (*models.User, error)
}

type UserController struct {
	Users UserManager
}

// AddUser godoc
// @Summary Add staff user
// @Description Creates a user with the permissions of its role (admin, rh, pdv, estoquista, cadastrador)
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateUserRequest true "User"
// @Success 201 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /adicionar_usuario [post]
func (ctrl *UserController) AddUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	user, err := ctrl.Users.AddUser(c.Request.Context(), req)
	if errors.Is(err, services.ErrEmailTaken) {
		c.JSON(http.StatusConflict, models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}
	if err != nil {
		log.Printf("add user: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: fmt.Sprintf("Usuário '%s' adicionado com sucesso!", user.Name),
		Data:    user,
	})
}

// DeleteUser godoc
// @Summary Delete staff user
// @Description Removes a user. Operators cannot remove themselves or the main admins
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.Response
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /excluir_usuario/{id} [delete]
func (ctrl *UserController) DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid user ID"})
		return
	}

	user, err := ctrl.Users.DeleteUser(c.Request.Context(), id, c.GetInt("user_id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDeleteSelf), errors.Is(err, services.ErrProtectedAdmin):
			c.JSON(http.StatusForbidden, models.ErrorResponse{Success: false, Message: err.Error()})
		case errors.Is(err, pgx.ErrNoRows):
			c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Usuário não encontrado."})
		default:
			log.Printf("delete user %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to delete user"})
		}
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: fmt.Sprintf("Usuário '%s' excluído com sucesso!", user.Name),
	})
}
