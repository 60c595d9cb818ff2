package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/shareit/gateway/internal/model"
)

// CreateUser
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param user body model.UserDto true "user"
// @Success 200 {object} object
// @Failure 400 {object} object
// @Failure 409 {object} object
// @Router /users [post]
func (h *Handler) CreateUser(c echo.Context) error {
	var dto model.UserDto
	if err := bindAndValidate(c, &dto); err != nil {
		return err
	}
	data, code, err := h.users.CreateUser(c.Request().Context(), dto)
	return h.forward(c, data, code, err)
}

// UpdateUser
// @Summary Patch user
// @Tags users
// @Accept json
// @Produce json
// @Param userId path int true "user id"
// @Param user body model.UserUpdateDto true "fields to change"
// @Success 200 {object} object
// @Failure 404 {object} object
// @Router /users/{userId} [patch]
func (h *Handler) UpdateUser(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	var dto model.UserUpdateDto
	if err := bindAndValidate(c, &dto); err != nil {
		return err
	}
	data, code, err := h.users.UpdateUser(c.Request().Context(), userID, dto)
	return h.forward(c, data, code, err)
}

// GetUser
// @Summary Get user
// @Tags users
// @Produce json
// @Param userId path int true "user id"
// @Success 200 {object} object
// @Failure 404 {object} object
// @Router /users/{userId} [get]
func (h *Handler) GetUser(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	data, code, err := h.users.GetUser(c.Request().Context(), userID)
	return h.forward(c, data, code, err)
}

// ListUsers
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} object
// @Router /users [get]
func (h *Handler) ListUsers(c echo.Context) error {
	data, code, err := h.users.ListUsers(c.Request().Context())
	return h.forward(c, data, code, err)
}

// DeleteUser
// @Summary Delete user
// @Tags users
// @Param userId path int true "user id"
// @Success 200
// @Failure 404 {object} object
// @Router /users/{userId} [delete]
func (h *Handler) DeleteUser(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	data, code, err := h.users.DeleteUser(c.Request().Context(), userID)
	return h.forward(c, data, code, err)
}
