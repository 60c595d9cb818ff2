package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/shareit/gateway/internal/model"
	md "github.com/Astemirdum/shareit/pkg/middleware"
)

// CreateRequest
// @Summary Ask for an item nobody offers yet
// @Tags requests
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "requestor id"
// @Param request body model.ItemRequestDto true "request"
// @Success 200 {object} object
// @Failure 400 {object} object
// @Failure 404 {object} object
// @Router /requests [post]
func (h *Handler) CreateRequest(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return err
	}
	var dto model.ItemRequestDto
	if err := bindAndValidate(c, &dto); err != nil {
		return err
	}
	data, code, err := h.requests.CreateRequest(c.Request().Context(), userID, dto)
	return h.forward(c, data, code, err)
}

// ListOwnRequests
// @Summary List the caller's requests with answering items
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "requestor id"
// @Success 200 {array} object
// @Router /requests [get]
func (h *Handler) ListOwnRequests(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return err
	}
	data, code, err := h.requests.ListOwnRequests(c.Request().Context(), userID)
	return h.forward(c, data, code, err)
}

// ListOtherRequests
// @Summary List requests of other users
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "caller id"
// @Param from query int false "first element index" default(0)
// @Param size query int false "page size" default(20)
// @Success 200 {array} object
// @Router /requests/all [get]
func (h *Handler) ListOtherRequests(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return err
	}
	from, size, err := page(c, defaultRequestPageSize)
	if err != nil {
		return err
	}
	data, code, err := h.requests.ListOtherRequests(c.Request().Context(), userID, from, size)
	return h.forward(c, data, code, err)
}

// GetRequest
// @Summary Get a request with its answering items
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "caller id"
// @Param requestId path int true "request id"
// @Success 200 {object} object
// @Failure 404 {object} object
// @Router /requests/{requestId} [get]
func (h *Handler) GetRequest(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return err
	}
	requestID, err := pathID(c, "requestId")
	if err != nil {
		return err
	}
	data, code, err := h.requests.GetRequest(c.Request().Context(), userID, requestID)
	return h.forward(c, data, code, err)
}
