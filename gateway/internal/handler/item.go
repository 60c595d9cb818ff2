package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/shareit/gateway/internal/model"
	md "github.com/Astemirdum/shareit/pkg/middleware"
)

// CreateItem
// @Summary Create item
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "owner id"
// @Param item body model.ItemDto true "item"
// @Success 200 {object} object
// @Failure 400 {object} object
// @Failure 404 {object} object
// @Router /items [post]
func (h *Handler) CreateItem(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return err
	}
	var dto model.ItemDto
	if err := bindAndValidate(c, &dto); err != nil {
		return err
	}
	data, code, err := h.items.CreateItem(c.Request().Context(), userID, dto)
	return h.forward(c, data, code, err)
}

// UpdateItem
// @Summary Patch item
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "owner id"
// @Param itemId path int true "item id"
// @Param item body model.ItemUpdateDto true "fields to change"
// @Success 200 {object} object
// @Failure 403 {object} object
// @Failure 404 {object} object
// @Router /items/{itemId} [patch]
func (h *Handler) UpdateItem(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return err
	}
	var dto model.ItemUpdateDto
	if err := bindAndValidate(c, &dto); err != nil {
		return err
	}
	data, code, err := h.items.UpdateItem(c.Request().Context(), userID, itemID, dto)
	return h.forward(c, data, code, err)
}

// GetItem
// @Summary Get item with comments, owners also see last and next booking
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "caller id"
// @Param itemId path int true "item id"
// @Success 200 {object} object
// @Failure 404 {object} object
// @Router /items/{itemId} [get]
func (h *Handler) GetItem(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return err
	}
	data, code, err := h.items.GetItem(c.Request().Context(), userID, itemID)
	return h.forward(c, data, code, err)
}

// ListItems
// @Summary List owner's items
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "owner id"
// @Param from query int false "first element index" default(0)
// @Param size query int false "page size" default(10)
// @Success 200 {array} object
// @Router /items [get]
func (h *Handler) ListItems(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return err
	}
	from, size, err := page(c, defaultPageSize)
	if err != nil {
		return err
	}
	data, code, err := h.items.ListItems(c.Request().Context(), userID, from, size)
	return h.forward(c, data, code, err)
}

// SearchItems
// @Summary Search available items by name or description
// @Tags items
// @Produce json
// @Param text query string false "search text"
// @Param from query int false "first element index" default(0)
// @Param size query int false "page size" default(10)
// @Success 200 {array} object
// @Router /items/search [get]
func (h *Handler) SearchItems(c echo.Context) error {
	from, size, err := page(c, defaultPageSize)
	if err != nil {
		return err
	}
	data, code, err := h.items.SearchItems(c.Request().Context(), c.QueryParam("text"), from, size)
	return h.forward(c, data, code, err)
}

// DeleteItem
// @Summary Delete item
// @Tags items
// @Param X-Sharer-User-Id header int true "owner id"
// @Param itemId path int true "item id"
// @Success 200
// @Failure 403 {object} object
// @Failure 404 {object} object
// @Router /items/{itemId} [delete]
func (h *Handler) DeleteItem(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return err
	}
	data, code, err := h.items.DeleteItem(c.Request().Context(), userID, itemID)
	return h.forward(c, data, code, err)
}

// AddComment
// @Summary Comment an item the caller has rented
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "author id"
// @Param itemId path int true "item id"
// @Param comment body model.CommentDto true "comment"
// @Success 200 {object} object
// @Failure 400 {object} object
// @Failure 404 {object} object
// @Router /items/{itemId}/comment [post]
func (h *Handler) AddComment(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return err
	}
	var dto model.CommentDto
	if err := bindAndValidate(c, &dto); err != nil {
		return err
	}
	data, code, err := h.items.AddComment(c.Request().Context(), userID, itemID, dto)
	return h.forward(c, data, code, err)
}
