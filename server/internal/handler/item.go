package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	md "github.com/Astemirdum/shareit/pkg/middleware"
	"github.com/Astemirdum/shareit/server/internal/model"
)

func (h *Handler) CreateItem(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var req model.CreateItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	item, err := h.itemSvc.CreateItem(c.Request().Context(), userID, req)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *Handler) UpdateItem(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return err
	}
	var req model.UpdateItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	item, err := h.itemSvc.UpdateItem(c.Request().Context(), userID, itemID, req)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *Handler) GetItem(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return err
	}
	item, err := h.itemSvc.GetItem(c.Request().Context(), userID, itemID)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *Handler) ListOwnerItems(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p, err := page(c, model.DefaultPageSize)
	if err != nil {
		return err
	}
	items, err := h.itemSvc.ListOwnerItems(c.Request().Context(), userID, p)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) SearchItems(c echo.Context) error {
	p, err := page(c, model.DefaultPageSize)
	if err != nil {
		return err
	}
	items, err := h.itemSvc.SearchItems(c.Request().Context(), c.QueryParam("text"), p)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) DeleteItem(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return err
	}
	if err := h.itemSvc.DeleteItem(c.Request().Context(), userID, itemID); err != nil {
		return h.httpError(c, err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) AddComment(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return err
	}
	var req model.CreateCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	comment, err := h.itemSvc.AddComment(c.Request().Context(), userID, itemID, req)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, comment)
}
