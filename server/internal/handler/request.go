package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	md "github.com/Astemirdum/shareit/pkg/middleware"
	"github.com/Astemirdum/shareit/server/internal/model"
)

func (h *Handler) CreateRequest(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var req model.CreateItemRequestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	created, err := h.requestSvc.CreateRequest(c.Request().Context(), userID, req)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, created)
}

func (h *Handler) ListOwnRequests(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	reqs, err := h.requestSvc.ListOwnRequests(c.Request().Context(), userID)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, reqs)
}

func (h *Handler) ListOtherRequests(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p, err := page(c, model.DefaultRequestPageSize)
	if err != nil {
		return err
	}
	reqs, err := h.requestSvc.ListOtherRequests(c.Request().Context(), userID, p)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, reqs)
}

func (h *Handler) GetRequest(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	requestID, err := pathID(c, "requestId")
	if err != nil {
		return err
	}
	req, err := h.requestSvc.GetRequest(c.Request().Context(), userID, requestID)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, req)
}
