package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	md "github.com/Astemirdum/shareit/pkg/middleware"
	"github.com/Astemirdum/shareit/server/internal/model"
)

func (h *Handler) CreateBooking(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var req model.CreateBookingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	booking, err := h.bookingSvc.CreateBooking(c.Request().Context(), userID, req)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *Handler) DecideBooking(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	bookingID, err := pathID(c, "bookingId")
	if err != nil {
		return err
	}
	approved, err := strconv.ParseBool(c.QueryParam("approved"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "approved must be true or false")
	}
	booking, err := h.bookingSvc.DecideBooking(c.Request().Context(), userID, bookingID, approved)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *Handler) CancelBooking(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	bookingID, err := pathID(c, "bookingId")
	if err != nil {
		return err
	}
	booking, err := h.bookingSvc.CancelBooking(c.Request().Context(), userID, bookingID)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *Handler) GetBooking(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	bookingID, err := pathID(c, "bookingId")
	if err != nil {
		return err
	}
	booking, err := h.bookingSvc.GetBooking(c.Request().Context(), userID, bookingID)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *Handler) ListBookerBookings(c echo.Context) error {
	return h.listBookings(c, h.bookingSvc.ListBookerBookings)
}

func (h *Handler) ListOwnerBookings(c echo.Context) error {
	return h.listBookings(c, h.bookingSvc.ListOwnerBookings)
}

type listBookingsFunc func(ctx context.Context, userID int64, state model.State, page model.Page) ([]model.BookingResponse, error)

func (h *Handler) listBookings(c echo.Context, list listBookingsFunc) error {
	userID, err := md.UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	state, err := model.ParseState(c.QueryParam("state"))
	if err != nil {
		return h.httpError(c, err)
	}
	p, err := page(c, model.DefaultPageSize)
	if err != nil {
		return err
	}
	bookings, err := list(c.Request().Context(), userID, state, p)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, bookings)
}
