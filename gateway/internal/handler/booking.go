package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/shareit/gateway/internal/errs"
	"github.com/Astemirdum/shareit/gateway/internal/model"
	md "github.com/Astemirdum/shareit/pkg/middleware"
)

// CreateBooking
// @Summary Book an item
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "booker id"
// @Param booking body model.BookingDto true "booking"
// @Success 200 {object} object
// @Failure 400 {object} object
// @Failure 404 {object} object
// @Router /bookings [post]
func (h *Handler) CreateBooking(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return err
	}
	var dto model.BookingDto
	if err := bindAndValidate(c, &dto); err != nil {
		return err
	}
	now := h.now()
	if !dto.Start.After(now) || !dto.End.After(now) || !dto.Start.Before(dto.End.Time) {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrBookingDates.Error())
	}
	data, code, err := h.bookings.CreateBooking(c.Request().Context(), userID, dto)
	return h.forward(c, data, code, err)
}

// DecideBooking
// @Summary Approve or reject a waiting booking
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "item owner id"
// @Param bookingId path int true "booking id"
// @Param approved query bool true "decision"
// @Success 200 {object} object
// @Failure 400 {object} object
// @Failure 404 {object} object
// @Router /bookings/{bookingId} [patch]
func (h *Handler) DecideBooking(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "bookingId")
	if err != nil {
		return err
	}
	approved, err := strconv.ParseBool(c.QueryParam("approved"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "approved must be true or false")
	}
	data, code, err := h.bookings.DecideBooking(c.Request().Context(), userID, bookingID, approved)
	return h.forward(c, data, code, err)
}

// CancelBooking
// @Summary Cancel own booking before it starts
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "booker id"
// @Param bookingId path int true "booking id"
// @Success 200 {object} object
// @Failure 400 {object} object
// @Failure 404 {object} object
// @Router /bookings/{bookingId}/cancel [patch]
func (h *Handler) CancelBooking(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "bookingId")
	if err != nil {
		return err
	}
	data, code, err := h.bookings.CancelBooking(c.Request().Context(), userID, bookingID)
	return h.forward(c, data, code, err)
}

// GetBooking
// @Summary Get booking, visible to the booker and the item owner
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "caller id"
// @Param bookingId path int true "booking id"
// @Success 200 {object} object
// @Failure 404 {object} object
// @Router /bookings/{bookingId} [get]
func (h *Handler) GetBooking(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "bookingId")
	if err != nil {
		return err
	}
	data, code, err := h.bookings.GetBooking(c.Request().Context(), userID, bookingID)
	return h.forward(c, data, code, err)
}

type listBookings func(ctx context.Context, userID int64, state string, from, size int) ([]byte, int, error)

func (h *Handler) listBookingsFunc(list listBookings) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := md.UserID(c)
		if err != nil {
			return err
		}
		st, err := state(c)
		if err != nil {
			return err
		}
		from, size, err := page(c, defaultPageSize)
		if err != nil {
			return err
		}
		data, code, err := list(c.Request().Context(), userID, st, from, size)
		return h.forward(c, data, code, err)
	}
}

// ListBookings
// @Summary List the caller's bookings
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "booker id"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param from query int false "first element index" default(0)
// @Param size query int false "page size" default(10)
// @Success 200 {array} object
// @Failure 400 {object} errs.StateErrorResponse
// @Router /bookings [get]
func (h *Handler) ListBookings(c echo.Context) error {
	return h.listBookingsFunc(h.bookings.ListBookings)(c)
}

// ListOwnerBookings
// @Summary List bookings of the caller's items
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "owner id"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param from query int false "first element index" default(0)
// @Param size query int false "page size" default(10)
// @Success 200 {array} object
// @Failure 400 {object} errs.StateErrorResponse
// @Router /bookings/owner [get]
func (h *Handler) ListOwnerBookings(c echo.Context) error {
	return h.listBookingsFunc(h.bookings.ListOwnerBookings)(c)
}
