package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Astemirdum/shareit/gateway/internal/model"
)

const bookingsPath = "/bookings"

func (c *Client) CreateBooking(ctx context.Context, userID int64, dto model.BookingDto) ([]byte, int, error) {
	return c.do(ctx, call{method: http.MethodPost, path: bookingsPath, userID: userID, body: dto})
}

func (c *Client) DecideBooking(ctx context.Context, userID, bookingID int64, approved bool) ([]byte, int, error) {
	q := url.Values{}
	q.Set("approved", strconv.FormatBool(approved))
	return c.do(ctx, call{method: http.MethodPatch, path: idPath(bookingsPath, bookingID), userID: userID, query: q})
}

func (c *Client) CancelBooking(ctx context.Context, userID, bookingID int64) ([]byte, int, error) {
	return c.do(ctx, call{method: http.MethodPatch, path: idPath(bookingsPath, bookingID) + "/cancel", userID: userID})
}

func (c *Client) GetBooking(ctx context.Context, userID, bookingID int64) ([]byte, int, error) {
	return c.do(ctx, call{method: http.MethodGet, path: idPath(bookingsPath, bookingID), userID: userID})
}

func (c *Client) ListBookings(ctx context.Context, userID int64, state string, from, size int) ([]byte, int, error) {
	return c.do(ctx, call{method: http.MethodGet, path: bookingsPath, userID: userID, query: stateQuery(state, from, size)})
}

func (c *Client) ListOwnerBookings(ctx context.Context, userID int64, state string, from, size int) ([]byte, int, error) {
	return c.do(ctx, call{method: http.MethodGet, path: bookingsPath + "/owner", userID: userID, query: stateQuery(state, from, size)})
}

func stateQuery(state string, from, size int) url.Values {
	q := pageQuery(from, size)
	q.Set("state", state)
	return q
}
