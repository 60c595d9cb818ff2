package handler

import (
	"context"

	"github.com/Astemirdum/shareit/gateway/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

// Clients return the upstream status code and raw body.
type UserClient interface {
	CreateUser(ctx context.Context, dto model.UserDto) ([]byte, int, error)
	UpdateUser(ctx context.Context, userID int64, dto model.UserUpdateDto) ([]byte, int, error)
	GetUser(ctx context.Context, userID int64) ([]byte, int, error)
	ListUsers(ctx context.Context) ([]byte, int, error)
	DeleteUser(ctx context.Context, userID int64) ([]byte, int, error)
}

type ItemClient interface {
	CreateItem(ctx context.Context, userID int64, dto model.ItemDto) ([]byte, int, error)
	UpdateItem(ctx context.Context, userID, itemID int64, dto model.ItemUpdateDto) ([]byte, int, error)
	GetItem(ctx context.Context, userID, itemID int64) ([]byte, int, error)
	ListItems(ctx context.Context, userID int64, from, size int) ([]byte, int, error)
	SearchItems(ctx context.Context, text string, from, size int) ([]byte, int, error)
	DeleteItem(ctx context.Context, userID, itemID int64) ([]byte, int, error)
	AddComment(ctx context.Context, userID, itemID int64, dto model.CommentDto) ([]byte, int, error)
}

type BookingClient interface {
	CreateBooking(ctx context.Context, userID int64, dto model.BookingDto) ([]byte, int, error)
	DecideBooking(ctx context.Context, userID, bookingID int64, approved bool) ([]byte, int, error)
	CancelBooking(ctx context.Context, userID, bookingID int64) ([]byte, int, error)
	GetBooking(ctx context.Context, userID, bookingID int64) ([]byte, int, error)
	ListBookings(ctx context.Context, userID int64, state string, from, size int) ([]byte, int, error)
	ListOwnerBookings(ctx context.Context, userID int64, state string, from, size int) ([]byte, int, error)
}

type RequestClient interface {
	CreateRequest(ctx context.Context, userID int64, dto model.ItemRequestDto) ([]byte, int, error)
	ListOwnRequests(ctx context.Context, userID int64) ([]byte, int, error)
	ListOtherRequests(ctx context.Context, userID int64, from, size int) ([]byte, int, error)
	GetRequest(ctx context.Context, userID, requestID int64) ([]byte, int, error)
}
