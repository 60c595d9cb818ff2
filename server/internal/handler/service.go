package handler

import (
	"context"

	"github.com/Astemirdum/shareit/server/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type UserService interface {
	CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error)
	UpdateUser(ctx context.Context, id int64, req model.UpdateUserRequest) (model.User, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type ItemService interface {
	CreateItem(ctx context.Context, ownerID int64, req model.CreateItemRequest) (model.Item, error)
	UpdateItem(ctx context.Context, ownerID, itemID int64, req model.UpdateItemRequest) (model.Item, error)
	GetItem(ctx context.Context, userID, itemID int64) (model.ItemDetails, error)
	ListOwnerItems(ctx context.Context, ownerID int64, page model.Page) ([]model.ItemDetails, error)
	SearchItems(ctx context.Context, text string, page model.Page) ([]model.Item, error)
	DeleteItem(ctx context.Context, ownerID, itemID int64) error
	AddComment(ctx context.Context, authorID, itemID int64, req model.CreateCommentRequest) (model.Comment, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, bookerID int64, req model.CreateBookingRequest) (model.BookingResponse, error)
	DecideBooking(ctx context.Context, ownerID, bookingID int64, approved bool) (model.BookingResponse, error)
	CancelBooking(ctx context.Context, bookerID, bookingID int64) (model.BookingResponse, error)
	GetBooking(ctx context.Context, userID, bookingID int64) (model.BookingResponse, error)
	ListBookerBookings(ctx context.Context, bookerID int64, state model.State, page model.Page) ([]model.BookingResponse, error)
	ListOwnerBookings(ctx context.Context, ownerID int64, state model.State, page model.Page) ([]model.BookingResponse, error)
}

type RequestService interface {
	CreateRequest(ctx context.Context, userID int64, req model.CreateItemRequestRequest) (model.ItemRequest, error)
	ListOwnRequests(ctx context.Context, userID int64) ([]model.ItemRequest, error)
	ListOtherRequests(ctx context.Context, userID int64, page model.Page) ([]model.ItemRequest, error)
	GetRequest(ctx context.Context, userID, requestID int64) (model.ItemRequest, error)
}
