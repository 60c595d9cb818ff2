package service

import (
	"context"
	"time"

	"github.com/Astemirdum/shareit/server/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	UpdateUser(ctx context.Context, user model.User) (model.User, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	DeleteUser(ctx context.Context, id int64) error

	CreateItem(ctx context.Context, item model.Item) (model.Item, error)
	UpdateItem(ctx context.Context, item model.Item) (model.Item, error)
	GetItem(ctx context.Context, id int64) (model.Item, error)
	DeleteItem(ctx context.Context, id int64) error
	ListItemsByOwner(ctx context.Context, ownerID int64, page model.Page) ([]model.Item, error)
	SearchItems(ctx context.Context, text string, page model.Page) ([]model.Item, error)
	ListItemsByRequests(ctx context.Context, requestIDs []int64) ([]model.Item, error)
	CreateComment(ctx context.Context, comment model.Comment) (model.Comment, error)
	ListComments(ctx context.Context, itemIDs []int64) ([]model.Comment, error)

	CreateBooking(ctx context.Context, booking model.Booking) (model.Booking, error)
	GetBooking(ctx context.Context, id int64) (model.BookingRow, error)
	UpdateBookingStatus(ctx context.Context, id int64, status model.Status) error
	ListBookings(ctx context.Context, f model.BookingFilter) ([]model.BookingRow, error)
	LastBookings(ctx context.Context, itemIDs []int64, now time.Time) ([]model.BookingShort, error)
	NextBookings(ctx context.Context, itemIDs []int64, now time.Time) ([]model.BookingShort, error)
	HasFinishedBooking(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error)

	CreateRequest(ctx context.Context, req model.ItemRequest) (model.ItemRequest, error)
	GetRequest(ctx context.Context, id int64) (model.ItemRequest, error)
	ListRequestsByRequestor(ctx context.Context, requestorID int64) ([]model.ItemRequest, error)
	ListOtherRequests(ctx context.Context, userID int64, page model.Page) ([]model.ItemRequest, error)
}

// UserCache is a read-through cache in front of user lookups.
type UserCache interface {
	Get(ctx context.Context, id int64) (model.User, bool, error)
	Set(ctx context.Context, user model.User) error
	Delete(ctx context.Context, id int64) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event model.BookingEvent) error
}
