package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/Astemirdum/shareit/server/internal/errs"
)

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	StatusCanceled Status = "CANCELED"
	// StatusPast is reserved and never written.
	StatusPast Status = "PAST"
)

// State selects a subset of bookings in list queries.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

func ParseState(s string) (State, error) {
	if s == "" {
		return StateAll, nil
	}
	switch st := State(strings.ToUpper(s)); st {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return st, nil
	}
	return "", fmt.Errorf("%w: %s", errs.ErrUnknownState, s)
}

type Booking struct {
	ID       int64    `json:"id" db:"id"`
	Start    DateTime `json:"start" db:"start_date"`
	End      DateTime `json:"end" db:"end_date"`
	ItemID   int64    `json:"itemId" db:"item_id"`
	BookerID int64    `json:"bookerId" db:"booker_id"`
	Status   Status   `json:"status" db:"status"`
}

// BookingRow is a booking joined with its item and booker.
type BookingRow struct {
	Booking
	ItemName    string `db:"item_name"`
	ItemOwnerID int64  `db:"item_owner_id"`
	BookerName  string `db:"booker_name"`
	BookerEmail string `db:"booker_email"`
}

func (r BookingRow) Response() BookingResponse {
	return BookingResponse{
		ID:     r.ID,
		Start:  r.Start,
		End:    r.End,
		Status: r.Status,
		ItemID: r.ItemID,
		Item:   BookingItem{ID: r.ItemID, Name: r.ItemName},
		Booker: User{ID: r.BookerID, Name: r.BookerName, Email: r.BookerEmail},
	}
}

type BookingItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookingResponse struct {
	ID     int64       `json:"id"`
	Start  DateTime    `json:"start"`
	End    DateTime    `json:"end"`
	Status Status      `json:"status"`
	ItemID int64       `json:"itemId"`
	Item   BookingItem `json:"item"`
	Booker User        `json:"booker"`
}

// BookingFilter lists bookings of a booker, or of an owner's items when OwnerID is set.
type BookingFilter struct {
	BookerID int64
	OwnerID  int64
	State    State
	Now      time.Time
	Page     Page
}

type CreateBookingRequest struct {
	ItemID int64     `json:"itemId" validate:"required"`
	Start  *DateTime `json:"start" validate:"required"`
	End    *DateTime `json:"end" validate:"required"`
}
