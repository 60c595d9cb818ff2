package model

import "time"

type EventType string

const (
	EventBookingCreated  EventType = "booking_created"
	EventBookingApproved EventType = "booking_approved"
	EventBookingRejected EventType = "booking_rejected"
	EventBookingCanceled EventType = "booking_canceled"
)

type BookingEvent struct {
	EventID   string    `json:"eventId"`
	Type      EventType `json:"type"`
	BookingID int64     `json:"bookingId"`
	ItemID    int64     `json:"itemId"`
	BookerID  int64     `json:"bookerId"`
	OwnerID   int64     `json:"ownerId"`
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
