package model

type Item struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	Available   bool   `json:"available" db:"available"`
	OwnerID     int64  `json:"ownerId" db:"owner_id"`
	RequestID   *int64 `json:"requestId" db:"request_id"`
}

// ItemDetails is an item with its comments and, for the owner, the surrounding approved bookings.
type ItemDetails struct {
	Item
	LastBooking *BookingShort `json:"lastBooking"`
	NextBooking *BookingShort `json:"nextBooking"`
	Comments    []Comment     `json:"comments"`
}

type BookingShort struct {
	ID       int64 `json:"id" db:"id"`
	BookerID int64 `json:"bookerId" db:"booker_id"`
	ItemID   int64 `json:"-" db:"item_id"`
}

type CreateItemRequest struct {
	Name        string `json:"name" validate:"notblank"`
	Description string `json:"description" validate:"notblank"`
	Available   *bool  `json:"available" validate:"required"`
	RequestID   *int64 `json:"requestId"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type Comment struct {
	ID         int64    `json:"id" db:"id"`
	Text       string   `json:"text" db:"text"`
	ItemID     int64    `json:"itemId" db:"item_id"`
	AuthorID   int64    `json:"authorId" db:"author_id"`
	AuthorName string   `json:"authorName" db:"author_name"`
	Created    DateTime `json:"created" db:"created"`
}

type CreateCommentRequest struct {
	Text string `json:"text" validate:"notblank"`
}
