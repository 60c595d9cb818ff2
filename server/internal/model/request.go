package model

type ItemRequest struct {
	ID          int64    `json:"id" db:"id"`
	Description string   `json:"description" db:"description"`
	RequestorID int64    `json:"requestorId" db:"requestor_id"`
	Created     DateTime `json:"created" db:"created"`
	Items       []Item   `json:"items" db:"-"`
}

type CreateItemRequestRequest struct {
	Description string `json:"description" validate:"notblank"`
}
