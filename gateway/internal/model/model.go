package model

import (
	"strings"
	"time"
)

const DateTimeLayout = "2006-01-02T15:04:05"

type DateTime struct {
	time.Time `json:",inline"`
}

func (d *DateTime) UnmarshalJSON(b []byte) (err error) {
	s := strings.Trim(string(b), "\"")
	date, err := time.ParseInLocation(DateTimeLayout, s, time.UTC)
	if err != nil {
		if date, err = time.Parse(time.RFC3339Nano, s); err != nil {
			return err
		}
	}
	d.Time = date.UTC()
	return
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.UTC().Format(DateTimeLayout) + `"`), nil
}

type UserDto struct {
	Name  string `json:"name" validate:"notblank"`
	Email string `json:"email" validate:"required,email"`
}

type UserUpdateDto struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

type ItemDto struct {
	Name        string `json:"name" validate:"notblank"`
	Description string `json:"description" validate:"notblank"`
	Available   *bool  `json:"available" validate:"required"`
	RequestID   *int64 `json:"requestId,omitempty" validate:"omitempty,gt=0"`
}

type ItemUpdateDto struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Available   *bool   `json:"available,omitempty"`
}

type CommentDto struct {
	Text string `json:"text" validate:"notblank"`
}

type BookingDto struct {
	ItemID int64     `json:"itemId" validate:"required,gt=0"`
	Start  *DateTime `json:"start" validate:"required"`
	End    *DateTime `json:"end" validate:"required"`
}

type ItemRequestDto struct {
	Description string `json:"description" validate:"notblank"`
}

// State values accepted by booking list endpoints.
var States = map[string]struct{}{
	"ALL":      {},
	"CURRENT":  {},
	"PAST":     {},
	"FUTURE":   {},
	"WAITING":  {},
	"REJECTED": {},
}
