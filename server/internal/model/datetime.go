package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateTimeLayout is an ISO-8601 local date-time without zone; values are UTC.
const DateTimeLayout = "2006-01-02T15:04:05"

type DateTime struct {
	time.Time `json:",inline"`
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t.UTC().Truncate(time.Second)}
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.UTC().Format(DateTimeLayout) + `"`), nil
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), "\"")
	if s == "null" || s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.ParseInLocation(DateTimeLayout, s, time.UTC)
	if err != nil {
		// fractional seconds or an explicit zone
		if t, err = time.Parse(time.RFC3339Nano, s); err != nil {
			return fmt.Errorf("datetime %q: expected layout %s", s, DateTimeLayout)
		}
	}
	d.Time = t.UTC()
	return nil
}

func (d *DateTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v.UTC()
		return nil
	case nil:
		d.Time = time.Time{}
		return nil
	}
	return fmt.Errorf("datetime: cannot scan %T", src)
}

func (d DateTime) Value() (driver.Value, error) {
	return d.UTC(), nil
}
