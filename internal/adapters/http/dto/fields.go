package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/jsamuelsen11/travel-planner/internal/domain"
)

const msgInvalidDate = "must be a date (YYYY-MM-DD) or an RFC 3339 timestamp"

var errInvalidDate = errors.New(msgInvalidDate)

// Date is a start_date value. Decoding keeps the raw text; Time parses it so
// a malformed date is reported against its field instead of failing the
// whole body.
type Date struct {
	raw string
}

// UnmarshalJSON accepts any JSON string.
func (d *Date) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &d.raw)
}

// Time parses a calendar date as UTC midnight, or an RFC 3339 timestamp.
func (d Date) Time() (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, d.raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, d.raw); err == nil {
		return t, nil
	}
	return time.Time{}, errInvalidDate
}

// Nullable is a PATCH field that tells an absent key apart from an explicit
// null. Set is true whenever the key was present.
type Nullable[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// UnmarshalJSON records the key as present and decodes a non-null value.
func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(b, []byte("null")) {
		n.Null = true
		return nil
	}
	return json.Unmarshal(b, &n.Value)
}

// checkDate adds a start_date field error when d does not parse.
func checkDate(fields map[string]string, d *Date) {
	if d == nil {
		return
	}
	if _, err := d.Time(); err != nil {
		fields["start_date"] = msgInvalidDate
	}
}

// datePtr returns the parsed date, or nil for an absent or unparsable value.
// Validate has already rejected the latter.
func datePtr(d *Date) *time.Time {
	if d == nil {
		return nil
	}
	t, err := d.Time()
	if err != nil {
		return nil
	}
	return &t
}

// optionalString maps a nullable body field to a domain update field.
func optionalString(n Nullable[string]) domain.Optional[*string] {
	switch {
	case !n.Set:
		return domain.Optional[*string]{}
	case n.Null:
		return domain.Some[*string](nil)
	default:
		v := n.Value
		return domain.Some(&v)
	}
}

// optionalDate maps a nullable start_date to a domain update field.
func optionalDate(n Nullable[Date]) domain.Optional[*time.Time] {
	switch {
	case !n.Set:
		return domain.Optional[*time.Time]{}
	case n.Null:
		return domain.Some[*time.Time](nil)
	}
	if t := datePtr(&n.Value); t != nil {
		return domain.Some(t)
	}
	return domain.Optional[*time.Time]{}
}
